package sanipath

import (
	"fmt"
	"strings"
)

// longUNCPrefix starts Windows long/device paths (\\?\C:\...). Supporting
// them would disable every rule this package exists to enforce.
const longUNCPrefix = `\\?`

// Options carries the policy for a whole-path sanitization.
type Options struct {
	// IsFile declares the role of the terminal segment, if the caller knows
	// it. All non-terminal segments are directories by construction.
	IsFile Hint

	// FATCompatible extends the reserved-name set with FAT-only names.
	FATCompatible bool

	// TrimToLimit truncates over-length segments instead of failing.
	TrimToLimit bool

	// Warn, if set, is invoked once with a human-readable message when the
	// sanitized path differs from the input. It never affects the result.
	Warn func(string)
}

// SanitizePath sanitizes every segment of path for both POSIX and Windows
// filesystems, regardless of the host platform. Both "/" and "\" are treated
// as separators, empty and "." segments are collapsed the way path joining
// does, and the result always joins with "/".
//
// A drive letter as the first path atom is normalized to a rooted form:
// "C:\Users\john" becomes "/C:/Users/john" on every host, since joining a
// bare "C:\" onto further segments corrupts the path on POSIX.
//
// The transformation is idempotent: sanitizing an already-sanitized path
// returns it unchanged.
func SanitizePath(path string, opts Options) (string, error) {
	if strings.HasPrefix(path, longUNCPrefix) {
		return "", fmt.Errorf(`%w: long UNC Windows paths (\\? prefix) are not supported: %q`, ErrUnsupportedPath, path)
	}

	bits := strings.Split(strings.ReplaceAll(strings.TrimSpace(path), `\`, "/"), "/")
	nodes := make([]string, 0, len(bits))
	marker := false

	for i, bit := range bits {
		t := strings.TrimSpace(bit)
		if i == 0 && (t == "" || t == "." || t == "..") {
			// A leading empty, "." or ".." segment is the path's anchor and
			// bypasses the per-segment pipeline.
			nodes = append(nodes, t)
			marker = true
			continue
		}
		if t == "" || t == "." {
			// Collapse "//" and "/./" like path joining does.
			continue
		}

		nodeOpts := NodeOptions{
			IsFile:        HintNo,
			IsRootOrDrive: HintNo,
			FATCompatible: opts.FATCompatible,
			TrimToLimit:   opts.TrimToLimit,
		}
		if i == len(bits)-1 {
			nodeOpts.IsFile = opts.IsFile
		}
		// The first segment may be a root or drive; so may the segment right
		// after a bare root marker, which is where this function's own
		// "/C:/..." output puts the drive.
		if i == 0 || (i == 1 && marker && nodes[0] == "") {
			nodeOpts.IsRootOrDrive = HintUnknown
		}

		node, err := SanitizeNode(bit, nodeOpts)
		if err != nil {
			return "", err
		}
		if node == "" || node == "." {
			continue
		}
		nodes = append(nodes, node)
	}

	// Re-root a leading drive letter: "C:\" followed by "x" must render as
	// "/C:/x", not "C:\/x".
	j := 0
	if marker {
		j = 1
	}
	if len(nodes) > j && drivePattern.MatchString(nodes[j]) {
		nodes[j] = strings.TrimSuffix(nodes[j], `\`)
		if !marker {
			nodes = append([]string{""}, nodes...)
			marker = true
		}
	}

	out := assemble(nodes, marker)
	if out != path && opts.Warn != nil {
		opts.Warn(fmt.Sprintf("sanitized path %q -> %q", path, out))
	}
	return out, nil
}

// assemble joins sanitized nodes with "/". A marker node ("", "." or "..")
// renders as the "/", "./" or "../" prefix.
func assemble(nodes []string, marker bool) string {
	if !marker {
		return strings.Join(nodes, "/")
	}
	rest := strings.Join(nodes[1:], "/")
	switch {
	case rest == "" && nodes[0] == "":
		return "/"
	case rest == "":
		return nodes[0]
	default:
		return nodes[0] + "/" + rest
	}
}
