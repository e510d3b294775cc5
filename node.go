package sanipath

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxNodeLength is the longest segment the sanitizer will emit. 255 bytes is
// the common filesystem limit; one character is held back for the NTFS
// alternate data stream marker.
const MaxNodeLength = 254

// drivePattern matches a bare Windows drive root such as "C:" or "C:\".
var drivePattern = regexp.MustCompile(`^([A-Za-z]:)\\?$`)

// NodeOptions carries the role hints and policy for a single segment.
type NodeOptions struct {
	// IsFile declares whether the segment names a file (as opposed to a
	// directory). Directories and files share almost all rules; the "." and
	// ".." literals are only legal for directories.
	IsFile Hint

	// IsRootOrDrive declares whether the segment is the filesystem root
	// ("/", "\") or a Windows drive letter. Only meaningful for the first
	// segment of a path.
	IsRootOrDrive Hint

	// FATCompatible extends the reserved-name set with FAT-only names.
	FATCompatible bool

	// TrimToLimit truncates over-length segments instead of failing.
	TrimToLimit bool
}

// SanitizeNode transforms one path segment into a form that is legal on both
// POSIX and Windows filesystems, independent of the host platform. Illegal
// characters, reserved device names, trailing dots and spaces, and blank
// segments are corrected silently; the only failures are contradictory role
// hints and over-length segments without TrimToLimit.
//
// Examples:
//
//	SanitizeNode("plums;and/or;apples", ...)  ->  "plums;and_or;apples"
//	SanitizeNode("nul.txt", ...)              ->  "_nul_.txt"
//	SanitizeNode("abc. ", IsFile yes)         ->  "abc"
//	SanitizeNode("c:", first segment)         ->  `C:\`
func SanitizeNode(node string, opts NodeOptions) (string, error) {
	isFile, isRoot := opts.IsFile, opts.IsRootOrDrive
	if isFile == HintYes && isRoot == HintYes {
		return "", fmt.Errorf("%w: segment %q asserted as both a file and a root or drive", ErrHintContradiction, node)
	}
	// A declared file cannot be the root, and the root cannot be a file.
	if isFile == HintYes && isRoot == HintUnknown {
		isRoot = HintNo
	}
	if isRoot == HintYes && isFile == HintUnknown {
		isFile = HintNo
	}

	bit := strings.TrimSpace(node)

	// Roots and drive letters are the one case where the correct sanitized
	// form keeps characters the blacklist would strip, so they are handled
	// before any rewriting.
	if isRoot != HintNo {
		if bit == "/" || bit == `\` {
			return bit, nil
		}
		if m := drivePattern.FindStringSubmatch(bit); m != nil {
			// Always emit the trailing backslash: "C:" joined with more
			// segments is a relative path on Windows, "C:\" is absolute.
			return strings.ToUpper(m[1]) + `\`, nil
		}
		if isRoot == HintYes {
			return "", fmt.Errorf("%w: segment %q is not the root or a drive letter", ErrHintContradiction, node)
		}
	}

	// Segments made of nothing but dots (and spaces) other than the "." and
	// ".." literals are ambiguous on every filesystem.
	if dotsOnly(bit) && bit != "." && bit != ".." {
		bit = "_" + bit + "_"
	}

	bit = replaceBlacklisted(bit)
	bit = guardReserved(bit, opts.FATCompatible)

	if strings.TrimSpace(bit) == "" {
		bit = "_" + bit + "_"
	}
	bit = strings.TrimRight(bit, " ")

	// "." and ".." are legal directory names but never legal file names.
	if isFile != HintYes && (bit == "." || bit == "..") {
		return bit, nil
	}
	// NTFS forbids trailing dots and spaces on files and directories alike.
	if trimmed := strings.TrimRight(bit, ". "); trimmed != "" {
		// The trim can expose a reserved name ("nul ." becomes "nul"), so
		// the guard runs again on the trimmed text.
		bit = guardReserved(trimmed, opts.FATCompatible)
	} else {
		// The trim consumed the whole segment, e.g. ".." declared a file.
		bit = "_" + bit + "_"
	}

	return enforceLength(bit, node, opts)
}

// dotsOnly reports whether s contains at least one dot and nothing besides
// dots and spaces.
func dotsOnly(s string) bool {
	dot := false
	for _, r := range s {
		switch r {
		case '.':
			dot = true
		case ' ':
		default:
			return false
		}
	}
	return dot
}

// enforceLength caps segment at MaxNodeLength runes. Truncation silently
// changes identity, so it is opt-in; without it an over-length segment is a
// hard failure naming the original input.
//
// Cutting mid-segment can leave a trailing dot or space, or expose a
// reserved stem ("nul." plus a long extension), so the trailing trim and
// reserved guard run again on the cut text. The guard may push the segment
// back over the limit; wrapped stems are never reserved themselves, so the
// loop settles after at most one more cut.
func enforceLength(segment, source string, opts NodeOptions) (string, error) {
	for {
		runes := []rune(segment)
		if len(runes) <= MaxNodeLength {
			return segment, nil
		}
		if !opts.TrimToLimit {
			return "", fmt.Errorf("%w: segment %q has more than %d characters", ErrNodeTooLong, source, MaxNodeLength)
		}
		segment = strings.TrimRight(string(runes[:MaxNodeLength]), ". ")
		if segment == "" {
			// The cut was nothing but dots and spaces.
			segment = "_"
		}
		segment = guardReserved(segment, opts.FATCompatible)
	}
}
