package sanipath

import "strings"

// Windows reserves these names for historical hardware devices. A file named
// "nul" or "nul.txt" cannot be created on NTFS regardless of extension.
// Long UNC escapes are not an out: this package rejects them entirely.
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// FAT filesystems reserve a few more, mostly $-suffixed device names.
var reservedNamesFAT = map[string]bool{
	"$IDLE$": true, "CONFIG$": true, "KEYBD$": true,
	"SCREEN$": true, "CLOCK$": true, "LST": true,
}

// isReservedName reports whether name (compared case-insensitively, as
// Windows does) is a reserved device name under the selected profile.
func isReservedName(name string, fat bool) bool {
	upper := strings.ToUpper(name)
	if reservedNames[upper] {
		return true
	}
	return fat && reservedNamesFAT[upper]
}

// splitStem splits a segment into stem and extension at the final dot, the
// way "nul.txt" has stem "nul". A leading dot is not an extension separator,
// so ".profile" has no extension.
func splitStem(segment string) (stem, ext string) {
	if i := strings.LastIndex(segment, "."); i > 0 {
		return segment[:i], segment[i:]
	}
	return segment, ""
}

// guardReserved rewrites segments that collide with a reserved device name,
// wrapping the offending part in underscores: "NUL" -> "_NUL_" and
// "nul.txt" -> "_nul_.txt". The whole-segment match takes priority; at most
// one rewrite applies. The rewrite is silent: reserved names are corrected,
// not rejected.
func guardReserved(segment string, fat bool) string {
	if isReservedName(segment, fat) {
		return "_" + segment + "_"
	}
	if stem, ext := splitStem(segment); isReservedName(stem, fat) {
		return "_" + stem + "_" + ext
	}
	return segment
}
