// Package sanipath sanitizes file paths so they are legal on both POSIX and
// Windows/NTFS filesystems (optionally FAT), independent of the platform the
// code runs on. Illegal characters, reserved device names like NUL and COM1,
// trailing dots and spaces, and blank segments are rewritten silently; the
// optional warn callback reports every rewrite. Only three inputs fail
// outright: long UNC paths, contradictory role hints, and over-length
// segments without truncation enabled.
//
// The engine never touches the filesystem and keeps no state between calls:
// SanitizeNode and SanitizePath are pure functions, safe for concurrent use.
// The rename layer and HTTP server built on top of them are separate,
// optional conveniences.
package sanipath
