//go:build linux || android || freebsd || netbsd || openbsd || dragonfly || aix

package supervise

// getrusage(2) documents ru_maxrss in kilobytes here, kernel sources
// indicate kibibytes.
func maxRSSUnit() int64 { return 1024 }
