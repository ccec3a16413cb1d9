//go:build solaris || illumos

package supervise

import "golang.org/x/sys/unix"

func maxRSSUnit() int64 { return int64(unix.Getpagesize()) }
