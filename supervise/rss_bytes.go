//go:build darwin || ios

package supervise

func maxRSSUnit() int64 { return 1 }
