package sysinfo

// VMPageCounts are the page counters of a mach vm_statistics64 structure
// that contribute to available memory.
type VMPageCounts struct {
	Free        uint32
	Speculative uint32
	Purgeable   uint32
	External    uint32
}

// Available counts file cache plus free pages. Speculative pages are part of
// the external pages, so they are subtracted from free like vm_stat does.
// The sum is taken in natural_t width before widening.
//
// The counters are read one sysctl at a time rather than as one snapshot, so
// a torn read where speculative exceeds the rest is reported as unknown
// instead of wrapping.
func (c VMPageCounts) Available(pageSize int64) (int64, bool) {
	if c.Speculative > c.External+c.Purgeable+c.Free {
		return 0, false
	}
	pages := c.External + c.Purgeable + c.Free - c.Speculative
	return int64(pages) * pageSize, true
}
