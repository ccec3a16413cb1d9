package sysinfo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"codeberg.org/iklabib/runlog/model"
)

// ErrMalformedKernelOutput is returned when a statistics source does not
// look like what the estimator was written against.
var ErrMalformedKernelOutput = errors.New("malformed kernel output")

// Meminfo holds the /proc/meminfo fields used to estimate available memory,
// all in kB.
type Meminfo struct {
	MemAvailable model.Optional[int64]
	MemFree      model.Optional[int64]
	InactiveFile model.Optional[int64]
	ActiveFile   model.Optional[int64]
	SReclaimable model.Optional[int64]
}

// ParseMeminfo scans r line by line. A later line with the same label wins.
func ParseMeminfo(r io.Reader) (Meminfo, error) {
	var m Meminfo
	fields := []struct {
		label string
		dst   *model.Optional[int64]
	}{
		{"MemAvailable:", &m.MemAvailable},
		{"MemFree:", &m.MemFree},
		{"Inactive(file):", &m.InactiveFile},
		{"Active(file):", &m.ActiveFile},
		{"SReclaimable:", &m.SReclaimable},
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		for _, f := range fields {
			v, ok, err := readKey(line, f.label)
			if err != nil {
				return Meminfo{}, err
			}
			if ok {
				*f.dst = model.Some(v)
				break
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return Meminfo{}, err
	}

	return m, nil
}

// readKey reports whether line starts with label and, if so, the number
// starting at the first digit after it.
func readKey(line, label string) (int64, bool, error) {
	if !strings.HasPrefix(line, label) {
		return 0, false, nil
	}

	rest := line[len(label):]
	start := strings.IndexFunc(rest, isDigit)
	if start < 0 {
		return 0, false, fmt.Errorf("%w: no value for %q", ErrMalformedKernelOutput, label)
	}

	digits := rest[start:]
	if end := strings.IndexFunc(digits, func(r rune) bool { return !isDigit(r) }); end >= 0 {
		digits = digits[:end]
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s %w", ErrMalformedKernelOutput, label, err)
	}

	return v, true, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// EstimateAvailable returns available memory in kB. MemAvailable is trusted
// verbatim when the kernel provides it; otherwise the procps free(1)
// estimate is recomputed from the fallback counters and minFreeKB.
func EstimateAvailable(m Meminfo, minFreeKB int64) (int64, error) {
	if avail, ok := m.MemAvailable.Get(); ok {
		return avail, nil
	}

	free, okFree := m.MemFree.Get()
	inactive, okInactive := m.InactiveFile.Get()
	active, okActive := m.ActiveFile.Get()
	reclaimable, okReclaim := m.SReclaimable.Get()
	if !okFree || !okInactive || !okActive || !okReclaim {
		return 0, fmt.Errorf("%w: meminfo lacks MemAvailable and fallback counters", ErrMalformedKernelOutput)
	}

	low := minFreeKB * 5 / 4
	pagecache := inactive + active
	avail := free - low +
		pagecache - min(pagecache/2, low) +
		reclaimable - min(reclaimable/2, low)

	return max(avail, 0), nil
}
