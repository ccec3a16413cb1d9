package sysinfo

import (
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

func procFixture(t *testing.T, meminfo string, minFree string) *fs.Dir {
	ops := []fs.PathOp{fs.WithFile("meminfo", meminfo)}
	if minFree != "" {
		ops = append(ops, fs.WithDir("sys", fs.WithDir("vm", fs.WithFile("min_free_kbytes", minFree))))
	}
	dir := fs.NewDir(t, "runlog-proc", ops...)
	t.Cleanup(dir.Remove)
	return dir
}

func TestAvailableMemoryDirect(t *testing.T) {
	dir := procFixture(t, meminfoWithAvailable, "67584\n")

	got, err := NewProber(dir.Path(), nil).AvailableMemory()
	assert.NilError(t, err)
	v, ok := got.Get()
	assert.Assert(t, ok)
	assert.Equal(t, v, int64(9876543*1024))
}

func TestAvailableMemoryFallback(t *testing.T) {
	dir := procFixture(t, meminfoWithoutAvailable, "67584\n")

	got, err := NewProber(dir.Path(), nil).AvailableMemory()
	assert.NilError(t, err)
	v, ok := got.Get()
	assert.Assert(t, ok)
	assert.Equal(t, v, int64(3546560*1024))
}

func TestAvailableMemoryFallbackWithoutMinFree(t *testing.T) {
	dir := procFixture(t, meminfoWithoutAvailable, "")

	got, err := NewProber(dir.Path(), nil).AvailableMemory()
	assert.NilError(t, err)
	v, ok := got.Get()
	assert.Assert(t, ok)
	// low = -1
	assert.Equal(t, v, int64((1000000+1+2500000+1+300000+1)*1024))
}

func TestAvailableMemoryMissingMeminfo(t *testing.T) {
	dir := fs.NewDir(t, "runlog-proc")
	defer dir.Remove()

	got, err := NewProber(dir.Path(), nil).AvailableMemory()
	assert.NilError(t, err)
	assert.Assert(t, !got.IsSet())
}

func TestAvailableMemoryMalformed(t *testing.T) {
	dir := procFixture(t, "MemFree: 1000 kB\nActive(file):\n", "67584\n")

	_, err := NewProber(dir.Path(), nil).Snapshot()
	assert.ErrorIs(t, err, ErrMalformedKernelOutput)
}

func TestSnapshotHost(t *testing.T) {
	snap, err := NewProber("", nil).Snapshot()
	assert.NilError(t, err)
	assert.Assert(t, snap.CPUCount > 0)
	assert.Assert(t, snap.TotalMemory > 0)

	v, ok := snap.AvailableMemory.Get()
	assert.Assert(t, ok)
	assert.Assert(t, v >= 0)
}
