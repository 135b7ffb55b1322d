package batch

import (
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/mem"
)

const (
	// MiB is the number of bytes in a mebibyte.
	MiB = 1024 * 1024

	// minFreeMemory is kept available for the rest of the process
	// when admitting a job.
	minFreeMemory = 64 * MiB
)

// ErrMemoryNotEnough indicates there is not enough available memory to
// admit a digest job.
var ErrMemoryNotEnough = errors.New("not enough available memory")

// ensureMemory refuses a job whose block layout would not leave
// minFreeMemory of headroom. Padding roughly doubles the resident
// footprint of a message while it is in flight.
func ensureMemory(need uint64) error {
	stat, err := mem.VirtualMemory()
	if err != nil {
		return errors.Wrap(err, "fail on query virtual memory")
	}
	if required := 2*need + minFreeMemory; required > stat.Available {
		return ErrMemoryNotEnough
	}
	return nil
}
