// Package sysinfo reports this process's own resource usage, narrowed
// down to what the table engine's stats command needs: a resident memory
// figure to put next to a table's row/column counts. It does not sample on
// a ticker; callers ask for a snapshot when they want one.
package sysinfo

import (
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/colstorehq/coltable/pkg/metrics"
)

// Snapshot is a point-in-time reading of process resource usage.
type Snapshot struct {
	ResidentMemoryBytes uint64
	VirtualMemoryBytes  uint64
	GoroutineCount      int
	OpenFDs             int32
	SampledAt           time.Time
}

// Monitor samples the current process's resource usage, grounded on the
// teacher's performance.ResourceMonitor (gopsutil process.Process wrapper),
// narrowed to memory/goroutine/fd figures — CPU percentage and system-wide
// memory are a connector-pipeline concern this engine has no use for.
type Monitor struct {
	proc *process.Process
	mu   sync.Mutex
}

// NewMonitor creates a Monitor bound to the current OS process.
func NewMonitor() (*Monitor, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &Monitor{proc: proc}, nil
}

// Sample takes a fresh Snapshot and updates metrics.ResidentMemory.
func (m *Monitor) Sample() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{SampledAt: time.Now(), GoroutineCount: runtime.NumGoroutine()}

	memInfo, err := m.proc.MemoryInfo()
	if err != nil {
		return Snapshot{}, err
	}
	snap.ResidentMemoryBytes = memInfo.RSS
	snap.VirtualMemoryBytes = memInfo.VMS

	snap.OpenFDs, _ = m.proc.NumFDs()

	metrics.ResidentMemory.Set(float64(snap.ResidentMemoryBytes))
	return snap, nil
}
