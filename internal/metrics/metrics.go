// Package metrics reads the figures shown on the stats screen.
package metrics

import (
	"context"
	"errors"
	"fmt"
)

// ErrMetricsUnavailable is wrapped by every collection failure.
var ErrMetricsUnavailable = errors.New("metrics unavailable")

// Source supplies the stats readout. Every call may block on the OS.
type Source interface {
	// NetworkAddress returns the IPv4 address of iface. ok is false when the
	// interface is down, which is not an error.
	NetworkAddress(ctx context.Context, iface string) (addr string, ok bool, err error)
	// GPUUtilization returns the GPU load in percent, [0, 100].
	GPUUtilization(ctx context.Context) (float64, error)
	// CPULoad returns the one-minute load average.
	CPULoad(ctx context.Context) (float64, error)
	MemoryUsage(ctx context.Context) (string, error)
	DiskUsage(ctx context.Context) (string, error)
}

func unavailable(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMetricsUnavailable, what, err)
}

const mib = 1024 * 1024
const gib = 1024 * mib

// FormatMemory renders "Mem:  12% 480/3956 M" from byte counts.
func FormatMemory(used, total uint64) string {
	pct := 0.0
	if total > 0 {
		pct = float64(used) * 100 / float64(total)
	}
	return fmt.Sprintf("Mem:  %.0f%% %d/%d M", pct, used/mib, total/mib)
}

// FormatDisk renders "Disk: 12/29GB 43%" from byte counts and a percentage.
func FormatDisk(used, total uint64, usedPercent float64) string {
	return fmt.Sprintf("Disk: %d/%dGB %.0f%%", used/gib, total/gib, usedPercent)
}

// FormatCPULoad renders "CPU Load: 0.42".
func FormatCPULoad(load1 float64) string {
	return fmt.Sprintf("CPU Load: %.2f", load1)
}
