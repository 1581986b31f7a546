package metrics

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// MockSource produces plausible, slowly drifting figures for demo mode.
type MockSource struct {
	rng   *rand.Rand
	start time.Time
	now   func() time.Time
	addrs map[string]string
}

// NewMockSource creates a mock source. Interfaces named in down report no
// address.
func NewMockSource(rng *rand.Rand, down ...string) *MockSource {
	m := &MockSource{
		rng:   rng,
		start: time.Now(),
		now:   time.Now,
		addrs: make(map[string]string),
	}
	for _, iface := range down {
		m.addrs[iface] = ""
	}
	return m
}

func (m *MockSource) elapsed() float64 {
	return m.now().Sub(m.start).Seconds()
}

func (m *MockSource) NetworkAddress(ctx context.Context, iface string) (string, bool, error) {
	addr, seen := m.addrs[iface]
	if !seen {
		addr = fmt.Sprintf("192.168.%d.%d", 1+m.rng.Intn(9), 2+m.rng.Intn(250))
		m.addrs[iface] = addr
	}
	return addr, addr != "", nil
}

func (m *MockSource) GPUUtilization(ctx context.Context) (float64, error) {
	// Sinusoidal load + noise, clamped to [0, 100]
	v := 45 + 40*math.Sin(m.elapsed()*0.4) + (m.rng.Float64()-0.5)*10
	return math.Max(0, math.Min(100, v)), nil
}

func (m *MockSource) CPULoad(ctx context.Context) (float64, error) {
	return 0.5 + 0.4*math.Sin(m.elapsed()*0.1) + m.rng.Float64()*0.1, nil
}

func (m *MockSource) MemoryUsage(ctx context.Context) (string, error) {
	const total = 3956 * mib
	used := uint64(float64(total) * (0.35 + 0.05*math.Sin(m.elapsed()*0.05)))
	return FormatMemory(used, total), nil
}

func (m *MockSource) DiskUsage(ctx context.Context) (string, error) {
	const total, used = 29 * gib, 12 * gib
	return FormatDisk(used, total, float64(used)*100/float64(total)), nil
}
