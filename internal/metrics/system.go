package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// SystemSource reads the local machine through gopsutil and sysfs.
type SystemSource struct {
	gpuLoadPath string
	diskPath    string
}

// NewSystemSource creates a source. gpuLoadPath points at a file holding the
// GPU load in tenths of a percent (Jetson layout); empty reports zero load.
func NewSystemSource(gpuLoadPath string) *SystemSource {
	return &SystemSource{
		gpuLoadPath: gpuLoadPath,
		diskPath:    "/",
	}
}

func (s *SystemSource) NetworkAddress(ctx context.Context, iface string) (string, bool, error) {
	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return "", false, unavailable("interfaces", err)
	}

	for _, ifc := range ifaces {
		if ifc.Name != iface {
			continue
		}
		if !slices.Contains(ifc.Flags, "up") {
			return "", false, nil
		}
		for _, a := range ifc.Addrs {
			if ip := ipv4(a.Addr); ip != "" {
				return ip, true, nil
			}
		}
		return "", false, nil
	}
	return "", false, unavailable("interface "+iface, errors.New("not found"))
}

// ipv4 extracts a non-loopback IPv4 address from "a.b.c.d/nn".
func ipv4(cidr string) string {
	ip, _, err := net.ParseCIDR(cidr)
	if err != nil {
		ip = net.ParseIP(cidr)
	}
	if ip == nil || ip.To4() == nil || ip.IsLoopback() {
		return ""
	}
	return ip.String()
}

func (s *SystemSource) GPUUtilization(ctx context.Context) (float64, error) {
	if s.gpuLoadPath == "" {
		return 0, nil
	}
	data, err := os.ReadFile(s.gpuLoadPath)
	if err != nil {
		return 0, unavailable("gpu load", err)
	}
	return ParseGPULoad(string(data))
}

// ParseGPULoad converts the sysfs load value (per mille) into a percentage.
func ParseGPULoad(raw string) (float64, error) {
	line, _, _ := strings.Cut(raw, "\n")
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, unavailable("gpu load", fmt.Errorf("parse %q: %w", line, err))
	}
	return float64(v) / 10, nil
}

func (s *SystemSource) CPULoad(ctx context.Context) (float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return 0, unavailable("load average", err)
	}
	return avg.Load1, nil
}

func (s *SystemSource) MemoryUsage(ctx context.Context) (string, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return "", unavailable("memory", err)
	}
	return FormatMemory(vm.Used, vm.Total), nil
}

func (s *SystemSource) DiskUsage(ctx context.Context) (string, error) {
	u, err := disk.UsageWithContext(ctx, s.diskPath)
	if err != nil {
		return "", unavailable("disk "+s.diskPath, err)
	}
	return FormatDisk(u.Used, u.Total, u.UsedPercent), nil
}
