package status

import (
	"context"
	"net"
	"runtime"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"

	"github.com/coolhat/coolhatctl/internal/errors"
)

// DefaultInterfaces is the interface preference order for the IP line.
var DefaultInterfaces = []string{"eth0", "wlan0"}

// SystemCollector builds snapshots from live system counters. Collection is
// best effort: a failing counter leaves its fields zero and the error is
// reported alongside the partial snapshot.
type SystemCollector struct {
	diskPath   string
	interfaces []string
}

func NewSystemCollector(interfaces []string) *SystemCollector {
	if len(interfaces) == 0 {
		interfaces = DefaultInterfaces
	}

	return &SystemCollector{
		diskPath:   "/",
		interfaces: interfaces,
	}
}

func (c *SystemCollector) Collect(ctx context.Context, temperature float64) (Snapshot, error) {
	snapshot := Snapshot{Temperature: temperature}

	var firstErr error
	fail := func(err error) {
		if firstErr == nil {
			firstErr = errors.Wrap(errors.ErrSnapshotCollect, err)
		}
	}

	if avg, err := load.AvgWithContext(ctx); err != nil {
		fail(err)
	} else {
		snapshot.CPULoad = avg.Load1 / float64(runtime.NumCPU()) * 100
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		fail(err)
	} else {
		snapshot.MemTotal = vm.Total
		snapshot.MemFree = vm.Free
	}

	if usage, err := disk.UsageWithContext(ctx, c.diskPath); err != nil {
		fail(err)
	} else {
		snapshot.DiskTotal = usage.Total
		snapshot.DiskFree = usage.Free
	}

	if ifaces, err := gopsnet.InterfacesWithContext(ctx); err != nil {
		fail(err)
	} else {
		snapshot.Interface, snapshot.IPAddr = pickAddress(c.interfaces, ifaces)
	}

	return snapshot, firstErr
}

// pickAddress returns the first preferred interface that carries an IPv4
// address. An absent interface or one without IPv4 is simply skipped.
func pickAddress(preferred []string, ifaces []gopsnet.InterfaceStat) (name, addr string) {
	byName := make(map[string]gopsnet.InterfaceStat, len(ifaces))
	for _, iface := range ifaces {
		byName[iface.Name] = iface
	}

	for _, want := range preferred {
		iface, ok := byName[want]
		if !ok {
			continue
		}
		if ip := firstIPv4(iface.Addrs); ip != "" {
			return iface.Name, ip
		}
	}

	return "", ""
}

func firstIPv4(addrs []gopsnet.InterfaceAddr) string {
	for _, a := range addrs {
		// Addresses come as CIDR, but tolerate bare IPs.
		ip, _, err := net.ParseCIDR(a.Addr)
		if err != nil {
			ip = net.ParseIP(a.Addr)
		}
		if ip != nil && ip.To4() != nil {
			return ip.String()
		}
	}

	return ""
}
