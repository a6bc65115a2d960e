package status

import (
	"testing"

	gopsnet "github.com/shirou/gopsutil/v3/net"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotLines(t *testing.T) {
	s := Snapshot{
		CPULoad:     12.4,
		MemTotal:    924 << 20,
		MemFree:     123 << 20,
		DiskTotal:   14890 << 20,
		DiskFree:    1234 << 20,
		Interface:   "eth0",
		IPAddr:      "192.168.1.17",
		Temperature: 45.3,
	}

	assert.Equal(t, []string{
		"CPU:12%",
		"Temp:45.3C",
		"RAM:123/924 MB",
		"Disk:1234/14890MB",
		"eth0:192.168.1.17",
	}, s.Lines())
}

func TestSnapshotIPLineEmptyWithoutInterface(t *testing.T) {
	assert.Empty(t, Snapshot{}.IPLine())
}

func TestPickAddressPrefersOrder(t *testing.T) {
	ifaces := []gopsnet.InterfaceStat{
		{Name: "lo", Addrs: []gopsnet.InterfaceAddr{{Addr: "127.0.0.1/8"}}},
		{Name: "wlan0", Addrs: []gopsnet.InterfaceAddr{{Addr: "10.0.0.9/24"}}},
		{Name: "eth0", Addrs: []gopsnet.InterfaceAddr{{Addr: "192.168.1.17/24"}}},
	}

	name, addr := pickAddress([]string{"eth0", "wlan0"}, ifaces)
	assert.Equal(t, "eth0", name)
	assert.Equal(t, "192.168.1.17", addr)
}

func TestPickAddressFallsBack(t *testing.T) {
	ifaces := []gopsnet.InterfaceStat{
		{Name: "wlan0", Addrs: []gopsnet.InterfaceAddr{{Addr: "10.0.0.9/24"}}},
	}

	name, addr := pickAddress([]string{"eth0", "wlan0"}, ifaces)
	assert.Equal(t, "wlan0", name)
	assert.Equal(t, "10.0.0.9", addr)
}

func TestPickAddressSkipsIPv6OnlyInterfaces(t *testing.T) {
	ifaces := []gopsnet.InterfaceStat{
		{Name: "eth0", Addrs: []gopsnet.InterfaceAddr{{Addr: "fe80::1/64"}}},
		{Name: "wlan0", Addrs: []gopsnet.InterfaceAddr{{Addr: "10.0.0.9/24"}}},
	}

	name, addr := pickAddress([]string{"eth0", "wlan0"}, ifaces)
	assert.Equal(t, "wlan0", name)
	assert.Equal(t, "10.0.0.9", addr)
}

func TestPickAddressNoneFound(t *testing.T) {
	name, addr := pickAddress([]string{"eth0", "wlan0"}, nil)
	assert.Empty(t, name)
	assert.Empty(t, addr)
}

func TestFirstIPv4ToleratesBareIPs(t *testing.T) {
	assert.Equal(t, "10.1.2.3", firstIPv4([]gopsnet.InterfaceAddr{{Addr: "10.1.2.3"}}))
	assert.Empty(t, firstIPv4([]gopsnet.InterfaceAddr{{Addr: "garbage"}}))
}
