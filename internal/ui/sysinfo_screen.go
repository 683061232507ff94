package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/keybind"
	"github.com/cokacdir/cokacdir/internal/sysinfo"
)

type sysInfoTab int

const (
	sysInfoTabSystem sysInfoTab = iota
	sysInfoTabDisk
)

// sysInfoScreen is the host/disk statistics screen, reached from either
// panel and refreshed on demand rather than on a timer.
type sysInfoScreen struct {
	tab  sysInfoTab
	snap sysinfo.Snapshot
	disk sysinfo.Disk
}

func newSysInfoScreen(mountpoint string) *sysInfoScreen {
	s := &sysInfoScreen{snap: sysinfo.Load()}
	s.disk, _ = sysinfo.DiskUsage(mountpoint)
	return s
}

func (s *sysInfoScreen) refresh(mountpoint string) {
	s.snap = sysinfo.Load()
	s.disk, _ = sysinfo.DiskUsage(mountpoint)
}

func (s *sysInfoScreen) handleKey(msg tea.KeyMsg, actions *keybind.ActionMap[keybind.SystemInfoAction], mountpoint string) bool {
	b, ok := resolveKey(msg)
	if !ok {
		return false
	}
	action, ok := actions.Lookup(b)
	if !ok {
		return false
	}
	switch action {
	case keybind.SystemInfoRefresh:
		s.refresh(mountpoint)
	case keybind.SystemInfoSwitchTab:
		if s.tab == sysInfoTabSystem {
			s.tab = sysInfoTabDisk
		} else {
			s.tab = sysInfoTabSystem
		}
	case keybind.SystemInfoClose:
		return true
	}
	return false
}

func (s *sysInfoScreen) view() string {
	var out strings.Builder
	if s.tab == sysInfoTabSystem {
		out.WriteString("[ System ]  Disk\n\n")
		out.WriteString(s.viewSystem())
	} else {
		out.WriteString(" System  [ Disk ]\n\n")
		out.WriteString(s.viewDisk())
	}
	out.WriteString("\nr: refresh | esc: back\n")
	return out.String()
}

func (s *sysInfoScreen) viewSystem() string {
	var out strings.Builder
	n := s.snap
	used := n.TotalMem - n.FreeMem
	percent := 0
	if n.TotalMem > 0 {
		percent = int(used * 100 / n.TotalMem)
	}

	fmt.Fprintf(&out, "%-14s %s\n", "Hostname:", n.Hostname)
	fmt.Fprintf(&out, "%-14s %s\n", "User:", n.Username)
	fmt.Fprintf(&out, "%-14s %s (%s)\n", "Platform:", "linux", n.Arch)
	fmt.Fprintf(&out, "%-14s %s\n", "Kernel:", n.Kernel)
	fmt.Fprintf(&out, "%-14s %s\n\n", "Uptime:", formatUptime(n.Uptime))

	fmt.Fprintf(&out, "%-14s %s\n", "Mem Total:", formatSize(int64(n.TotalMem)))
	fmt.Fprintf(&out, "%-14s %s (%d%%)\n", "Mem Used:", formatSize(int64(used)), percent)
	fmt.Fprintf(&out, "%-14s %s\n", "Mem Free:", formatSize(int64(n.FreeMem)))
	out.WriteString(usageBar(percent) + "\n\n")

	fmt.Fprintf(&out, "%-14s %s\n", "CPU Model:", n.CPUModel)
	fmt.Fprintf(&out, "%-14s %d\n", "CPU Cores:", n.CPUCount)
	fmt.Fprintf(&out, "%-14s %.2f / %.2f / %.2f\n", "Load (1/5/15):", n.LoadAvg1, n.LoadAvg5, n.LoadAvg15)
	return out.String()
}

func (s *sysInfoScreen) viewDisk() string {
	var out strings.Builder
	d := s.disk
	fmt.Fprintf(&out, "%-14s %s\n", "Mountpoint:", d.Mountpoint)
	fmt.Fprintf(&out, "%-14s %s\n", "Total:", formatSize(int64(d.Total)))
	fmt.Fprintf(&out, "%-14s %s\n", "Used:", formatSize(int64(d.Used)))
	fmt.Fprintf(&out, "%-14s %s\n", "Available:", formatSize(int64(d.Available)))
	fmt.Fprintf(&out, "%-14s %d%%\n", "Use:", d.UsedPercent)
	out.WriteString(usageBar(d.UsedPercent))
	return out.String()
}

func usageBar(percent int) string {
	const width = 20
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func formatUptime(seconds int64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
}
