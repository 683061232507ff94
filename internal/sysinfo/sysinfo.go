// Package sysinfo reads host and filesystem statistics for the system-info
// screen. Like internal/procmgr, it parses /proc directly rather than
// reaching for a system-stats library, since none of the example
// repositories in scope pull one in for a TUI of this kind.
package sysinfo

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"syscall"
)

// Snapshot is one read of host-level system information.
type Snapshot struct {
	Hostname  string
	Username  string
	Kernel    string
	Arch      string
	Uptime    int64 // seconds
	TotalMem  uint64
	FreeMem   uint64
	CPUModel  string
	CPUCount  int
	LoadAvg1  float64
	LoadAvg5  float64
	LoadAvg15 float64
}

// Load reads a fresh Snapshot from /proc and the environment.
func Load() Snapshot {
	var s Snapshot

	s.Hostname, _ = os.Hostname()
	s.Username = os.Getenv("USER")
	if s.Username == "" {
		s.Username = os.Getenv("USERNAME")
	}
	if s.Username == "" {
		s.Username = "unknown"
	}
	s.Arch = runtime.GOARCH

	if raw, err := os.ReadFile("/proc/sys/kernel/osrelease"); err == nil {
		s.Kernel = strings.TrimSpace(string(raw))
	}

	if raw, err := os.ReadFile("/proc/uptime"); err == nil {
		fields := strings.Fields(string(raw))
		if len(fields) > 0 {
			if secs, err := strconv.ParseFloat(fields[0], 64); err == nil {
				s.Uptime = int64(secs)
			}
		}
	}

	if f, err := os.Open("/proc/meminfo"); err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "MemTotal:"):
				s.TotalMem = parseMemInfoLine(line) * 1024
			case strings.HasPrefix(line, "MemAvailable:"):
				s.FreeMem = parseMemInfoLine(line) * 1024
			}
		}
		f.Close()
	}

	if f, err := os.Open("/proc/cpuinfo"); err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "processor"):
				s.CPUCount++
			case strings.HasPrefix(line, "model name") && s.CPUModel == "":
				if idx := strings.IndexByte(line, ':'); idx >= 0 {
					s.CPUModel = strings.TrimSpace(line[idx+1:])
				}
			}
		}
		f.Close()
	}

	if raw, err := os.ReadFile("/proc/loadavg"); err == nil {
		fields := strings.Fields(string(raw))
		if len(fields) >= 3 {
			s.LoadAvg1, _ = strconv.ParseFloat(fields[0], 64)
			s.LoadAvg5, _ = strconv.ParseFloat(fields[1], 64)
			s.LoadAvg15, _ = strconv.ParseFloat(fields[2], 64)
		}
	}

	return s
}

func parseMemInfoLine(line string) uint64 {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}
	v, _ := strconv.ParseUint(fields[1], 10, 64)
	return v
}

// Disk is one mounted filesystem's usage, as reported by statfs(2).
type Disk struct {
	Mountpoint  string
	Total       uint64
	Used        uint64
	Available   uint64
	UsedPercent int
}

// DiskUsage statfs's a single mountpoint. Callers pick the mountpoint (the
// active panel's current directory is the natural default) since walking
// /proc/mounts to enumerate every filesystem drags in a lot of pseudo
// filesystems (tmpfs, proc, cgroup) that aren't useful in a file manager.
func DiskUsage(mountpoint string) (Disk, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(mountpoint, &stat); err != nil {
		return Disk{}, fmt.Errorf("sysinfo: statfs %s: %w", mountpoint, err)
	}
	blockSize := uint64(stat.Bsize)
	total := stat.Blocks * blockSize
	free := stat.Bfree * blockSize
	avail := stat.Bavail * blockSize
	used := total - free

	percent := 0
	if total > 0 {
		percent = int(used * 100 / total)
	}

	return Disk{
		Mountpoint:  mountpoint,
		Total:       total,
		Used:        used,
		Available:   avail,
		UsedPercent: percent,
	}, nil
}
