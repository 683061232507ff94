package ui

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/keybind"
	"github.com/cokacdir/cokacdir/internal/procmgr"
)

type procSortField int

const (
	procSortByPID procSortField = iota
	procSortByCPU
	procSortByMem
)

type procScreenState struct {
	lister procmgr.Lister
	procs  []procmgr.Process
	cursor int
	sortBy procSortField
	status string
}

func newProcScreenState(lister procmgr.Lister) (*procScreenState, error) {
	s := &procScreenState{lister: lister}
	if err := s.refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *procScreenState) refresh() error {
	procs, err := s.lister.List()
	if err != nil {
		return err
	}
	s.procs = procs
	s.sort()
	return nil
}

func (s *procScreenState) sort() {
	switch s.sortBy {
	case procSortByCPU:
		sort.Slice(s.procs, func(i, j int) bool { return s.procs[i].CPUTime > s.procs[j].CPUTime })
	case procSortByMem:
		sort.Slice(s.procs, func(i, j int) bool { return s.procs[i].MemKB > s.procs[j].MemKB })
	default:
		sort.Slice(s.procs, func(i, j int) bool { return s.procs[i].PID < s.procs[j].PID })
	}
}

func (s *procScreenState) handleKey(msg tea.KeyMsg, actions *keybind.ActionMap[keybind.ProcessManagerAction]) (closeRequested bool) {
	b, ok := resolveKey(msg)
	if !ok {
		return false
	}
	action, ok := actions.Lookup(b)
	if !ok {
		return false
	}
	switch action {
	case keybind.ProcessManagerMoveUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case keybind.ProcessManagerMoveDown:
		if s.cursor < len(s.procs)-1 {
			s.cursor++
		}
	case keybind.ProcessManagerSortByCPU:
		s.sortBy = procSortByCPU
		s.sort()
	case keybind.ProcessManagerSortByMem:
		s.sortBy = procSortByMem
		s.sort()
	case keybind.ProcessManagerSortByPID:
		s.sortBy = procSortByPID
		s.sort()
	case keybind.ProcessManagerTerminate:
		if s.cursor < len(s.procs) {
			if err := procmgr.Terminate(s.procs[s.cursor].PID); err != nil {
				s.status = fmt.Sprintf("terminate failed: %v", err)
			}
			s.refresh()
		}
	case keybind.ProcessManagerKill:
		if s.cursor < len(s.procs) {
			if err := procmgr.Kill(s.procs[s.cursor].PID); err != nil {
				s.status = fmt.Sprintf("kill failed: %v", err)
			}
			s.refresh()
		}
	case keybind.ProcessManagerClose:
		return true
	}
	return false
}

func (s *procScreenState) view() string {
	out := fmt.Sprintf("%6s %-20s %6s %10s\n", "PID", "NAME", "STATE", "MEM(KB)")
	for i, p := range s.procs {
		cursor := "  "
		if i == s.cursor {
			cursor = "> "
		}
		out += fmt.Sprintf("%s%6d %-20s %6s %10d\n", cursor, p.PID, p.Name, p.State, p.MemKB)
	}
	if s.status != "" {
		out += "\n" + s.status
	}
	return out
}
