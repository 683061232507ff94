package ui

import (
	"os"
	"os/exec"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// runSubshell drops to an interactive shell in dir, releasing the terminal
// for its duration the way tea.ExecProcess is meant to be used for any
// foreground child process.
func (m *Model) runSubshell(dir string) tea.Cmd {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell)
	cmd.Dir = dir
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return opDoneMsg{err: err, info: "returned from subshell"}
	})
}

// suspendProcess sends SIGTSTP to the running process, the same signal a
// shell's Ctrl+Z sends a foreground job.
func suspendProcess() {
	_ = syscall.Kill(os.Getpid(), syscall.SIGTSTP)
}
