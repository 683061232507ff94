package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/applog"
	"github.com/cokacdir/cokacdir/internal/config"
	"github.com/cokacdir/cokacdir/internal/ui"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cokacdir: loading settings: %v\n", err)
		settings = config.Default()
	}

	if dir, err := config.Dir(); err == nil {
		if err := applog.Init(dir); err != nil {
			fmt.Fprintf(os.Stderr, "cokacdir: logging disabled: %v\n", err)
		}
	}
	defer applog.Close()

	p := tea.NewProgram(ui.NewModel(settings), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		applog.Error("program exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "cokacdir: %v\n", err)
		os.Exit(1)
	}

	if m, ok := finalModel.(*ui.Model); ok {
		if err := config.Save(m.Settings()); err != nil {
			applog.Error("saving settings: %v", err)
		}
	}
}
