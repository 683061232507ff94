package ui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/imageview"
	"github.com/cokacdir/cokacdir/internal/keybind"
)

type imageScreenState struct {
	path      string
	decoder   imageview.Decoder
	cols      int
	rows      int
	panX      int
	panY      int
	rendered  string
	status    string
}

func newImageScreenState(path string) (*imageScreenState, error) {
	s := &imageScreenState{path: path, decoder: imageview.StdDecoder{}, cols: 80, rows: 24}
	if err := s.render(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *imageScreenState) render() error {
	f, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer f.Close()
	img, err := s.decoder.Decode(f)
	if err != nil {
		return err
	}
	grid := imageview.Downsample(img, s.cols, s.rows)
	s.rendered = imageview.Render(grid)
	return nil
}

func (s *imageScreenState) handleKey(msg tea.KeyMsg, actions *keybind.ActionMap[keybind.ImageViewerAction]) (closeRequested bool) {
	b, ok := resolveKey(msg)
	if !ok {
		return false
	}
	action, ok := actions.Lookup(b)
	if !ok {
		return false
	}
	switch action {
	case keybind.ImageViewerZoomIn:
		s.cols += 10
		s.rows += 5
		s.render()
	case keybind.ImageViewerZoomOut:
		if s.cols > 10 {
			s.cols -= 10
			s.rows -= 5
			s.render()
		}
	case keybind.ImageViewerClose:
		return true
	}
	return false
}

func (s *imageScreenState) view() string {
	if s.status != "" {
		return s.status
	}
	return s.rendered
}
