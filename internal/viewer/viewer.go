// Package viewer implements the read-only file pager: plain-text
// scrolling, a hex dump mode, line bookmarks, and find.
package viewer

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Pager holds the content and navigation state for the read-only viewer.
type Pager struct {
	Path      string
	Lines     []string
	Hex       bool
	raw       []byte
	Bookmarks map[int]bool
	Cursor    int
}

// Open reads path fully into a Pager. The viewer has no size cap of its
// own — the editor's 50 MiB cap exists because edits are held as
// snapshots, not because reading is expensive.
func Open(path string) (*Pager, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Pager{
		Path:      path,
		Lines:     strings.Split(string(raw), "\n"),
		raw:       raw,
		Bookmarks: make(map[int]bool),
	}, nil
}

// ToggleHex flips between plain-text and hex dump rendering.
func (p *Pager) ToggleHex() { p.Hex = !p.Hex }

// HexDump renders the raw bytes in classic 16-bytes-per-row hex+ASCII form.
func (p *Pager) HexDump() []string {
	var out []string
	for off := 0; off < len(p.raw); off += 16 {
		end := off + 16
		if end > len(p.raw) {
			end = len(p.raw)
		}
		chunk := p.raw[off:end]
		hexPart := make([]string, 16)
		asciiPart := make([]byte, 16)
		for i := 0; i < 16; i++ {
			if i < len(chunk) {
				hexPart[i] = fmt.Sprintf("%02x", chunk[i])
				if chunk[i] >= 0x20 && chunk[i] < 0x7f {
					asciiPart[i] = chunk[i]
				} else {
					asciiPart[i] = '.'
				}
			} else {
				hexPart[i] = "  "
				asciiPart[i] = ' '
			}
		}
		out = append(out, fmt.Sprintf("%08x  %s  %s", off, strings.Join(hexPart, " "), string(asciiPart)))
	}
	return out
}

// ToggleBookmark flips the bookmark on line.
func (p *Pager) ToggleBookmark(line int) {
	if p.Bookmarks[line] {
		delete(p.Bookmarks, line)
	} else {
		p.Bookmarks[line] = true
	}
}

// NextBookmark returns the smallest bookmarked line strictly after from,
// wrapping to the smallest bookmarked line overall if none is found after.
func (p *Pager) NextBookmark(from int) (int, bool) {
	best := -1
	smallest := -1
	for line := range p.Bookmarks {
		if line > from && (best == -1 || line < best) {
			best = line
		}
		if smallest == -1 || line < smallest {
			smallest = line
		}
	}
	if best != -1 {
		return best, true
	}
	if smallest != -1 {
		return smallest, true
	}
	return 0, false
}

// Find returns the line numbers containing a match of pattern.
func (p *Pager) Find(pattern string) ([]int, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, err
	}
	var hits []int
	for i, line := range p.Lines {
		if re.MatchString(line) {
			hits = append(hits, i)
		}
	}
	return hits, nil
}
