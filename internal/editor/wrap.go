package editor

// VisualLine is one rendered row produced by wrapping a logical line to a
// terminal width: which logical line it came from, and the rune range of
// that logical line it covers.
type VisualLine struct {
	LogicalLine int
	Start, End  int
	Text        string
}

// Wrap breaks every logical line in lines into one or more VisualLines no
// wider than width runes. Wrapping never consults find matches — it is
// purely a function of line content and width, so a match computed
// against the logical line (via Buffer.Find) can always be translated
// back into visual coordinates afterward with VisualPosition, once its
// byte offsets are converted to rune columns.
func Wrap(lines []string, width int) []VisualLine {
	if width <= 0 {
		width = 1
	}
	var out []VisualLine
	for li, line := range lines {
		runes := []rune(line)
		if len(runes) == 0 {
			out = append(out, VisualLine{LogicalLine: li, Start: 0, End: 0, Text: ""})
			continue
		}
		for start := 0; start < len(runes); start += width {
			end := start + width
			if end > len(runes) {
				end = len(runes)
			}
			out = append(out, VisualLine{LogicalLine: li, Start: start, End: end, Text: string(runes[start:end])})
		}
	}
	return out
}

// VisualPosition locates the visual row and column a logical (line, col)
// position falls into, given the same width Wrap(lines, width) used.
func VisualPosition(visual []VisualLine, line, col int) (row, visualCol int) {
	for i, v := range visual {
		if v.LogicalLine != line {
			continue
		}
		if col >= v.Start && col <= v.End {
			return i, col - v.Start
		}
	}
	return 0, 0
}
