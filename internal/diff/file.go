package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineOp is one line of a unified line-level diff.
type LineOp struct {
	Kind LineKind
	Text string
}

// LineKind classifies a LineOp.
type LineKind int

const (
	LineEqual LineKind = iota
	LineInsert
	LineDelete
)

// Files computes a line-level diff between two file contents using
// diff-match-patch's line mode (line hashing + character-level LCS over
// the hashed lines), rather than a hand-rolled LCS implementation.
func Files(leftText, rightText string) []LineOp {
	dmp := diffmatchpatch.New()
	leftLines, rightLines, lineArray := dmp.DiffLinesToChars(leftText, rightText)
	diffs := dmp.DiffMain(leftLines, rightLines, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var ops []LineOp
	for _, d := range diffs {
		lines := strings.SplitAfter(d.Text, "\n")
		for _, line := range lines {
			if line == "" {
				continue
			}
			var kind LineKind
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				kind = LineInsert
			case diffmatchpatch.DiffDelete:
				kind = LineDelete
			default:
				kind = LineEqual
			}
			ops = append(ops, LineOp{Kind: kind, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return ops
}
