package domain

import (
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// Edit is a single range replacement against the original source text.
// Offsets always refer to the unmodified snapshot; they are never shifted as
// other edits accumulate.
type Edit struct {
	Start int
	End   int
	Text  string
}

// EditList accumulates non-overlapping range replacements and materializes
// the patched string in a single pass. Appending is cheap; overlap is
// detected when the list is applied.
type EditList struct {
	edits []Edit
}

// Replace records a replacement of source[start:end] with text.
func (l *EditList) Replace(start, end int, text string) {
	l.edits = append(l.edits, Edit{Start: start, End: end, Text: text})
}

// Empty reports whether no replacements were recorded.
func (l *EditList) Empty() bool {
	return len(l.edits) == 0
}

// Apply materializes the patched string. The original source is left
// untouched; bytes outside the recorded ranges are copied verbatim.
func (l *EditList) Apply(source string) (string, error) {
	if len(l.edits) == 0 {
		return source, nil
	}

	edits := make([]Edit, len(l.edits))
	copy(edits, l.edits)
	sort.Slice(edits, func(i, j int) bool {
		return edits[i].Start < edits[j].Start
	})

	var b strings.Builder
	b.Grow(len(source))
	cursor := 0
	for _, e := range edits {
		if e.Start < cursor {
			return "", zerr.With(ErrOverlappingEdits, "offset", e.Start)
		}
		if e.End < e.Start || e.End > len(source) {
			return "", zerr.With(ErrEditOutOfBounds, "offset", e.End)
		}
		b.WriteString(source[cursor:e.Start])
		b.WriteString(e.Text)
		cursor = e.End
	}
	b.WriteString(source[cursor:])

	return b.String(), nil
}
