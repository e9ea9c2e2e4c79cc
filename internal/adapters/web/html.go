package web

import (
	"bytes"

	"golang.org/x/net/html"
)

// ScriptBlock is one inline script element located in an HTML document.
// Offsets are byte positions in the original document, so blocks can be
// patched with the same range-replacement machinery used for module source.
type ScriptBlock struct {
	// TagStart is the offset of the opening tag's '<'.
	TagStart int
	// Start and End bound the script text between the tags.
	Start int
	End   int
	// Code is the script text.
	Code string
}

// InlineScripts tokenizes the document and returns every inline script
// block in order. Script elements with a src attribute are external and
// skipped. Byte offsets are recovered from the tokenizer's raw token
// stream, which consumes the input exactly.
func InlineScripts(doc []byte) []ScriptBlock {
	z := html.NewTokenizer(bytes.NewReader(doc))
	var blocks []ScriptBlock
	var open *ScriptBlock
	pos := 0

	for {
		tt := z.Next()
		raw := z.Raw()
		tokStart := pos
		pos += len(raw)

		switch tt {
		case html.ErrorToken:
			return blocks

		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if !bytes.Equal(name, []byte("script")) {
				continue
			}
			external := false
			for hasAttr {
				var key []byte
				key, _, hasAttr = z.TagAttr()
				if bytes.Equal(key, []byte("src")) {
					external = true
				}
			}
			if !external {
				open = &ScriptBlock{TagStart: tokStart, Start: pos, End: pos}
			}

		case html.TextToken:
			if open != nil {
				open.Start = tokStart
				open.End = pos
				open.Code = string(raw)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if open != nil && bytes.Equal(name, []byte("script")) {
				blocks = append(blocks, *open)
			}
			open = nil
		}
	}
}
