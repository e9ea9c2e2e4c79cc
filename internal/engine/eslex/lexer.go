// Package eslex implements a single-pass lexer that locates import and
// export specifiers in ECMAScript module source. It tracks only specifier
// boundaries, never a syntax tree: the rewriting engine needs byte offsets
// and nothing else. Strings, template literal text, and comments are skipped
// so their contents can never be mistaken for module syntax; template `${}`
// interpolations are scanned as expressions.
package eslex

import (
	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/zerr"
)

// Specifier is one import target found in module source. Start and End are
// byte offsets of the specifier text, excluding the surrounding quotes.
type Specifier struct {
	Value   string
	Start   int
	End     int
	Dynamic bool
}

// Scan lexes the source for import/export specifiers in source order.
// Static `import ... from`, side-effect `import "x"`, and `export ... from`
// clauses are recognized at module scope; dynamic `import("x")` calls with a
// literal argument are recognized at any depth. Malformed module syntax
// returns an error; the caller decides whether that is fatal.
func Scan(source string) ([]Specifier, error) {
	s := scanner{src: source, n: len(source)}
	return s.run()
}

type scanner struct {
	src   string
	n     int
	pos   int
	depth int
	// templates records, per open `${` interpolation, the brace depth at
	// which its closing brace resumes the surrounding template text.
	templates []int
	specs     []Specifier
}

func (s *scanner) run() ([]Specifier, error) {
	for s.pos < s.n {
		c := s.src[s.pos]
		switch {
		case c == '{':
			s.depth++
			s.pos++
		case c == '}':
			if s.depth > 0 {
				s.depth--
			}
			s.pos++
			if l := len(s.templates); l > 0 && s.templates[l-1] == s.depth {
				s.templates = s.templates[:l-1]
				s.skipTemplateText()
			}
		case c == '\'' || c == '"':
			s.skipString(c)
		case c == '`':
			s.pos++
			s.skipTemplateText()
		case c == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case c == '/' && s.peek(1) == '*':
			s.skipBlockComment()
		case c == 'i' && s.wordAt("import"):
			if err := s.scanImport(); err != nil {
				return nil, err
			}
		case c == 'e' && s.depth == 0 && s.wordAt("export"):
			if err := s.scanExport(); err != nil {
				return nil, err
			}
		default:
			s.pos++
		}
	}
	return s.specs, nil
}

func (s *scanner) peek(off int) byte {
	if s.pos+off >= s.n {
		return 0
	}
	return s.src[s.pos+off]
}

// wordAt reports whether the keyword starts at the current position with
// identifier boundaries on both sides.
func (s *scanner) wordAt(word string) bool {
	if s.pos+len(word) > s.n || s.src[s.pos:s.pos+len(word)] != word {
		return false
	}
	if s.pos > 0 {
		prev := s.src[s.pos-1]
		if isIdentByte(prev) || prev == '.' || prev == '$' {
			return false
		}
	}
	if end := s.pos + len(word); end < s.n {
		next := s.src[end]
		if isIdentByte(next) || next == '$' {
			return false
		}
	}
	return true
}

func (s *scanner) scanImport() error {
	start := s.pos
	s.pos += len("import")
	s.skipTrivia()

	switch {
	case s.pos >= s.n:
		return zerr.With(domain.ErrMalformedImport, "offset", start)
	case s.src[s.pos] == '(':
		// Dynamic import call. Only literal arguments yield a specifier.
		s.scanDynamicCall()
		return nil
	case s.src[s.pos] == '.':
		// import.meta, never a specifier.
		return nil
	case s.depth > 0:
		// Static imports are module-scope only; `import` here is an
		// identifier (e.g. an object key).
		return nil
	case s.src[s.pos] == '\'' || s.src[s.pos] == '"':
		// Side-effect import.
		return s.captureSpecifier(false)
	default:
		return s.scanFromClause(start)
	}
}

func (s *scanner) scanExport() error {
	start := s.pos
	s.pos += len("export")
	s.skipTrivia()
	if s.pos >= s.n {
		return nil
	}

	switch s.src[s.pos] {
	case '{':
		// Either a re-export with a source or a plain export list.
		s.skipBraces()
		s.skipTrivia()
		if s.wordAt("from") {
			s.pos += len("from")
			s.skipTrivia()
			return s.captureSpecifier(false)
		}
		return nil
	case '*':
		return s.scanFromClause(start)
	default:
		// export default / export const / export function: declarations
		// carry no specifier, resume normal scanning.
		return nil
	}
}

// scanFromClause consumes an import/export clause up to its `from` keyword
// and captures the following specifier.
func (s *scanner) scanFromClause(start int) error {
	for s.pos < s.n {
		c := s.src[s.pos]
		switch {
		case c == '{':
			s.skipBraces()
		case c == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case c == '/' && s.peek(1) == '*':
			s.skipBlockComment()
		case c == '\'' || c == '"':
			// A clause must name its source through `from`; a bare string
			// here means we lost track of the syntax.
			return zerr.With(domain.ErrMalformedImport, "offset", start)
		case c == ';':
			return zerr.With(domain.ErrMalformedImport, "offset", start)
		case c == 'f' && s.wordAt("from"):
			s.pos += len("from")
			s.skipTrivia()
			return s.captureSpecifier(false)
		default:
			s.pos++
		}
	}
	return zerr.With(domain.ErrMalformedImport, "offset", start)
}

// scanDynamicCall records the argument of import(...) when it is a single
// string literal. Non-literal arguments are skipped over balanced parens.
func (s *scanner) scanDynamicCall() {
	s.pos++ // consume '('
	s.skipTrivia()
	if s.pos < s.n && (s.src[s.pos] == '\'' || s.src[s.pos] == '"') {
		quote := s.src[s.pos]
		valueStart := s.pos + 1
		end := s.stringEnd(valueStart, quote)
		if end < 0 {
			s.pos = s.n
			return
		}
		s.specs = append(s.specs, Specifier{
			Value:   s.src[valueStart:end],
			Start:   valueStart,
			End:     end,
			Dynamic: true,
		})
		s.pos = end + 1
	}
	s.skipParens()
}

// captureSpecifier records the string literal at the current position.
func (s *scanner) captureSpecifier(dynamic bool) error {
	if s.pos >= s.n || (s.src[s.pos] != '\'' && s.src[s.pos] != '"') {
		return zerr.With(domain.ErrMalformedImport, "offset", s.pos)
	}
	quote := s.src[s.pos]
	valueStart := s.pos + 1
	end := s.stringEnd(valueStart, quote)
	if end < 0 {
		return zerr.With(domain.ErrUnterminatedString, "offset", s.pos)
	}
	s.specs = append(s.specs, Specifier{
		Value:   s.src[valueStart:end],
		Start:   valueStart,
		End:     end,
		Dynamic: dynamic,
	})
	s.pos = end + 1
	return nil
}

// stringEnd returns the offset of the closing quote, or -1.
func (s *scanner) stringEnd(from int, quote byte) int {
	for i := from; i < s.n; i++ {
		switch s.src[i] {
		case '\\':
			i++
		case quote:
			return i
		}
	}
	return -1
}

// skipString consumes a quoted run up to the matching unescaped quote.
// Clause-local scans also route backticks here, treating `${}` interpolation
// bodies as literal text; only the top-level loop scans interpolations as
// expressions.
func (s *scanner) skipString(quote byte) {
	end := s.stringEnd(s.pos+1, quote)
	if end < 0 {
		s.pos = s.n
		return
	}
	s.pos = end + 1
}

// skipTemplateText skips template literal text following an opening backtick
// or a closed `${` interpolation. An interpolation body is a full expression,
// so control returns to the main scan loop for it; imports inside one are
// still recorded. The matching close brace resumes the template text.
func (s *scanner) skipTemplateText() {
	for s.pos < s.n {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
		case '`':
			s.pos++
			return
		case '$':
			if s.peek(1) == '{' {
				s.templates = append(s.templates, s.depth)
				s.depth++
				s.pos += 2
				return
			}
			s.pos++
		default:
			s.pos++
		}
	}
}

func (s *scanner) skipLineComment() {
	for s.pos < s.n && s.src[s.pos] != '\n' {
		s.pos++
	}
}

func (s *scanner) skipBlockComment() {
	s.pos += 2
	for s.pos+1 < s.n {
		if s.src[s.pos] == '*' && s.src[s.pos+1] == '/' {
			s.pos += 2
			return
		}
		s.pos++
	}
	s.pos = s.n
}

// skipBraces consumes a balanced brace block, honoring nested strings and
// comments.
func (s *scanner) skipBraces() {
	depth := 0
	for s.pos < s.n {
		switch c := s.src[s.pos]; {
		case c == '{':
			depth++
			s.pos++
		case c == '}':
			depth--
			s.pos++
			if depth == 0 {
				return
			}
		case c == '\'' || c == '"' || c == '`':
			s.skipString(c)
		case c == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case c == '/' && s.peek(1) == '*':
			s.skipBlockComment()
		default:
			s.pos++
		}
	}
}

// skipParens consumes the remainder of a balanced paren group. The opening
// paren has already been consumed.
func (s *scanner) skipParens() {
	depth := 1
	for s.pos < s.n && depth > 0 {
		switch c := s.src[s.pos]; {
		case c == '(':
			depth++
			s.pos++
		case c == ')':
			depth--
			s.pos++
		case c == '\'' || c == '"' || c == '`':
			s.skipString(c)
		case c == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case c == '/' && s.peek(1) == '*':
			s.skipBlockComment()
		default:
			s.pos++
		}
	}
}

// skipTrivia skips whitespace and comments.
func (s *scanner) skipTrivia() {
	for s.pos < s.n {
		switch c := s.src[s.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			s.pos++
		case c == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case c == '/' && s.peek(1) == '*':
			s.skipBlockComment()
		default:
			return
		}
	}
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
