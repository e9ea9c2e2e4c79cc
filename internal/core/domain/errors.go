package domain

import "go.trai.ch/zerr"

var (
	// ErrOverlappingEdits is returned when two recorded edits cover
	// overlapping byte ranges of the same source snapshot.
	ErrOverlappingEdits = zerr.New("overlapping edits")

	// ErrEditOutOfBounds is returned when an edit range falls outside the
	// source text.
	ErrEditOutOfBounds = zerr.New("edit out of bounds")

	// ErrUnterminatedString is returned by the module lexer when a string
	// literal inside an import clause never closes.
	ErrUnterminatedString = zerr.New("unterminated string literal")

	// ErrMalformedImport is returned by the module lexer when an import or
	// export clause cannot be scanned to a specifier.
	ErrMalformedImport = zerr.New("malformed import clause")

	// ErrServerClosed is returned when an operation is attempted against a
	// server that has already shut down.
	ErrServerClosed = zerr.New("server closed")
)
