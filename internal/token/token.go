package token

import "fmt"

// Position is a location in the source text. Line and Column are 1-based;
// Column counts runes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Structural characters of the grammar.
const (
	Assign     = '='
	LBrace     = '{'
	RBrace     = '}'
	Comma      = ','
	Quote      = '"'
	Backslash  = '\\'
	NullPrefix = 'n'
)

// Null is the only keyword.
const Null = "null"

// IsSpace reports whether ch is skipped between tokens. This is the C
// isspace set.
func IsSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsNameStart reports whether ch may begin a node name.
func IsNameStart(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

// IsNameEnd reports whether ch terminates a node name. The terminator is
// not part of the name.
func IsNameEnd(ch rune) bool {
	return ch == ' ' || ch == Assign
}
