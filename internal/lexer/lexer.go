package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-ntree/internal/token"
)

// Error is a failure found while scanning. Pos is where the offending
// character starts.
type Error struct {
	Pos token.Position
	Msg string
	Err error
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf returns an *Error at pos.
func Errorf(pos token.Position, format string, args ...any) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Lexer reads source text one rune at a time. It supports a single rune of
// putback, which is all the grammar needs.
type Lexer struct {
	r    *bufio.Reader
	buf  strings.Builder
	pos  token.Position // position of the next rune
	prev token.Position // position before the last ReadRune
	raw  int            // last byte read if it was not valid UTF-8, else -1
}

// New creates and returns a new Lexer reading from r.
func New(r io.Reader) *Lexer {
	return &Lexer{
		r:   bufio.NewReader(r),
		pos: token.Position{Line: 1, Column: 1},
		raw: -1,
	}
}

// Pos returns the position of the next rune to be read.
func (l *Lexer) Pos() token.Position { return l.pos }

// ReadRune returns the next rune. It returns io.EOF at the end of input and
// an *Error for any other read failure. A byte that is not valid UTF-8 is
// returned as utf8.RuneError and occupies one column; the scanners copy the
// byte itself into their result.
func (l *Lexer) ReadRune() (rune, error) {
	ch, size, err := l.r.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, &Error{Pos: l.pos, Msg: "read error: " + err.Error(), Err: err}
	}
	l.raw = -1
	if ch == utf8.RuneError && size == 1 {
		if err := l.r.UnreadRune(); err != nil {
			return 0, err
		}
		b, err := l.r.ReadByte()
		if err != nil {
			return 0, err
		}
		l.raw = int(b)
	}
	l.prev = l.pos
	if ch == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	return ch, nil
}

// UnreadRune puts back the last rune read.
func (l *Lexer) UnreadRune() error {
	unread := l.r.UnreadRune
	if l.raw >= 0 {
		unread = l.r.UnreadByte
	}
	if err := unread(); err != nil {
		return err
	}
	l.pos = l.prev
	return nil
}

// Next skips whitespace and returns the next rune with its position.
func (l *Lexer) Next() (rune, token.Position, error) {
	for {
		pos := l.pos
		ch, err := l.ReadRune()
		if err != nil {
			return 0, pos, err
		}
		if !token.IsSpace(ch) {
			return ch, pos, nil
		}
	}
}

// ScanName reads a node name up to, but not including, a space or '='.
// Names cannot contain a backslash or a line break, and must be terminated.
func (l *Lexer) ScanName() (string, error) {
	l.buf.Reset()
	for {
		pos := l.pos
		ch, err := l.ReadRune()
		if err == io.EOF {
			return "", &Error{Pos: pos, Msg: "unexpected end of input in node name", Err: io.ErrUnexpectedEOF}
		}
		if err != nil {
			return "", err
		}
		switch {
		case token.IsNameEnd(ch):
			if err := l.UnreadRune(); err != nil {
				return "", err
			}
			return l.buf.String(), nil
		case ch == token.Backslash:
			return "", Errorf(pos, "escape sequence in node name")
		case ch == '\r' || ch == '\n':
			return "", Errorf(pos, "unexpected end of line in node name")
		}
		l.appendRune(ch)
	}
}

// ScanString reads a quoted string. The opening quote must already have
// been consumed; the closing quote is consumed and not returned.
func (l *Lexer) ScanString() (string, error) {
	l.buf.Reset()
	for {
		pos := l.pos
		ch, err := l.ReadRune()
		if err == io.EOF {
			return "", &Error{Pos: pos, Msg: "unterminated string", Err: io.ErrUnexpectedEOF}
		}
		if err != nil {
			return "", err
		}
		switch ch {
		case token.Quote:
			return l.buf.String(), nil
		case token.Backslash:
			r, err := l.readEscape()
			if err != nil {
				return "", err
			}
			l.buf.WriteRune(r)
		case '\r', '\n':
			return "", Errorf(pos, "unexpected end of line in string")
		default:
			l.appendRune(ch)
		}
	}
}

// appendRune adds the last rune read to buf, or the raw byte it was
// decoded from if that byte is not valid UTF-8.
func (l *Lexer) appendRune(ch rune) {
	if l.raw >= 0 {
		l.buf.WriteByte(byte(l.raw))
		return
	}
	l.buf.WriteRune(ch)
}

func (l *Lexer) readEscape() (rune, error) {
	pos := l.pos
	ch, err := l.ReadRune()
	if err == io.EOF {
		return 0, &Error{Pos: pos, Msg: "unterminated string", Err: io.ErrUnexpectedEOF}
	}
	if err != nil {
		return 0, err
	}
	switch ch {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	}
	return 0, Errorf(pos, "unrecognized escape sequence \\%c", ch)
}

// ScanNull reads the four runes of the null literal.
func (l *Lexer) ScanNull() error {
	start := l.pos
	l.buf.Reset()
	for range len(token.Null) {
		ch, err := l.ReadRune()
		if err == io.EOF {
			return &Error{Pos: start, Msg: "unexpected end of input, expected null", Err: io.ErrUnexpectedEOF}
		}
		if err != nil {
			return err
		}
		l.appendRune(ch)
	}
	if got := l.buf.String(); got != token.Null {
		return Errorf(start, "expected null, got %q", got)
	}
	return nil
}
