package parser

import (
	"io"

	"github.com/KimNorgaard/go-ntree/ast"
	"github.com/KimNorgaard/go-ntree/internal/lexer"
	"github.com/KimNorgaard/go-ntree/internal/token"
)

// DefaultMaxDepth is the array nesting limit used when none is given.
const DefaultMaxDepth = 1000

// idCounter hands out node identities for a single parse.
type idCounter struct {
	last int
}

func (c *idCounter) next() int {
	c.last++
	return c.last
}

// Parser builds a node tree by recursive descent over a Lexer.
type Parser struct {
	l        *lexer.Lexer
	maxDepth int
	depth    int
	ids      *idCounter
}

// New creates a new parser. A maxDepth <= 0 selects DefaultMaxDepth.
func New(l *lexer.Lexer, maxDepth int) *Parser {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Parser{l: l, maxDepth: maxDepth}
}

// Pos returns the lexer's current position.
func (p *Parser) Pos() token.Position { return p.l.Pos() }

// Parse reads exactly one named node. Every call starts a fresh id
// sequence, so the returned root has id 1 and its descendants are numbered
// in pre-order. Input after the node is left unread.
func (p *Parser) Parse() (*ast.Node, error) {
	p.ids = &idCounter{}
	p.depth = 0
	return p.parseNode()
}

// ExpectEOF returns an error unless only whitespace remains.
func (p *Parser) ExpectEOF() error {
	ch, pos, err := p.l.Next()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	return lexer.Errorf(pos, "unexpected %q after top-level node", ch)
}

// parseNode parses `name = value`.
func (p *Parser) parseNode() (*ast.Node, error) {
	ch, pos, err := p.l.Next()
	if err != nil {
		return nil, unexpectedEOF(err, pos, "unexpected end of input, expected node name")
	}
	if !token.IsNameStart(ch) {
		return nil, lexer.Errorf(pos, "invalid start of node name %q", ch)
	}
	if err := p.l.UnreadRune(); err != nil {
		return nil, err
	}
	name, err := p.l.ScanName()
	if err != nil {
		return nil, err
	}

	ch, pos, err = p.l.Next()
	if err != nil {
		return nil, unexpectedEOF(err, pos, "unexpected end of input, expected '='")
	}
	if ch != token.Assign {
		return nil, lexer.Errorf(pos, "expected '=' after node name %q, got %q", name, ch)
	}

	// The id is taken before descending so parents number below children.
	id := p.ids.next()
	n, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return n.SetName(name).SetID(id), nil
}

func (p *Parser) parseValue() (*ast.Node, error) {
	ch, pos, err := p.l.Next()
	if err != nil {
		return nil, unexpectedEOF(err, pos, "unexpected end of input, expected value")
	}
	switch ch {
	case token.LBrace:
		return p.parseArray(pos)
	case token.Quote:
		s, err := p.l.ScanString()
		if err != nil {
			return nil, err
		}
		return ast.NewString(s), nil
	case token.NullPrefix:
		if err := p.l.UnreadRune(); err != nil {
			return nil, err
		}
		if err := p.l.ScanNull(); err != nil {
			return nil, err
		}
		return ast.NewNull(), nil
	}
	return nil, lexer.Errorf(pos, "unexpected %q, expected string, null or array", ch)
}

// parseArray is entered after '{' and returns after the matching '}'.
func (p *Parser) parseArray(open token.Position) (*ast.Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, lexer.Errorf(open, "maximum nesting depth %d exceeded", p.maxDepth)
	}

	var elems []*ast.Node
	for {
		ch, pos, err := p.l.Next()
		if err != nil {
			return nil, unexpectedEOF(err, pos, "unterminated array")
		}
		if ch == token.RBrace {
			if len(elems) == 0 {
				return nil, lexer.Errorf(open, "empty array")
			}
			return ast.NewArray(elems...), nil
		}
		// One optional comma may precede each element.
		if ch != token.Comma {
			if err := p.l.UnreadRune(); err != nil {
				return nil, err
			}
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		elems = append(elems, n)
	}
}

func unexpectedEOF(err error, pos token.Position, msg string) error {
	if err != io.EOF {
		return err
	}
	return &lexer.Error{Pos: pos, Msg: msg, Err: io.ErrUnexpectedEOF}
}
