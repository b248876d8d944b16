package ntree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/KimNorgaard/go-ntree/ast"
	"github.com/KimNorgaard/go-ntree/internal/formatter"
	"github.com/KimNorgaard/go-ntree/internal/lexer"
	"github.com/KimNorgaard/go-ntree/internal/parser"
	"github.com/KimNorgaard/go-ntree/internal/token"
)

const defaultMaxDepth = parser.DefaultMaxDepth

// Document owns the root node of a tree.
type Document struct {
	root *ast.Node
}

// NewDocument wraps a hand-built tree. A nil root is treated as the zero
// Node.
func NewDocument(root *ast.Node) *Document {
	if root == nil {
		root = &ast.Node{}
	}
	return &Document{root: root}
}

// Root returns the root node.
func (d *Document) Root() *ast.Node { return d.root }

// Equal reports whether d and o have structurally equal roots. Node names
// and ids are not compared.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.root.Equal(o.root)
}

// Load reads one named node from r and returns it as a Document.
//
// Node ids are numbered from 1 for every call. Load reads only as far as the
// end of the top-level node; anything after it is ignored unless the
// DisallowTrailingData option is given.
//
// Any grammar violation, and any read error from r, is returned as a
// *ParsingError. Load is safe for concurrent use with distinct readers.
func Load(r io.Reader, opts ...Option) (*Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	p := parser.New(lexer.New(r), o.maxDepth)
	root, err := p.Parse()
	if err == nil && o.strict {
		err = p.ExpectEOF()
	}
	if err != nil {
		perr := newParsingError(err, p.Pos())
		o.logger.Debug("load failed", "line", perr.Line, "column", perr.Column, "error", perr.Message)
		return nil, perr
	}

	if o.logger.Enabled(context.Background(), slog.LevelDebug) {
		nodes := 0
		ast.Walk(root, func(*ast.Node, *ast.Node, int) bool {
			nodes++
			return true
		})
		o.logger.Debug("document loaded", "root", root.Name(), "nodes", nodes)
	}
	return &Document{root: root}, nil
}

// Parse is Load over an in-memory buffer.
func Parse(data []byte, opts ...Option) (*Document, error) {
	return Load(bytes.NewReader(data), opts...)
}

// Print writes the canonical records of doc to w:
//
//	1,0,shape,{type color}
//	  2,1,type,tetrahedron
//	  3,1,color,{r}
//	    4,3,r,0xFF
//
// Each line holds a node's id, its parent's id (0 for the root), its name,
// and either its value or the names of its children. The ids are the ones
// assigned by Load. Only errors from w are returned.
func Print(doc *Document, w io.Writer, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("ntree: Print(nil document)")
	}

	f := formatter.New(w, o.indent)
	if err := f.Format(doc.root); err != nil {
		return err
	}
	o.logger.Debug("document printed", "root", doc.root.Name(), "records", f.Records())
	return nil
}

// Marshal returns the canonical records of doc.
func Marshal(doc *Document, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Print(doc, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// newParsingError converts any parser failure into the one public error
// kind, keeping the lower-level message.
func newParsingError(err error, pos token.Position) *ParsingError {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return &ParsingError{
			Message: "invalid data format: " + lerr.Msg,
			Line:    lerr.Pos.Line,
			Column:  lerr.Pos.Column,
			Err:     err,
		}
	}
	return &ParsingError{
		Message: "invalid data format: " + err.Error(),
		Line:    pos.Line,
		Column:  pos.Column,
		Err:     err,
	}
}
