package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-ntree/ast"
)

const (
	defaultIndent = 2
)

// Formatter writes a node tree as canonical records, one line per node:
//
//	<indent><id>,<parent id>,<name>,<value>
//
// Arrays list their children's names in braces and are followed by the
// children's records one indent level deeper.
type Formatter struct {
	w       io.Writer
	indent  string
	depth   int
	records int
}

// New returns a new formatter that writes to w. A nil indentSpaces selects
// the default of two spaces per level.
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil {
		spaces = *indentSpaces
	}
	var indentStr string
	if spaces > 0 {
		indentStr = strings.Repeat(" ", spaces)
	}
	return &Formatter{w: w, indent: indentStr}
}

// Format writes the records of root and its descendants. The root's parent
// id is always 0.
func (f *Formatter) Format(root *ast.Node) error {
	return f.writeNode(root, 0)
}

// Records returns the number of records written so far.
func (f *Formatter) Records() int { return f.records }

func (f *Formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Formatter) writeIndent() error {
	if f.indent == "" {
		return nil
	}
	for i := 0; i < f.depth; i++ {
		if err := f.write(f.indent); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) writeNode(n *ast.Node, parentID int) error {
	if err := f.writeIndent(); err != nil {
		return err
	}
	head := strconv.Itoa(n.ID()) + "," + strconv.Itoa(parentID) + "," + n.Name() + ","
	if err := f.write(head); err != nil {
		return err
	}
	f.records++

	switch v := n.Value().(type) {
	case ast.Null:
		return f.write("null\n")

	case ast.String:
		return f.write(escaper.Replace(v.Text()) + "\n")

	case ast.Array:
		names := make([]string, v.Len())
		for i := range names {
			names[i] = v.At(i).Name()
		}
		if err := f.write("{" + strings.Join(names, " ") + "}\n"); err != nil {
			return err
		}
		f.depth++
		defer func() { f.depth-- }()
		for i := 0; i < v.Len(); i++ {
			if err := f.writeNode(v.At(i), n.ID()); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("ntree: unsupported value type for formatting: %T", v)
	}
}

// Tabs are written as is.
var escaper = strings.NewReplacer(
	`"`, `\"`,
	"\r", `\r`,
	"\n", `\n`,
	`\`, `\\`,
)
