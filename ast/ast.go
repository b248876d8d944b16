package ast

import (
	"slices"
	"strings"
)

// Kind identifies the variant held by a node's value.
type Kind int

const (
	NullKind Kind = iota
	StringKind
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	}
	return "unknown"
}

// Value is the closed set of values a node can hold: Null, String or Array.
type Value interface {
	// Kind reports which variant the value is.
	Kind() Kind
	valueNode()
}

// Null is the value of a node written as `null`.
type Null struct{}

func (Null) Kind() Kind { return NullKind }
func (Null) valueNode() {}

// String is the value of a node written as a quoted string.
type String struct {
	text string
}

func (String) Kind() Kind { return StringKind }
func (String) valueNode() {}

// Text returns the unescaped string content.
func (s String) Text() string { return s.text }

// Array is the ordered, non-empty list of child nodes of a node written
// as `{ ... }`.
type Array struct {
	elems []*Node
}

func (Array) Kind() Kind { return ArrayKind }
func (Array) valueNode() {}

// Len returns the number of children.
func (a Array) Len() int { return len(a.elems) }

// At returns the i'th child.
func (a Array) At(i int) *Node { return a.elems[i] }

// Elements returns a copy of the children slice.
func (a Array) Elements() []*Node { return slices.Clone(a.elems) }

// Node is one named value of a tree. The zero Node is an unnamed Null
// node with id 0.
type Node struct {
	value Value
	name  string
	id    int
}

// NewNull returns a Null node.
func NewNull() *Node { return &Node{value: Null{}} }

// NewString returns a String node holding s.
func NewString(s string) *Node { return &Node{value: String{text: s}} }

// NewArray returns an Array node owning children, in order. Nil children
// are dropped.
func NewArray(children ...*Node) *Node {
	elems := make([]*Node, 0, len(children))
	for _, c := range children {
		if c != nil {
			elems = append(elems, c)
		}
	}
	return &Node{value: Array{elems: elems}}
}

// Value returns the node's value.
func (n *Node) Value() Value {
	if n.value == nil {
		return Null{}
	}
	return n.value
}

// Kind returns the kind of the node's value.
func (n *Node) Kind() Kind { return n.Value().Kind() }

func (n *Node) IsNull() bool   { return n.Kind() == NullKind }
func (n *Node) IsString() bool { return n.Kind() == StringKind }
func (n *Node) IsArray() bool  { return n.Kind() == ArrayKind }

// AsString returns the content of a String node.
func (n *Node) AsString() (string, error) {
	s, ok := n.Value().(String)
	if !ok {
		return "", &TypeMismatchError{Method: "AsString", Kind: n.Kind()}
	}
	return s.text, nil
}

// AsArray returns a copy of the children of an Array node.
func (n *Node) AsArray() ([]*Node, error) {
	a, ok := n.Value().(Array)
	if !ok {
		return nil, &TypeMismatchError{Method: "AsArray", Kind: n.Kind()}
	}
	return a.Elements(), nil
}

func (n *Node) Name() string { return n.name }

// SetName sets the node name. No validation is done; it returns n.
func (n *Node) SetName(name string) *Node {
	n.name = name
	return n
}

func (n *Node) ID() int { return n.id }

// SetID sets the node identity and returns n.
func (n *Node) SetID(id int) *Node {
	n.id = id
	return n
}

// Equal reports whether n and o hold structurally equal values. Names and
// ids are not compared, at any depth.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	switch v := n.Value().(type) {
	case Null:
		return o.IsNull()
	case String:
		ov, ok := o.Value().(String)
		return ok && v.text == ov.text
	case Array:
		ov, ok := o.Value().(Array)
		if !ok || len(v.elems) != len(ov.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(ov.elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the node as grammar text, e.g. `a = { b = "x" c = null }`.
// Loading the result of a named tree yields an equal tree.
func (n *Node) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node) writeTo(sb *strings.Builder) {
	sb.WriteString(n.name)
	sb.WriteString(" = ")
	switch v := n.Value().(type) {
	case Null:
		sb.WriteString("null")
	case String:
		sb.WriteByte('"')
		sb.WriteString(quoteReplacer.Replace(v.text))
		sb.WriteByte('"')
	case Array:
		sb.WriteByte('{')
		for _, e := range v.elems {
			sb.WriteByte(' ')
			e.writeTo(sb)
		}
		sb.WriteString(" }")
	}
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// TypeMismatchError is returned by AsString and AsArray when the node holds
// a different kind of value.
type TypeMismatchError struct {
	Method string
	Kind   Kind
}

func (e *TypeMismatchError) Error() string {
	return "ntree: " + e.Method + " called on " + e.Kind.String() + " node"
}

// WalkFunc is called by Walk for every node. parent is nil for the root and
// depth is 0 there. Returning false skips the node's children.
type WalkFunc func(n, parent *Node, depth int) bool

// Walk visits root and its descendants in pre-order, left to right. This is
// the order in which the parser assigns ids.
func Walk(root *Node, fn WalkFunc) {
	walk(root, nil, 0, fn)
}

func walk(n, parent *Node, depth int, fn WalkFunc) {
	if !fn(n, parent, depth) {
		return
	}
	if a, ok := n.Value().(Array); ok {
		for _, e := range a.elems {
			walk(e, n, depth+1, fn)
		}
	}
}
