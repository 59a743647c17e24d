// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package markup implements a tiny HTML document model and its renderer.

A document is a tree of nodes. There are exactly three kinds of them:

	Element  a tag with attributes and an optional single child
	List     an ordered group of siblings
	Text     a literal string, written as is

# Rendering

Each node renders itself to a string. An element without content is just its
opening tag. An element whose content renders to a single line keeps it inline:

	<p class="x">Hello</p>

If the content spans several lines, it is indented by one tab and placed on
its own lines:

	<div class="row">
		<div class="col">Column 1</div>
		<div class="col">Column 2</div>
	</div>

Nothing is escaped: text and attribute values are written verbatim.
*/
package markup

import (
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Doctype is written before the root element by [WriteDocument].
const Doctype = "<!DOCTYPE html>"

// Node is a node of a document tree. Rendering a node is calling its String
// method.
type Node interface {
	String() string

	node() // seals the set of implementations
}

// Attr is a single element attribute.
type Attr struct {
	Key   string
	Value string
}

// A returns an attribute with the given key and value.
func A(key, value string) Attr { return Attr{Key: key, Value: value} }

// Attrs is an ordered set of attributes. Keys are unique.
type Attrs []Attr

// Attributes builds Attrs from pairs, keeping the order in which keys first
// appear. When a key is repeated, the last value wins.
func Attributes(pairs ...Attr) Attrs {
	attrs := make(Attrs, 0, len(pairs))
	for _, p := range pairs {
		if i := slices.IndexFunc(attrs, func(a Attr) bool { return a.Key == p.Key }); i != -1 {
			attrs[i].Value = p.Value
			continue
		}
		attrs = append(attrs, p)
	}
	return attrs
}

// String formats attributes as space-separated key="value" pairs.
func (a Attrs) String() string {
	return strings.Join(lo.Map(a, func(attr Attr, _ int) string {
		return attr.Key + `="` + attr.Value + `"`
	}), " ")
}

// Element is a tagged node with attributes and an optional child.
type Element struct {
	tag     string
	attrs   Attrs
	content Node
}

// Tag returns an element without attributes and content.
func Tag(tag string) *Element { return &Element{tag: tag} }

// Elem returns an element with attributes and no content.
func Elem(tag string, attrs Attrs) *Element {
	return &Element{tag: tag, attrs: slices.Clone(attrs)}
}

// Wrap returns an element with attributes holding child. A nil child means
// the element has no content.
func Wrap(tag string, attrs Attrs, child Node) *Element {
	return &Element{tag: tag, attrs: slices.Clone(attrs), content: child}
}

// TextElem returns an element with attributes holding the text s.
func TextElem(tag string, attrs Attrs, s string) *Element {
	return Wrap(tag, attrs, Text(s))
}

// Class returns an element with a single class attribute holding child.
func Class(tag, class string, child Node) *Element {
	return Wrap(tag, Attributes(A("class", class)), child)
}

// ClassText returns an element with a single class attribute holding the
// text s.
func ClassText(tag, class, s string) *Element {
	return Class(tag, class, Text(s))
}

func (e *Element) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(e.tag)
	if len(e.attrs) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(e.attrs.String())
	}
	sb.WriteByte('>')

	if e.content == nil {
		return sb.String()
	}

	content := e.content.String()
	if strings.Contains(content, "\n") {
		sb.WriteString("\n\t")
		sb.WriteString(strings.ReplaceAll(content, "\n", "\n\t"))
		sb.WriteByte('\n')
	} else {
		sb.WriteString(content)
	}
	sb.WriteString("</")
	sb.WriteString(e.tag)
	sb.WriteByte('>')
	return sb.String()
}

func (*Element) node() {}

// List is an ordered group of sibling nodes.
type List struct {
	children []Node
}

// NewList returns a list of children.
func NewList(children ...Node) *List {
	return &List{children: slices.Clone(children)}
}

// String renders the children one per line, without a trailing newline.
func (l *List) String() string {
	return strings.Join(lo.Map(l.children, func(n Node, _ int) string {
		return n.String()
	}), "\n")
}

func (*List) node() {}

// Text is a leaf holding literal, unescaped content.
type Text string

func (t Text) String() string { return string(t) }

func (Text) node() {}

// Render writes the rendering of n to w. The only possible error is the one
// returned by w.
func Render(w io.Writer, n Node) error {
	_, err := io.WriteString(w, n.String())
	return err
}

// WriteDocument writes Doctype, a newline and the rendering of root to w.
func WriteDocument(w io.Writer, root Node) error {
	if _, err := io.WriteString(w, Doctype+"\n"); err != nil {
		return err
	}
	return Render(w, root)
}
