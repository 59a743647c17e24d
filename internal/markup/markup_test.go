// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package markup

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestRender(t *testing.T) {
	cases := map[string]struct {
		node Node
		want string
	}{
		"text": {
			node: Text("Hi"),
			want: "Hi",
		},
		"text is not escaped": {
			node: Text(`<b>"&"</b>`),
			want: `<b>"&"</b>`,
		},
		"empty text": {
			node: Text(""),
			want: "",
		},
		"tag only": {
			node: Tag("br"),
			want: "<br>",
		},
		"no content, no closing tag": {
			node: Tag("div"),
			want: "<div>",
		},
		"attributes, no content": {
			node: Elem("meta", Attributes(A("charset", "utf-8"))),
			want: `<meta charset="utf-8">`,
		},
		"empty attributes": {
			node: Elem("hr", Attributes()),
			want: "<hr>",
		},
		"nil attributes": {
			node: Elem("hr", nil),
			want: "<hr>",
		},
		"inline text content": {
			node: TextElem("p", nil, "Hi"),
			want: "<p>Hi</p>",
		},
		"inline content with attributes": {
			node: ClassText("p", "x", "Hello"),
			want: `<p class="x">Hello</p>`,
		},
		"empty text content": {
			node: TextElem("script", Attributes(A("src", "a.js")), ""),
			want: `<script src="a.js"></script>`,
		},
		"attribute values are not escaped": {
			node: Elem("a", Attributes(A("title", `say "hi" & <bye>`))),
			want: `<a title="say "hi" & <bye>">`,
		},
		"attributes keep insertion order": {
			node: Elem("div", Attributes(A("id", "x"), A("data-foo", "y"))),
			want: `<div id="x" data-foo="y">`,
		},
		"nil child": {
			node: Wrap("div", nil, nil),
			want: "<div>",
		},
		"inline element child": {
			node: Wrap("p", nil, TextElem("b", nil, "bold")),
			want: "<p><b>bold</b></p>",
		},
		"empty list": {
			node: NewList(),
			want: "",
		},
		"single item list": {
			node: NewList(Text("a")),
			want: "a",
		},
		"list": {
			node: NewList(Text("a"), Text("b"), Text("c")),
			want: "a\nb\nc",
		},
		"element with empty list": {
			node: Wrap("ul", nil, NewList()),
			want: "<ul></ul>",
		},
		"element with single item list": {
			node: Wrap("ul", nil, NewList(TextElem("li", nil, "one"))),
			want: "<ul><li>one</li></ul>",
		},
		"block content": {
			node: Class("div", "row", NewList(Text("a"), Text("b"))),
			want: "<div class=\"row\">\n\ta\n\tb\n</div>",
		},
		"multi-line text is indented": {
			node: Wrap("pre", nil, Text("one\ntwo")),
			want: "<pre>\n\tone\n\ttwo\n</pre>",
		},
		"nested blocks": {
			node: Wrap("ul", nil, NewList(
				TextElem("li", nil, "one"),
				Wrap("li", nil, NewList(Text("a"), Text("b"))),
			)),
			want: "<ul>\n\t<li>one</li>\n\t<li>\n\t\ta\n\t\tb\n\t</li>\n</ul>",
		},
		"nested lists are flattened into lines": {
			node: NewList(NewList(Text("a"), Text("b")), Text("c")),
			want: "a\nb\nc",
		},
		"empty list inside list": {
			node: NewList(Text("a"), NewList(), Text("b")),
			want: "a\n\nb",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.node.String(), tc.want)

			var buf bytes.Buffer
			if err := Render(&buf, tc.node); err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, buf.String(), tc.want)
		})
	}
}

func TestListSeparators(t *testing.T) {
	for n := range 6 {
		children := make([]Node, n)
		for i := range children {
			children[i] = Text("x")
		}
		got := NewList(children...).String()
		if c := strings.Count(got, "\n"); n > 0 && c != n-1 {
			t.Errorf("list of %d: want %d separators, got %d", n, n-1, c)
		}
		if strings.HasSuffix(got, "\n") {
			t.Errorf("list of %d: trailing newline in %q", n, got)
		}
	}
}

func TestBlockIndentation(t *testing.T) {
	content := NewList(Text("a"), Text("b\nc"), Text("d"))
	got := Class("section", "s", content).String()

	const (
		head = "<section class=\"s\">\n\t"
		tail = "\n</section>"
	)
	if !strings.HasPrefix(got, head) || !strings.HasSuffix(got, tail) {
		t.Fatalf("block not wrapped: %q", got)
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(got, head), tail)
	testutil.AssertEqual(t, inner, strings.ReplaceAll(content.String(), "\n", "\n\t"))
	if strings.Count(inner, "\n") != strings.Count(inner, "\n\t") {
		t.Fatalf("every newline must be followed by a tab: %q", inner)
	}
}

func TestAttributes(t *testing.T) {
	cases := map[string]struct {
		pairs []Attr
		want  Attrs
	}{
		"empty": {
			want: Attrs{},
		},
		"ordered": {
			pairs: []Attr{A("b", "1"), A("a", "2")},
			want:  Attrs{{Key: "b", Value: "1"}, {Key: "a", Value: "2"}},
		},
		"last write wins": {
			pairs: []Attr{A("a", "1"), A("b", "2"), A("a", "3")},
			want:  Attrs{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}},
		},
		"any key is accepted": {
			pairs: []Attr{A("", ""), A("weird key", "v")},
			want:  Attrs{{Key: "", Value: ""}, {Key: "weird key", Value: "v"}},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, Attributes(tc.pairs...), tc.want)
		})
	}
}

func TestAttrsFormatting(t *testing.T) {
	attrs := Attributes(A("id", "x"), A("data-foo", "y"), A("hidden", ""))
	got := Elem("div", attrs).String()
	testutil.AssertEqual(t, got, `<div id="x" data-foo="y" hidden="">`)

	if strings.Contains(got, " >") || strings.Contains(got, "  ") {
		t.Fatalf("stray spaces in %q", got)
	}
}

func TestImmutable(t *testing.T) {
	attrs := Attributes(A("class", "row"))
	children := []Node{Text("a"), Text("b")}

	e := Wrap("div", attrs, NewList(children...))
	want := e.String()

	attrs[0].Value = "changed"
	children[0] = Text("changed")

	testutil.AssertEqual(t, e.String(), want)
	testutil.AssertEqual(t, e.attrs[0].Value, "row")
	if l, ok := e.content.(*List); !ok || len(l.children) != 2 || l.children[0] != Text("a") {
		t.Fatalf("content changed: %#v", e.content)
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	n := Class("div", "row", NewList(Text("a"), Wrap("p", nil, Text("b\nc"))))
	first := n.String()
	for range 3 {
		testutil.AssertEqual(t, n.String(), first)
	}
}

func TestWriteDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocument(&buf, Wrap("html", nil, TextElem("body", nil, "Hi"))); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, buf.String(), "<!DOCTYPE html>\n<html><body>Hi</body></html>")
}

var errTestWrite = errors.New("test write error")

type failingWriter struct {
	failAt int
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes == w.failAt {
		return 0, errTestWrite
	}
	return len(p), nil
}

func TestWriteErrors(t *testing.T) {
	root := Wrap("html", nil, NewList(Tag("head"), TextElem("body", nil, "Hi")))

	if err := Render(&failingWriter{failAt: 1}, root); !errors.Is(err, errTestWrite) {
		t.Fatalf("Render: want %v, got %v", errTestWrite, err)
	}

	for _, failAt := range []int{1, 2} {
		w := &failingWriter{failAt: failAt}
		if err := WriteDocument(w, root); !errors.Is(err, errTestWrite) {
			t.Fatalf("WriteDocument (fail at %d): want %v, got %v", failAt, errTestWrite, err)
		}
		if w.writes != failAt {
			t.Fatalf("WriteDocument (fail at %d): kept writing after error, %d writes", failAt, w.writes)
		}
	}
}
