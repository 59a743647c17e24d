// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import "go.astrophena.name/calamity/internal/markup"

// Page returns the root element of the site page.
func Page(c *Config) markup.Node {
	return markup.Wrap("html", nil, markup.NewList(
		head(c.Title),
		markup.Class("body", "container", markup.NewList(
			markup.ClassText("div", "row", "Titlebar and additional information"),
			markup.Class("div", "row", markup.NewList(
				markup.ClassText("div", "col", "Column 1"),
				markup.ClassText("div", "col", "Column 2"),
				markup.ClassText("div", "col", "Column 3"),
			)),
			markup.ClassText("div", "row", "Footer and additional information"),
		)),
	))
}

func head(title string) markup.Node {
	return markup.Wrap("head", nil, markup.NewList(
		markup.Elem("link", markup.Attributes(
			markup.A("rel", "stylesheet"),
			markup.A("href", "https://cdn.jsdelivr.net/npm/bootstrap@4.4.1/dist/css/bootstrap.min.css"),
			markup.A("integrity", "sha384-Vkoo8x4CGsO3+Hhxv8T/Q5PaXtkKtu6ug5TOeNV6gBiFeWPGFN9MuhOf23Q9Ifjh"),
			markup.A("crossorigin", "anonymous"),
		)),
		script(
			"https://code.jquery.com/jquery-3.4.1.slim.min.js",
			"sha384-J6qa4849blE2+poT4WnyKhv5vZF5SrPo0iEjwBvKU7imGFAV0wwj1yYfoRSJoZ+n",
		),
		script(
			"https://cdn.jsdelivr.net/npm/popper.js@1.16.0/dist/umd/popper.min.js",
			"sha384-Q6E9RHvbIyZFJoft+2mJbHaEWldlvI9IOYy5n3zV9zzTtmI3UksdQRVvoxMfooAo",
		),
		script(
			"https://cdn.jsdelivr.net/npm/bootstrap@4.4.1/dist/js/bootstrap.min.js",
			"sha384-wfSDF2E50Y2D1uUdj0O3uMBJnjuUD4Ih7YwaYd1iqfktj0Uod8GCExl3Og8ifwB6",
		),
		markup.Elem("meta", markup.Attributes(markup.A("charset", "utf-8"))),
		markup.Elem("meta", markup.Attributes(
			markup.A("name", "viewport"),
			markup.A("content", "width=device-width"),
			markup.A("initial-scale", "1.0"),
		)),
		markup.TextElem("title", nil, title),
	))
}

// script returns an external script element. Its content is empty text, so
// the closing tag is written.
func script(src, integrity string) markup.Node {
	return markup.TextElem("script", markup.Attributes(
		markup.A("src", src),
		markup.A("integrity", integrity),
		markup.A("crossorigin", "anonymous"),
	), "")
}
