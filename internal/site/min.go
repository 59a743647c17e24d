// © 2022 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	mjson "github.com/tdewolff/minify/v2/json"
)

type min struct {
	m *minify.M
}

func newMin() *min {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	// The page relies on tags the minifier would otherwise drop, e.g. the
	// closing tags of elements without content.
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags:    true,
		KeepDefaultAttrVals: true,
		KeepEndTags:         true,
		KeepQuotes:          true,
	})
	m.AddFunc("application/javascript", js.Minify)
	m.AddFunc("application/json", mjson.Minify)

	return &min{m: m}
}

func (m *min) Bytes(mediaType string, b []byte) ([]byte, error) {
	return m.m.Bytes(mediaType, b)
}
