// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Calamity prints the Untitled Calamity Site page.

# Usage

	$ calamity [flags]

The page is written to standard output as a complete HTML document, starting
with the doctype declaration:

	$ calamity > index.html

Nested elements are indented with tabs. Pass -minify to get a compact
document instead.

To build the site into a directory or serve it locally, use the build and
serve tools:

	$ go tool build [dir]
	$ go tool serve [dir]
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
