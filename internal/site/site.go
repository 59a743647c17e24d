// © 2022 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package site builds the Untitled Calamity Site.

The site is a single page described in Go by [Page] and rendered with the
markup package. It can be written to any writer with [Write], built into a
directory with [Build] or served locally with [Serve].

# Directory Structure

	build   This is where the generated site will be placed by default.
	static  Files in this directory will be copied verbatim to the
	        generated site. Optional.
*/
package site

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.astrophena.name/calamity/internal/markup"
)

// Config represents a build configuration.
type Config struct {
	// Title is the title of the page.
	Title string
	// Src is the directory where to read static files from. If empty, uses the
	// current directory.
	Src string
	// Dst is the directory where to write files. If empty, uses the build
	// directory.
	Dst string
	// Minify determines if the page and static files should be minified.
	Minify bool
}

func (c *Config) setDefaults() {
	if c.Title == "" {
		c.Title = "Untitled Calamity Site"
	}

	if c.Src == "" {
		c.Src = filepath.Join(".")
	}

	if c.Dst == "" {
		c.Dst = filepath.Join(".", "build")
	}
}

// Write writes the page as a complete HTML document to w.
func Write(w io.Writer, c *Config) error {
	if c == nil {
		c = &Config{}
	}
	c.setDefaults()

	if !c.Minify {
		return markup.WriteDocument(w, Page(c))
	}

	var buf bytes.Buffer
	if err := markup.WriteDocument(&buf, Page(c)); err != nil {
		return err
	}
	minified, err := newMin().Bytes("text/html", buf.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(minified)
	return err
}

// Build builds a site based on the provided [Config]. A nil c builds the
// default configuration.
func Build(c *Config) error {
	if c == nil {
		c = &Config{}
	}
	c.setDefaults()
	b := &buildContext{c: c, min: newMin()}

	// Clean up after previous build.
	if _, err := os.Stat(c.Dst); err == nil {
		if err := os.RemoveAll(c.Dst); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(c.Dst, 0o755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(c.Dst, "index.html"))
	if err != nil {
		return err
	}
	if err := Write(f, c); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	// Write robots.txt.
	if err := os.WriteFile(filepath.Join(c.Dst, "robots.txt"), []byte(robotsTxt), 0o644); err != nil {
		return err
	}

	// Copy static files, if any.
	if _, err := os.Stat(b.staticDir()); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(b.staticDir(), b.copyStatic)
}

const robotsTxt = `User-agent: *
`

type buildContext struct {
	c   *Config
	min *min
}

func (b *buildContext) staticDir() string { return filepath.Join(b.c.Src, "static") }

func (b *buildContext) copyStatic(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}

	if d.IsDir() || isIgnorable(path) {
		return nil
	}

	rel, err := filepath.Rel(b.staticDir(), path)
	if err != nil {
		return err
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if mediaType := staticMediaType(path); mediaType != "" && b.c.Minify {
		minified, err := b.min.Bytes(mediaType, buf)
		if err != nil {
			return err
		}
		buf = minified
	}

	dst := filepath.Join(b.c.Dst, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, buf, 0o644)
}

func staticMediaType(path string) string {
	switch filepath.Ext(path) {
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".json":
		return "application/json"
	}
	return ""
}

func isIgnorable(path string) bool {
	base := filepath.Base(path)

	// Ignore files that look like Vim backups.
	if len(base) > 0 && base[len(base)-1] == '~' {
		return true
	}

	// Ignore .gitignore files and macOS garbage.
	return base == ".gitignore" || base == ".DS_Store"
}
