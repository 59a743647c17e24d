// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/calamity/internal/site"
)

func main() { cli.Main(new(app)) }

type app struct {
	minify bool
	title  string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.minify, "minify", false, "Minify the page.")
	fs.StringVar(&a.title, "title", "", "Page `title`. Defaults to \"Untitled Calamity Site\".")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: no arguments expected", cli.ErrInvalidArgs)
	}

	return site.Write(env.Stdout, &site.Config{
		Title:  a.title,
		Minify: a.minify,
	})
}
