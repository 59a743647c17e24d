// © 2022 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/calamity/internal/devtools"
	"go.astrophena.name/calamity/internal/site"
)

func main() { cli.Main(new(app)) }

type app struct {
	minify bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.minify, "minify", false, "Minify the page and static files.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	env := cli.GetEnv(ctx)
	if len(env.Args) > 1 {
		return fmt.Errorf("%w: want at most one directory", cli.ErrInvalidArgs)
	}

	dir := filepath.Join(".", "build")
	if len(env.Args) > 0 {
		dir = env.Args[0]
	}

	return site.Build(&site.Config{
		Src:    ".",
		Dst:    dir,
		Minify: a.minify,
	})
}
