// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.astrophena.name/base/unwrap"
)

// EnsureRoot checks that the current working directory is at the module root
// and panics if it doesn't.
func EnsureRoot() {
	if err := checkRoot(unwrap.Value(os.Getwd())); err != nil {
		panic(err)
	}
}

var errNotRoot = errors.New("go.mod not found, are you at module root?")

func checkRoot(dir string) error {
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); errors.Is(err, fs.ErrNotExist) {
		return errNotRoot
	} else if err != nil {
		return err
	}
	return nil
}
