// © 2022 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

var serveReadyHook func() // used in tests, called when Serve started serving the site

// debouncer delays execution of a function until a specified duration has
// passed without any new events.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer
}

func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{d: d, f: f}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, d.f)
}

// Stop cancels a scheduled execution, if any.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
}

// Serve builds the site and starts serving it on a provided host:port. When
// files in the static directory change, the site is rebuilt. A nil c serves
// the default configuration.
func Serve(ctx context.Context, c *Config, addr string) error {
	if c == nil {
		c = &Config{}
	}
	c.setDefaults()

	logger.Info(ctx, "performing an initial build")
	if err := Build(c); err != nil {
		logger.Error(ctx, "initial build failed", slog.Any("err", err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	staticDir := filepath.Join(c.Src, "static")
	if _, err := os.Stat(staticDir); err == nil {
		if err := watchRecursive(watcher, staticDir); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer l.Close()
	logger.Info(ctx, "listening for HTTP requests", slog.String("addr", "http://"+l.Addr().String()))

	httpSrv := &http.Server{Handler: &staticHandler{fs: os.DirFS(c.Dst)}}
	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	rebuild := func() {
		logger.Info(ctx, "triggering build")
		if err := Build(c); err != nil {
			logger.Error(ctx, "failed to rebuild the site", slog.Any("err", err))
		}
	}
	// Don't rebuild on each keystroke.
	debouncer := newDebouncer(250*time.Millisecond, rebuild)
	defer debouncer.Stop()

	go func() {
		logger.Info(ctx, "started watching for new changes", slog.String("dir", staticDir))

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !shouldRebuild(event.Name, event.Op) {
					continue
				}
				// Pick up new directories too.
				if event.Op&fsnotify.Create != 0 {
					if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
						if err := watchRecursive(watcher, event.Name); err != nil {
							logger.Error(ctx, "failed to watch directory", slog.String("name", event.Name), slog.Any("err", err))
						}
					}
				}
				logger.Info(ctx, "detected change, scheduling build",
					slog.String("name", event.Name),
					slog.Any("op", event.Op),
				)
				debouncer.Do()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error(ctx, "watcher failed", slog.Any("err", err))
			case <-ctx.Done():
				return
			}
		}
	}()

	if serveReadyHook != nil {
		serveReadyHook()
	}

	select {
	case <-ctx.Done():
		logger.Info(ctx, "gracefully shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return httpSrv.Shutdown(shutdownCtx)
}

func watchRecursive(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.Add(path)
	})
}

// Copied from
// https://github.com/brandur/modulir/blob/1ff912fdc45a79cb4d8d9f199d213ae9c3598cbd/watch.go#L201.
func shouldRebuild(path string, op fsnotify.Op) bool {
	base := filepath.Base(path)

	// Mac OS' worst mistake.
	if base == ".DS_Store" {
		return false
	}

	// Vim creates this temporary file to see whether it can write into a target
	// directory. It screws up our watching algorithm, so ignore it.
	if base == "4913" {
		return false
	}

	// A special case, but ignore creates on files that look like Vim backups.
	if strings.HasSuffix(base, "~") {
		return false
	}

	// Chmod doesn't change build output and rename is followed by a create.
	return op&(fsnotify.Create|fsnotify.Remove|fsnotify.Write) != 0
}

type staticHandler struct {
	fs fs.FS
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Path
	if p == "/" {
		p += "index.html"
	}
	p = strings.TrimPrefix(path.Clean(p), "/")

	// Special case: /foo will serve content from foo.html, if it exists.
	if _, err := fs.Stat(h.fs, p+".html"); err == nil {
		p += ".html"
	}

	d, err := fs.Stat(h.fs, p)
	if errors.Is(err, fs.ErrNotExist) {
		h.serveNotFound(w, r)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if d.IsDir() {
		h.serveNotFound(w, r)
		return
	}

	b, err := fs.ReadFile(h.fs, p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.ServeContent(w, r, d.Name(), d.ModTime(), bytes.NewReader(b))
}

func (h *staticHandler) serveNotFound(w http.ResponseWriter, r *http.Request) {
	f, err := h.fs.Open("404.html")
	if errors.Is(err, fs.ErrNotExist) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if _, err := io.Copy(w, f); err != nil {
		logger.Error(r.Context(), "failed to write 404 page", slog.Any("err", err))
	}
}
