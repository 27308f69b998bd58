// Package watch rebuilds the deck when slide sources or the template change
// and serves the output directory over HTTP for local preview.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 300 * time.Millisecond

// Options configures a watch session.
type Options struct {
	// WatchDirs are the directories observed for changes (slide dir,
	// template dir). Non-recursive, matching the assembly pipeline.
	WatchDirs []string
	// ServeDir is the output directory served over HTTP. Empty disables
	// the preview server.
	ServeDir string
	// Port for the preview server.
	Port int
	// Rebuild runs the full assembly pipeline. A failing rebuild keeps the
	// session alive; the last good output stays served.
	Rebuild func() error
	// Debounce coalesces change bursts (editors often write several events
	// per save). Zero means the default.
	Debounce time.Duration
}

// buildStatus tracks the last rebuild outcome for status reporting.
type buildStatus struct {
	mu        sync.RWMutex
	lastError error
}

func (bs *buildStatus) set(err error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastError = err
}

func (bs *buildStatus) get() error {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return bs.lastError
}

// Run performs an initial build, then rebuilds on filesystem changes until
// the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Rebuild == nil {
		return errors.New("watch: Rebuild callback is required")
	}
	debounce := opts.Debounce
	if debounce == 0 {
		debounce = defaultDebounce
	}

	status := &buildStatus{}
	if err := opts.Rebuild(); err != nil {
		// The first build failing is not fatal; the user gets to fix the
		// input with the watcher already running.
		slog.Error("Initial build failed", "error", err)
		status.set(err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Warn("Failed to close watcher", "error", err)
		}
	}()

	for _, dir := range opts.WatchDirs {
		if dir == "" {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		slog.Info("Watching for changes", "dir", dir)
	}

	var srvErr chan error
	if opts.ServeDir != "" {
		srvErr = make(chan error, 1)
		srv := startPreviewServer(opts.ServeDir, opts.Port, status, srvErr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-srvErr:
			return fmt.Errorf("preview server: %w", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			slog.Debug("Change detected", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		case <-timerC:
			timer = nil
			timerC = nil
			slog.Info("Rebuilding deck")
			if err := opts.Rebuild(); err != nil {
				slog.Error("Rebuild failed", "error", err)
				status.set(err)
				continue
			}
			status.set(nil)
			slog.Info("Rebuild complete")
		}
	}
}

func startPreviewServer(dir string, port int, status *buildStatus, errc chan<- error) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(dir)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := status.get(); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "last build failed: %v\n", err)
			return
		}
		fmt.Fprintln(w, "ok")
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("127.0.0.1", fmt.Sprintf("%d", port)),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Preview server listening", "addr", "http://"+srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	return srv
}
