// Package watch picks up a freshly exported plan from a scan location and
// moves it over the plan file the viewer reads.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const settleDelay = 200 * time.Millisecond

// Event is sent after a file was moved into place, or when moving failed.
type Event struct {
	Path string
	Err  error
}

type Watcher struct {
	src      string
	dst      string
	interval time.Duration
	events   chan Event
	// last failure, repeated failures are reported once
	lastErr string
}

// New watches src and moves it to dst whenever it shows up. The directory of
// src is watched with fsnotify and polled every interval as a fallback.
func New(src, dst string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &Watcher{
		src:      src,
		dst:      dst,
		interval: interval,
		events:   make(chan Event, 1),
	}
}

func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Run blocks until ctx is done, then closes the event channel.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.events)

	var fsEvents <-chan fsnotify.Event
	var fsErrors <-chan error

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("fsnotify unavailable, polling only", "error", err)
	} else {
		defer fw.Close()
		if err := fw.Add(filepath.Dir(w.src)); err != nil {
			slog.Warn("failed to watch scan directory, polling only", "dir", filepath.Dir(w.src), "error", err)
		} else {
			fsEvents = fw.Events
			fsErrors = fw.Errors
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// writes arrive in bursts, act once they settle
	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	// a file may already be waiting
	w.check(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-fsEvents:
			if !ok {
				fsEvents = nil
				continue
			}
			if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 && sameFile(evt.Name, w.src) {
				settle.Reset(settleDelay)
			}
		case <-settle.C:
			w.check(ctx)
		case err, ok := <-fsErrors:
			if !ok {
				fsErrors = nil
				continue
			}
			slog.Warn("watch error", "error", err)
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *Watcher) check(ctx context.Context) {
	moved, err := MoveFile(w.src, w.dst)
	if !moved && err == nil {
		return
	}
	if err != nil {
		if err.Error() == w.lastErr {
			return
		}
		w.lastErr = err.Error()
		slog.Error("failed to move plan", "src", w.src, "dst", w.dst, "error", err)
	} else {
		w.lastErr = ""
		slog.Info("plan moved", "src", w.src, "dst", w.dst)
	}

	select {
	case w.events <- Event{Path: w.dst, Err: err}:
	case <-ctx.Done():
	}
}

func sameFile(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
