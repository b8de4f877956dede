package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tt "github.com/fitchlang/fitch/internal/types"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type watchState struct {
	watcher   *fsnotify.Watcher
	dirs      []string
	active    bool
	onResults func(filename string, results []tt.Result)
}

// StartWatching begins watching the given directories for proof
// script changes and re-checks a file whenever it is written. The
// onResults callback receives the results of each re-check.
func (e *Engine) StartWatching(dirs []string, onResults func(filename string, results []tt.Result)) error {
	if e.watch.active {
		return fmt.Errorf("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	e.watch.watcher = watcher
	e.watch.dirs = dirs
	e.watch.onResults = onResults

	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.watch.active = true
	go e.watchLoop()
	return nil
}

// StopWatching stops the watch loop and releases the watcher.
func (e *Engine) StopWatching() error {
	if !e.watch.active {
		return nil
	}
	e.watch.active = false
	return e.watch.watcher.Close()
}

func (e *Engine) watchLoop() {
	for e.watch.active {
		select {
		case event, ok := <-e.watch.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-e.watch.watcher.Errors:
			if !ok {
				return
			}
			if e.logger != nil {
				e.logger.Error("Watcher error", zap.Error(err))
			}
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, ".ndp") {
		return
	}

	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)
	results, err := e.Run(event.Name)
	if err != nil {
		if e.logger != nil {
			e.logger.Error("Error re-checking file", zap.String("file", event.Name), zap.Error(err))
		}
		return
	}
	if e.watch.onResults != nil {
		e.watch.onResults(event.Name, results)
	}
}
