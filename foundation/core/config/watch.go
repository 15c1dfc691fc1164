// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Hot reload of the configuration file through fsnotify.
//              The parent directory is watched so editors that replace the
//              file by rename are picked up as well.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2026-10-19 v0.2.0: Replaced one second polling with fsnotify events

package config

import (
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// OnChange registers a handler called after every successful reload
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// OnError registers a handler for reload and watcher failures. Without one,
// failures are dropped and the previous values stay active.
func (c *Config) OnError(handler func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorHandlers = append(c.errorHandlers, handler)
}

// Watch starts reloading the file whenever it changes. Calling Watch on a
// config that is already watched does nothing.
func (c *Config) Watch() error {
	const op = "config.Watch"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filePath == "" {
		return mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation(op)
	}
	if c.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation(op)
	}
	if err := w.Add(filepath.Dir(c.filePath)); err != nil {
		w.Close()
		return mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation(op).
			WithDetail("filePath", c.filePath)
	}

	c.watcher = w
	c.watchDone = make(chan struct{})
	go c.watchLoop(w, c.watchDone)
	return nil
}

// Stop ends watching and waits for the watch goroutine to exit
func (c *Config) Stop() error {
	c.mu.Lock()
	w, done := c.watcher, c.watchDone
	c.watcher, c.watchDone = nil, nil
	c.mu.Unlock()

	if w == nil {
		return nil
	}
	err := w.Close()
	<-done
	return err
}

// IsWatching reports whether a watcher is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watcher != nil
}

func (c *Config) watchLoop(w *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	target := filepath.Clean(c.filePath)

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := c.reload(); err != nil {
				c.reportError(err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			c.reportError(mdwerror.Wrap(err, "file watcher error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Watch"))
		}
	}
}

// reload re-reads the file and notifies handlers. A file that fails to
// parse leaves the current values untouched.
func (c *Config) reload() error {
	data, err := readFile(c.filePath, c.format)
	if err != nil {
		return mdwerror.Wrap(err, "failed to reload config file").
			WithOperation("config.reload")
	}
	applyDefaults(data, c.defaults)

	c.mu.Lock()
	previous := &Config{
		data:      c.data,
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
		defaults:  c.defaults,
	}
	c.data = data
	handlers := slices.Clone(c.handlers)
	c.mu.Unlock()

	for _, handler := range handlers {
		handler(previous, c)
	}
	return nil
}

func (c *Config) reportError(err error) {
	c.mu.RLock()
	handlers := slices.Clone(c.errorHandlers)
	c.mu.RUnlock()

	for _, handler := range handlers {
		handler(err)
	}
}
