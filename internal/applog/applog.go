// Package applog is the minimal internal diagnostic logger: non-fatal
// failures (a malformed keybindings override, a theme file that doesn't
// parse) get logged once here and the caller continues with defaults,
// rather than aborting startup.
package applog

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu     sync.Mutex
	logger *log.Logger
	file   *os.File
)

// Init opens (creating if needed) dir/app.log and directs future
// Printf/Warn/Error calls there. Safe to call more than once; later calls
// are no-ops once a logger exists.
func Init(dir string) error {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "app.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	file = f
	logger = log.New(f, "", log.LstdFlags)
	return nil
}

// Warn logs a recoverable problem.
func Warn(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return
	}
	logger.Printf("WARN "+format, args...)
}

// Error logs a non-fatal failure.
func Error(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return
	}
	logger.Printf("ERROR "+format, args...)
}

// Close releases the underlying log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	logger = nil
	file = nil
	return err
}
