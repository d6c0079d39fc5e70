// Package util provides common utilities including logging helpers,
// file system paths, and small value helpers.
package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// RedirectLog sends the standard logger to dir/name while the UI owns the
// terminal. Close the returned file on exit.
func RedirectLog(dir, name string) (io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return f, nil
}
