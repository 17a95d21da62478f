// Package logging configures the process logger. Logs are discarded unless
// debug is on; the terminal front-end owns stdout and stderr while running.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Dir is where debug logs are written, relative to the working directory.
var Dir = "logs"

// Setup returns a logger writing to Dir/<name>.log when debug is set, or
// discarding everything otherwise. The returned file is nil when nothing
// was opened; the caller closes it.
func Setup(debug bool, name string) (*log.Logger, *os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return log.New(io.Discard, "", 0), nil, nil
	}
	if err := os.MkdirAll(Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(Dir, name+".log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return log.New(f, name+" ", log.LstdFlags|log.Lmicroseconds), f, nil
}

// OrDefault returns l, or the standard logger when l is nil.
func OrDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}
