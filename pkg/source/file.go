// Package source reads access-log files from disk.
package source

import (
	"fmt"
	"log/slog"
	"os"
)

// FileAccessError reports that a log file could not be read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// File reads whole log files as text.
type File struct {
	logger *slog.Logger
}

// New creates a file source.
func New(logger *slog.Logger) *File {
	return &File{logger: logger}
}

// ReadText returns the full contents of path.
func (f *File) ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &FileAccessError{Path: path, Err: fmt.Errorf("is a directory")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}

	f.logger.Debug("read log file", "path", path, "bytes", len(data))
	return string(data), nil
}
