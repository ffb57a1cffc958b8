package charts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Display receives rendered exploratory figures.
type Display interface {
	Show(name string, png []byte) error
}

// Discard drops figures after logging them. It stands in for an interactive
// window on headless runs.
type Discard struct {
	Logger *slog.Logger
}

// Show logs the figure and drops it.
func (d Discard) Show(name string, png []byte) error {
	d.Logger.Debug("figure rendered", "figure", name, "bytes", len(png))
	return nil
}

// Dir writes each figure as a file in a directory, creating it if needed.
type Dir struct {
	Path string
}

// Show writes the figure to name inside the directory.
func (d Dir) Show(name string, png []byte) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf("create preview dir: %w", err)
	}
	path := filepath.Join(d.Path, name)
	if err := os.WriteFile(path, png, 0o644); err != nil { //nolint:gosec // images are meant to be shared
		return fmt.Errorf("write preview %s: %w", name, err)
	}
	return nil
}
