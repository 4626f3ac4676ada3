// Package writer exposes sinks for save emission.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileWriter writes save bytes to a filesystem path atomically.
type FileWriter struct {
	Path string
	// Perm is used when the target does not exist yet. Default: 0644.
	Perm os.FileMode
}

// WriteSave writes buf to the configured path atomically via temp file + rename.
// An existing file keeps its permission bits.
func (w *FileWriter) WriteSave(buf []byte) error {
	return w.writeFrom(func(f *os.File) error {
		_, err := f.Write(buf)
		return err
	})
}

// CopyFrom atomically replaces the configured path with the contents of src.
// Either the full copy appears at Path or nothing does.
func (w *FileWriter) CopyFrom(src string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	return w.writeFrom(func(f *os.File) error {
		_, err := io.Copy(f, in)
		return err
	})
}

func (w *FileWriter) writeFrom(fill func(*os.File) error) error {
	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".etsvibes-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if fillErr := fill(tmpFile); fillErr != nil {
		return fmt.Errorf("write temp file: %w", fillErr)
	}

	if chmodErr := tmpFile.Chmod(w.perm()); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}

	// Sync to disk
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	// Atomic rename
	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}

func (w *FileWriter) perm() os.FileMode {
	if info, err := os.Stat(w.Path); err == nil {
		return info.Mode().Perm()
	}
	if w.Perm != 0 {
		return w.Perm
	}
	return 0644
}
