package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/etsvibes/internal/logger"
	"github.com/joshuapare/etsvibes/internal/writer"
)

// BackupExt replaces a save file's extension to form its backup path.
const BackupExt = ".sii.backup"

// Sink is a single save slot: something that yields and accepts raw container
// bytes.
type Sink interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// BackupPath returns the sibling backup path for a save file:
// game.sii -> game.sii.backup.
func BackupPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + BackupExt
}

// FileSink is a Sink backed by a file. Every Write first makes sure a backup
// of the file's current bytes exists; the backup is created once and never
// overwritten, so it always holds the bytes from before the first edit.
type FileSink struct {
	Path string
	// Backup overrides the backup location. Default: BackupPath(Path).
	Backup string
}

// NewFileSink returns a sink for path.
func NewFileSink(path string) *FileSink {
	return &FileSink{Path: path}
}

// Read returns the file's current bytes.
func (s *FileSink) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read save %s: %w", s.Path, err)
	}
	return data, nil
}

// Write backs up the current file if no backup exists yet, then atomically
// replaces the file with data.
func (s *FileSink) Write(data []byte) error {
	if _, err := s.EnsureBackup(); err != nil {
		return err
	}
	w := &writer.FileWriter{Path: s.Path}
	if err := w.WriteSave(data); err != nil {
		return fmt.Errorf("write save %s: %w", s.Path, err)
	}
	return nil
}

// BackupPath returns where this sink's backup lives.
func (s *FileSink) BackupPath() string {
	if s.Backup != "" {
		return s.Backup
	}
	return BackupPath(s.Path)
}

// EnsureBackup copies the save to its backup path unless a backup already
// exists or there is no save to copy. It reports whether a backup was created.
// Anything other than a regular file at the backup path is an error.
func (s *FileSink) EnsureBackup() (bool, error) {
	backup := s.BackupPath()
	if info, err := os.Stat(backup); err == nil {
		if !info.Mode().IsRegular() {
			return false, fmt.Errorf("backup %s is not a regular file", backup)
		}
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat backup %s: %w", backup, err)
	}

	if _, err := os.Stat(s.Path); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	w := &writer.FileWriter{Path: backup}
	if err := w.CopyFrom(s.Path); err != nil {
		return false, fmt.Errorf("failed to create backup at %s: %w", backup, err)
	}
	logger.Info("backup created", "path", backup)
	return true, nil
}

// MemorySink is an in-memory Sink. Backup mirrors FileSink: it captures the
// bytes present before the first Write and is never replaced.
type MemorySink struct {
	Data   []byte
	Backup []byte

	backedUp bool
	out      writer.MemWriter
}

// NewMemorySink returns a sink holding a copy of data.
func NewMemorySink(data []byte) *MemorySink {
	return &MemorySink{Data: append([]byte(nil), data...)}
}

// Read returns a copy of the current bytes.
func (s *MemorySink) Read() ([]byte, error) {
	return append([]byte(nil), s.Data...), nil
}

// Write records a backup on first use, then replaces the stored bytes.
func (s *MemorySink) Write(data []byte) error {
	if !s.backedUp {
		s.Backup = append([]byte(nil), s.Data...)
		s.backedUp = true
	}
	if err := s.out.WriteSave(data); err != nil {
		return err
	}
	s.Data = append(s.Data[:0], s.out.Buf...)
	return nil
}

// HasBackup reports whether a backup was taken.
func (s *MemorySink) HasBackup() bool {
	return s.backedUp
}

// Writes returns how many times the sink was written.
func (s *MemorySink) Writes() int {
	return s.out.Writes
}
