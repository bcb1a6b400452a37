package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/metrics"
)

const (
	kindJSON    = "json"
	kindParquet = "parquet"
)

// Writer persists output files under a data directory. Every write goes to a
// temporary file first and is renamed into place.
type Writer struct {
	basePath string
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string, recorder *metrics.Recorder) *Writer {
	return &Writer{
		basePath: basePath,
		recorder: recorder,
		now:      time.Now,
	}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// Now returns the writer clock in UTC.
func (w *Writer) Now() time.Time {
	if w == nil || w.now == nil {
		return time.Now().UTC()
	}
	return w.now().UTC()
}

// WriteJSON writes payload compactly to target, leaving the file untouched when its
// contents would not change.
func (w *Writer) WriteJSON(target string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", target, err)
	}
	return w.writeBytes(target, data)
}

// WriteJSONIndent is WriteJSON with two-space indentation.
func (w *Writer) WriteJSONIndent(target string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", target, err)
	}
	return w.writeBytes(target, data)
}

func (w *Writer) writeBytes(target string, data []byte) error {
	if w == nil {
		return errors.New("store writer not configured")
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}
	return w.atomicWrite(target, kindJSON, func(f *os.File) error {
		_, err := f.Write(data)
		return err
	})
}

// atomicWrite creates target's directory, lets fill write a temp file beside target
// and renames it into place.
func (w *Writer) atomicWrite(target, kind string, fill func(*os.File) error) error {
	if target == "" {
		return errors.New("target path required")
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	tmp := target + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	w.recorder.RecordFileWritten(kind)
	return nil
}

// ReadJSON decodes the file at path into dest.
func ReadJSON(path string, dest any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path names a regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Fresh reports whether path exists and was modified less than maxAge before now.
func Fresh(path string, maxAge time.Duration, now time.Time) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return now.Sub(info.ModTime()) < maxAge
}
