package store

import (
	"path/filepath"
	"time"
)

// Metadata is the payload of metadata.json, read by the site to show when data last changed.
type Metadata struct {
	Updated string `json:"updated"`
}

// WriteMetadata stamps metadata.json in the writer root with the current time.
func (w *Writer) WriteMetadata() error {
	return w.WriteJSON(filepath.Join(w.BasePath(), MetadataFile), Metadata{
		Updated: w.Now().Format(time.RFC3339),
	})
}

// ReadMetadata loads metadata.json from dir.
func ReadMetadata(dir string) (Metadata, error) {
	var m Metadata
	err := ReadJSON(filepath.Join(dir, MetadataFile), &m)
	return m, err
}
