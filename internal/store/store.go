// Package store provides the JSON-document persistence layer.
// Each record collection lives in a single JSON file that is read in full on
// every operation and rewritten in full on every mutation.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrCorruptedDocument indicates a document exists but cannot be decoded.
// This is surfaced as a server-side failure and never repaired automatically.
var ErrCorruptedDocument = errors.New("corrupted document")

// readDocument parses a document file's full contents into v.
// A missing file is reported via fs.ErrNotExist; invalid JSON via
// ErrCorruptedDocument.
func readDocument(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document %s: %w", filepath.Base(path), err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode document %s: %w: %v", filepath.Base(path), ErrCorruptedDocument, err)
	}

	return nil
}

// writeDocument serializes v and overwrites the file's full contents.
// There is no partial update; the document is the unit of persistence.
func writeDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", filepath.Base(path), err)
	}

	return nil
}

// isMissing reports whether err means the document file cannot be read at all
// (as opposed to existing but failing to decode).
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}

// ensureDataDir creates the directory holding a document if needed.
func ensureDataDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
