// Package storage provides the blob store collaborator that keeps uploaded
// binary content and hands back stable reference paths.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrEmptyBlob is returned by Put when no bytes were supplied.
var ErrEmptyBlob = errors.New("blob data is empty")

// BlobStore persists binary uploads. The layer is append-only: replacing a
// reference never deletes the previously stored bytes.
type BlobStore interface {
	Put(data []byte, contentType, originalName string) (string, error)
}

// DiskBlobStore writes blobs to a local directory and serves them under a
// public URL prefix. File names are prefixed with a fresh UUID so concurrent
// uploads never collide; the original name is kept as a suffix for
// traceability.
type DiskBlobStore struct {
	rootDir      string
	publicPrefix string
}

// NewDiskBlobStore creates a disk-backed blob store rooted at rootDir.
// References are returned as publicPrefix-relative paths.
func NewDiskBlobStore(rootDir, publicPrefix string) *DiskBlobStore {
	return &DiskBlobStore{rootDir: rootDir, publicPrefix: publicPrefix}
}

// Put stores the bytes under a generated name and returns the reference path.
func (s *DiskBlobStore) Put(data []byte, contentType, originalName string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyBlob
	}
	if err := os.MkdirAll(s.rootDir, 0o755); err != nil {
		return "", fmt.Errorf("creating blob directory %s: %w", s.rootDir, err)
	}

	name := uuid.NewString()
	if base := filepath.Base(originalName); originalName != "" && base != "." && base != string(filepath.Separator) {
		name = name + "_" + base
	}

	if err := os.WriteFile(filepath.Join(s.rootDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing blob %s: %w", name, err)
	}
	return path.Join(s.publicPrefix, name), nil
}
