package services

import (
	"errors"
	"fmt"

	"clients_directory/internal/storage"
)

// ErrUnsupportedFileType is returned when an uploaded image declares a content
// type outside the allow-list.
var ErrUnsupportedFileType = errors.New("unsupported file type")

var allowedImageTypes = map[string]bool{
	"image/webp":    true,
	"image/jpeg":    true,
	"image/png":     true,
	"image/svg+xml": true,
}

// ImageUpload is a profile image as received from the transport layer.
type ImageUpload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ImageService applies the profile image ingestion policy and persists
// accepted uploads through the blob store.
type ImageService interface {
	// IngestProfileImage stores the upload and returns its reference path.
	// A nil or empty upload means no image was supplied and yields ("", nil).
	IngestProfileImage(upload *ImageUpload) (string, error)
}

type imageService struct {
	blobs storage.BlobStore
}

// NewImageService creates a new instance of ImageService.
func NewImageService(blobs storage.BlobStore) ImageService {
	return &imageService{blobs: blobs}
}

func (s *imageService) IngestProfileImage(upload *ImageUpload) (string, error) {
	if upload == nil || len(upload.Data) == 0 {
		return "", nil
	}
	if !allowedImageTypes[upload.ContentType] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, upload.ContentType)
	}
	reference, err := s.blobs.Put(upload.Data, upload.ContentType, upload.Filename)
	if err != nil {
		return "", fmt.Errorf("storing profile image: %w", err)
	}
	return reference, nil
}
