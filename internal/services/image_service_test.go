package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestProfileImageNoUpload(t *testing.T) {
	svc := NewImageService(&fakeBlobStore{})

	ref, err := svc.IngestProfileImage(nil)
	require.NoError(t, err)
	assert.Empty(t, ref)

	ref, err = svc.IngestProfileImage(&ImageUpload{ContentType: "image/png", Filename: "empty.png"})
	require.NoError(t, err)
	assert.Empty(t, ref, "a zero-length upload means no image was supplied")
}

func TestIngestProfileImageAllowedTypes(t *testing.T) {
	for _, contentType := range []string{"image/webp", "image/jpeg", "image/png", "image/svg+xml"} {
		t.Run(contentType, func(t *testing.T) {
			blobs := &fakeBlobStore{}
			svc := NewImageService(blobs)

			ref, err := svc.IngestProfileImage(&ImageUpload{Data: []byte("bytes"), ContentType: contentType, Filename: "pic"})
			require.NoError(t, err)
			assert.Equal(t, "/profile-images/blob-pic", ref)
		})
	}
}

func TestIngestProfileImageRejectsDisallowedType(t *testing.T) {
	for _, contentType := range []string{"application/pdf", "text/html", "image/gif", ""} {
		t.Run(contentType, func(t *testing.T) {
			blobs := &fakeBlobStore{}
			svc := NewImageService(blobs)

			_, err := svc.IngestProfileImage(&ImageUpload{Data: []byte("bytes"), ContentType: contentType, Filename: "pic"})
			assert.ErrorIs(t, err, ErrUnsupportedFileType)
			assert.Empty(t, blobs.puts, "rejected uploads never reach the blob store")
		})
	}
}

func TestIngestProfileImageWrapsBlobFailure(t *testing.T) {
	blobs := &fakeBlobStore{err: errors.New("disk full")}
	svc := NewImageService(blobs)

	_, err := svc.IngestProfileImage(&ImageUpload{Data: []byte("bytes"), ContentType: "image/png", Filename: "pic"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFileType)
	assert.Contains(t, err.Error(), "storing profile image")
}
