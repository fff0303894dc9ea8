package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrImageObjectNotFound is returned by Open for unknown keys.
var ErrImageObjectNotFound = errors.New("image object not found")

// ImageUpload is a validated image file ready to be stored.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StoredImage is where an uploaded image ended up.
type StoredImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// ImageObject is an open stored image.
type ImageObject struct {
	io.ReadCloser
	ContentType string
	Size        int64
}

// ImageStore is the remote image host.
type ImageStore interface {
	// Upload stores the image and returns its public URL and id.
	Upload(ctx context.Context, img ImageUpload) (*StoredImage, error)

	// Delete removes the object; a missing object is not an error.
	Delete(ctx context.Context, publicID string) error

	// PublicIDFromURL derives the public id of a URL returned by Upload.
	PublicIDFromURL(url string) string

	// Open reads a stored object by the path of its URL below the public base.
	Open(ctx context.Context, key string) (*ImageObject, error)
}
