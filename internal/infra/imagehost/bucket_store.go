// Package imagehost stores product and upload images in a gocloud.dev blob bucket.
// The bucket URL picks the backend: file:// for local disks, mem:// for tests,
// s3:// or gs:// for hosted object storage.
package imagehost

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered bucket drivers.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

var extensionsByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// BucketStore implements service.ImageStore on top of a blob.Bucket.
type BucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	folder        string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it when the app stops.
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.Images
	if cfg.BucketURL == "" {
		return nil, errors.New("images.bucketUrl is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Image bucket opened",
		slog.String("bucket", cfg.BucketURL),
		slog.String("publicBaseUrl", cfg.PublicBaseURL),
	)

	return NewBucketStore(bucket, cfg.PublicBaseURL, cfg.Folder), nil
}

// NewBucketStore wraps an already opened bucket.
func NewBucketStore(bucket *blob.Bucket, publicBaseURL, folder string) *BucketStore {
	return &BucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		folder:        strings.Trim(folder, "/"),
	}
}

// Upload writes the image under folder/<uuid>. The extension only appears in the URL.
func (s *BucketStore) Upload(ctx context.Context, img service.ImageUpload) (*service.StoredImage, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate image id")
	}

	key := s.folder + "/" + id.String()
	if err := s.bucket.WriteAll(ctx, key, img.Data, &blob.WriterOptions{
		ContentType: img.ContentType,
		Metadata:    map[string]string{"filename": path.Base(img.Filename)},
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to write image %s", key)
	}

	return &service.StoredImage{
		URL:      s.publicBaseURL + "/" + key + extensionFor(img),
		PublicID: key,
	}, nil
}

// Delete removes the object; an already missing object counts as deleted.
func (s *BucketStore) Delete(ctx context.Context, publicID string) error {
	if err := s.bucket.Delete(ctx, publicID); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete image %s", publicID)
	}

	return nil
}

// PublicIDFromURL takes the last path segment up to its first dot, under the configured folder.
func (s *BucketStore) PublicIDFromURL(url string) string {
	segment := url
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	if i := strings.IndexAny(segment, "?#"); i >= 0 {
		segment = segment[:i]
	}
	if i := strings.Index(segment, "."); i >= 0 {
		segment = segment[:i]
	}

	return s.folder + "/" + segment
}

// Open resolves a URL path like "pol-products/<id>.jpg" to its object.
func (s *BucketStore) Open(ctx context.Context, urlPath string) (*service.ImageObject, error) {
	urlPath = strings.TrimPrefix(urlPath, "/")
	if strings.Contains(urlPath, "..") || !strings.HasPrefix(urlPath, s.folder+"/") {
		return nil, service.ErrImageObjectNotFound
	}

	key := strings.TrimSuffix(urlPath, path.Ext(urlPath))

	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrImageObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to stat image %s", key)
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image %s", key)
	}

	return &service.ImageObject{
		ReadCloser:  reader,
		ContentType: attrs.ContentType,
		Size:        attrs.Size,
	}, nil
}

func extensionFor(img service.ImageUpload) string {
	if ext, ok := extensionsByType[img.ContentType]; ok {
		return ext
	}

	return strings.ToLower(path.Ext(img.Filename))
}
