package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// imageLimits bounds a single multipart image field.
type imageLimits struct {
	maxFiles    int
	maxFileSize int64

	// truncate drops the files past maxFiles instead of rejecting the request.
	truncate bool
}

func newImageLimits(cfg *config.Config) imageLimits {
	return imageLimits{
		maxFiles:    cfg.Images.MaxFiles,
		maxFileSize: cfg.Images.MaxFileSize,
	}
}

// readImages loads every file of field, sniffing the content instead of trusting the
// declared type. A request that is not multipart simply has no files.
func readImages(c echo.Context, field string, limits imageLimits) ([]service.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidRequestBody, err.Error())
	}

	headers := form.File[field]
	if len(headers) > limits.maxFiles {
		if !limits.truncate {
			return nil, errors.Wrapf(domainerrors.ErrTooManyImages, "%d files in %q", len(headers), field)
		}
		headers = headers[:limits.maxFiles]
	}

	files := make([]service.ImageUpload, 0, len(headers))
	for _, fh := range headers {
		file, err := readImage(fh, limits.maxFileSize)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func readImage(fh *multipart.FileHeader, maxSize int64) (service.ImageUpload, error) {
	if fh.Size > maxSize {
		return service.ImageUpload{}, errors.Wrapf(domainerrors.ErrFileTooLarge, "%q is %d bytes", fh.Filename, fh.Size)
	}

	f, err := fh.Open()
	if err != nil {
		return service.ImageUpload{}, errors.Wrapf(domainerrors.ErrInvalidRequestBody, "open %q: %v", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return service.ImageUpload{}, errors.Wrapf(domainerrors.ErrInvalidRequestBody, "read %q: %v", fh.Filename, err)
	}
	if int64(len(data)) > maxSize {
		return service.ImageUpload{}, errors.Wrapf(domainerrors.ErrFileTooLarge, "%q exceeds %d bytes", fh.Filename, maxSize)
	}

	detected := mimetype.Detect(data)
	for _, allowed := range allowedImageTypes {
		if detected.Is(allowed) {
			return service.ImageUpload{
				Filename:    fh.Filename,
				ContentType: allowed,
				Data:        data,
			}, nil
		}
	}

	return service.ImageUpload{}, errors.Wrapf(domainerrors.ErrInvalidFileType, "%q sniffed as %s", fh.Filename, detected.String())
}

// formFields reads typed values out of a form, collecting parse failures per field.
type formFields struct {
	values url.Values
	errs   []domainerrors.FieldError
}

func newFormFields(c echo.Context) (*formFields, error) {
	values, err := c.FormParams()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidRequestBody, err.Error())
	}

	return &formFields{values: values}, nil
}

func (f *formFields) has(name string) bool {
	_, ok := f.values[name]

	return ok
}

func (f *formFields) str(name string) string {
	return strings.TrimSpace(f.values.Get(name))
}

// optStr is nil when the field was not sent, so an empty value can still clear a field.
func (f *formFields) optStr(name string) *string {
	if !f.has(name) {
		return nil
	}
	v := f.str(name)

	return &v
}

// float is nil for an absent or empty field.
func (f *formFields) float(name string) *float64 {
	raw := f.str(name)
	if raw == "" {
		return nil
	}

	v, err := cast.ToFloat64E(raw)
	if err != nil {
		f.fail(name, name+" must be a number")

		return nil
	}

	return &v
}

func (f *formFields) boolean(name string) *bool {
	raw := f.str(name)
	if raw == "" {
		return nil
	}

	v, err := cast.ToBoolE(raw)
	if err != nil {
		f.fail(name, name+" must be true or false")

		return nil
	}

	return &v
}

// list splits a comma separated field, dropping empty entries.
func (f *formFields) list(name string) []string {
	items := []string{}
	for _, part := range strings.Split(f.values.Get(name), ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}

	return items
}

// jsonList decodes a field holding a JSON array of strings.
func (f *formFields) jsonList(name string) []string {
	raw := f.str(name)
	if raw == "" {
		return []string{}
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		f.fail(name, name+" must be a JSON array of strings")

		return nil
	}

	return items
}

func (f *formFields) fail(field, message string) {
	f.errs = append(f.errs, domainerrors.FieldError{Field: field, Message: message})
}

func (f *formFields) err() error {
	if len(f.errs) == 0 {
		return nil
	}

	return errors.WithStack(domainerrors.NewValidationError(f.errs...))
}

// bindJSON decodes the body into dst and runs the struct validator over it.
func bindJSON(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidRequestBody, err.Error())
	}

	if err := c.Validate(dst); err != nil {
		return err
	}

	return nil
}
