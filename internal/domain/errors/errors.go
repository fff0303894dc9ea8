// Package errors defines the failures the API reports to clients.
package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError is an error that knows how it should be rendered over HTTP.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	// Message is shown verbatim to API clients.
	Message() string
}

// BaseError is a fixed AppError, compared by identity after unwrapping.
type BaseError struct {
	status  int
	code    string
	message string
}

func newError(status int, code, message string) *BaseError {
	return &BaseError{status: status, code: code, message: message}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.status }
func (e *BaseError) ErrorCode() string { return e.code }
func (e *BaseError) Message() string   { return e.message }

// Catalog.
var (
	ErrProductNotFound      = newError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrTooManyImages        = newError(http.StatusBadRequest, "TOO_MANY_IMAGES", "A product can have at most 5 images")
	ErrImageCapacityReached = newError(http.StatusBadRequest, "IMAGE_CAPACITY_REACHED", "Product already has maximum 5 images")
	ErrInvalidImageIndex    = newError(http.StatusBadRequest, "INVALID_IMAGE_INDEX", "Invalid image index")
	ErrNoImagesProvided     = newError(http.StatusBadRequest, "NO_IMAGES_PROVIDED", "No images provided")
	ErrServiceNotFound      = newError(http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
)

// Uploads and media.
var (
	ErrNoImageFile       = newError(http.StatusBadRequest, "NO_IMAGE_FILE", "No image file provided")
	ErrNoImageFiles      = newError(http.StatusBadRequest, "NO_IMAGE_FILES", "No image files provided")
	ErrInvalidFileType   = newError(http.StatusBadRequest, "INVALID_FILE_TYPE", "Invalid file type. Only JPEG, PNG, WebP, and GIF are allowed.")
	ErrFileTooLarge      = newError(http.StatusBadRequest, "FILE_TOO_LARGE", "File too large. Maximum size is 5MB.")
	ErrImageUploadFailed = newError(http.StatusInternalServerError, "IMAGE_UPLOAD_FAILED", "Failed to upload image")
	ErrImageNotFound     = newError(http.StatusNotFound, "IMAGE_NOT_FOUND", "Image not found")
)

// Blogs.
var (
	ErrBlogNotFound    = newError(http.StatusNotFound, "BLOG_NOT_FOUND", "Blog not found")
	ErrDuplicateSlug   = newError(http.StatusBadRequest, "DUPLICATE_SLUG", "A blog with this slug already exists")
	ErrInvalidBlogFile = newError(http.StatusBadRequest, "INVALID_BLOG_FILE", "Only markdown (.md) files can be imported")
	ErrNoBlogFile      = newError(http.StatusBadRequest, "NO_BLOG_FILE", "No markdown file provided")
)

// Tickets and settings.
var (
	ErrTicketNotFound      = newError(http.StatusNotFound, "TICKET_NOT_FOUND", "Ticket not found")
	ErrDuplicateTicketID   = newError(http.StatusBadRequest, "DUPLICATE_TICKET_ID", "A ticket with this ticketId already exists")
	ErrSettingsUnavailable = newError(http.StatusInternalServerError, "SETTINGS_UNAVAILABLE", "Settings could not be loaded")
)

// Authentication.
var (
	ErrInvalidCredentials      = newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
	ErrUnauthorized            = newError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrTokenInvalid            = newError(http.StatusUnauthorized, "TOKEN_INVALID", "Invalid or expired token")
	ErrForbidden               = newError(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrAdminNotFound           = newError(http.StatusNotFound, "ADMIN_NOT_FOUND", "User not found")
	ErrCurrentPasswordMismatch = newError(http.StatusBadRequest, "CURRENT_PASSWORD_MISMATCH", "Current password is incorrect")
	ErrPasswordTooShort        = newError(http.StatusBadRequest, "PASSWORD_TOO_SHORT", "New password is too short")
	ErrPasswordHashFailed      = newError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Failed to process password")
)

// Generic.
var (
	ErrValidationFailed   = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed")
	ErrInvalidRequestBody = newError(http.StatusBadRequest, "INVALID_INPUT", "Invalid request body")
	ErrInternalError      = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// DatabaseExecuteError hides a driver failure behind a generic 500 while keeping the
// cause and the failed operation in Error for the log.
type DatabaseExecuteError struct {
	cause error
	op    string
}

// NewDatabaseExecuteError wraps a failed write; op names it, e.g. "failed to create blog".
func NewDatabaseExecuteError(cause error, op string) AppError {
	return &DatabaseExecuteError{cause: cause, op: op}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.cause, e.op).Error()
}

func (e *DatabaseExecuteError) Unwrap() error { return e.cause }

func (e *DatabaseExecuteError) HTTPCode() int { return http.StatusInternalServerError }

func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }

func (e *DatabaseExecuteError) Message() string { return "Database operation failed" }
