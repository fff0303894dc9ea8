// Package response renders API bodies. Successful calls return the resource itself;
// errors and confirmations share a {"message": ...} shape.
package response

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// MessageResponse confirms an action that has no resource to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// Success writes data as the response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes a confirmation message.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Error writes an error body; fields is only set for validation failures.
func Error(c echo.Context, statusCode int, message string, fields []domainerrors.FieldError) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Message: message,
		Errors:  fields,
	})
}
