// Package errors is the single errors import for infra code: stdlib matching plus
// pkg/errors wrapping, so every wrapped error keeps the stack of its first wrap.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching goes through the standard library.
var (
	New = stderrors.New
	Is  = stderrors.Is
)

// Wrapping records a stack trace.
var (
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
)

