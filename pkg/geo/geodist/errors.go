// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geodist

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// EmptyGeometryError is returned when a distance is requested against a
// geometry without any coordinates. Such a distance is undefined.
type EmptyGeometryError struct {
	cause error
}

var _ error = (*EmptyGeometryError)(nil)
var _ errors.SafeDetailer = (*EmptyGeometryError)(nil)
var _ fmt.Formatter = (*EmptyGeometryError)(nil)
var _ errors.Formatter = (*EmptyGeometryError)(nil)

// Error implements the error interface.
func (w *EmptyGeometryError) Error() string { return w.cause.Error() }

// Cause implements the errors.SafeDetailer interface.
func (w *EmptyGeometryError) Cause() error { return w.cause }

// Unwrap implements the SafeDetailer interface.
func (w *EmptyGeometryError) Unwrap() error { return w.cause }

// SafeDetails implements the SafeDetailer interface.
func (w *EmptyGeometryError) SafeDetails() []string { return []string{w.cause.Error()} }

// Format implements the errors.Formatter interface.
func (w *EmptyGeometryError) Format(s fmt.State, verb rune) { errors.FormatError(w, s, verb) }

// FormatError implements the errors.Formatter interface.
func (w *EmptyGeometryError) FormatError(p errors.Printer) (next error) { return w.cause }

// IsEmptyGeometryError returns true if the error is of type EmptyGeometryError.
func IsEmptyGeometryError(err error) bool {
	return errors.HasType(err, &EmptyGeometryError{})
}

// NewEmptyGeometryError returns an error indicating an empty geometry was
// given to a distance operation.
func NewEmptyGeometryError() *EmptyGeometryError {
	return &EmptyGeometryError{cause: errors.Newf("distance to an empty geometry is undefined")}
}

// InvalidRingError is returned when a ring handed over by the geometry model
// is not a valid closed ring. It signals a broken invariant upstream and is
// never repaired.
type InvalidRingError struct {
	cause error
}

var _ error = (*InvalidRingError)(nil)
var _ errors.SafeDetailer = (*InvalidRingError)(nil)
var _ fmt.Formatter = (*InvalidRingError)(nil)
var _ errors.Formatter = (*InvalidRingError)(nil)

// Error implements the error interface.
func (w *InvalidRingError) Error() string { return w.cause.Error() }

// Cause implements the errors.SafeDetailer interface.
func (w *InvalidRingError) Cause() error { return w.cause }

// Unwrap implements the SafeDetailer interface.
func (w *InvalidRingError) Unwrap() error { return w.cause }

// SafeDetails implements the SafeDetailer interface.
func (w *InvalidRingError) SafeDetails() []string { return []string{w.cause.Error()} }

// Format implements the errors.Formatter interface.
func (w *InvalidRingError) Format(s fmt.State, verb rune) { errors.FormatError(w, s, verb) }

// FormatError implements the errors.Formatter interface.
func (w *InvalidRingError) FormatError(p errors.Printer) (next error) { return w.cause }

// IsInvalidRingError returns true if the error is of type InvalidRingError.
func IsInvalidRingError(err error) bool {
	return errors.HasType(err, &InvalidRingError{})
}

func newInvalidRingError(ringIdx int, format string, args ...interface{}) *InvalidRingError {
	return &InvalidRingError{
		cause: errors.Wrapf(errors.Newf(format, args...), "invalid ring %d", ringIdx),
	}
}
