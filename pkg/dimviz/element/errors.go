package element

import (
	"errors"
	"fmt"
)

// ErrDimensionNotFound indicates a reference to a dimension name the
// element does not carry.
var ErrDimensionNotFound = errors.New("dimension not found")

// ErrArityMismatch indicates a dimension count outside the kind bounds.
var ErrArityMismatch = errors.New("dimension count does not match element kind")

// ErrDuplicateDimension indicates two dimensions sharing a name on one
// element.
var ErrDuplicateDimension = errors.New("duplicate dimension name")

// ErrNoData indicates an element constructed without backing data.
var ErrNoData = errors.New("element requires backing data")

// ElementError wraps a failure with the element and dimension involved.
type ElementError struct {
	Element   string
	Dimension string
	Err       error
}

func (e *ElementError) Error() string {
	if e.Dimension == "" {
		return fmt.Sprintf("element %s: %v", e.Element, e.Err)
	}
	return fmt.Sprintf("element %s, dimension %q: %v", e.Element, e.Dimension, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// NewElementError creates a new ElementError.
func NewElementError(element, dimension string, err error) *ElementError {
	return &ElementError{Element: element, Dimension: dimension, Err: err}
}

func arityError(k Kind, role string, got, min, max int) error {
	bound := fmt.Sprintf("%d..%d", min, max)
	if max < 0 {
		bound = fmt.Sprintf("%d or more", min)
	}
	return NewElementError(k.Name, "",
		fmt.Errorf("%w: got %d %s dimensions, want %s", ErrArityMismatch, got, role, bound))
}
