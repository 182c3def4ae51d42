package relnorm

import "errors"

// ErrEmptySelection indicates a closure request with no attributes.
var ErrEmptySelection = errors.New("relnorm: no attributes selected")

// IsEmptySelectionErr reports whether err is an ErrEmptySelection.
func IsEmptySelectionErr(err error) bool {
	return errors.Is(err, ErrEmptySelection)
}
