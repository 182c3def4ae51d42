package parser

import "errors"

var (
	// ErrInvalidRelation indicates relation text that matches none of the
	// accepted declaration formats.
	ErrInvalidRelation = errors.New("relnorm/parser: invalid relation declaration")

	// ErrInvalidFD indicates a functional dependency line with an empty
	// determinant or dependent side.
	ErrInvalidFD = errors.New("relnorm/parser: invalid functional dependency")
)

// IsInvalidRelationErr reports whether err is an ErrInvalidRelation.
func IsInvalidRelationErr(err error) bool {
	return errors.Is(err, ErrInvalidRelation)
}

// IsInvalidFDErr reports whether err is an ErrInvalidFD.
func IsInvalidFDErr(err error) bool {
	return errors.Is(err, ErrInvalidFD)
}
