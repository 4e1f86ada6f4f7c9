package spectral

import (
	"errors"
	"fmt"
)

var (
	errNegativeY  = errors.New("spectrum points must have y >= 0")
	errUnsorted   = errors.New("spectrum points must be sorted by wavelength")
	errEmpty      = errors.New("missing required field")
	errBadType    = errors.New("wrong type for this field")
	errBoolean    = errors.New("boolean values cannot be used in this context")
	errNoDecoder  = errors.New("no decoder registered for this expression")
)

// BuildError is returned when translating an Expression into a Value graph
// fails. Path names the field where the failure occurred, its parts joined
// by " → " (e.g. "sky → color → points"), so scene authors can locate the
// offending field without a line number.
type BuildError struct {
	Path string
	Err  error
}

func (e *BuildError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// wrapPath prefixes err with field inside a BuildError, preserving an
// already-present path by putting field in front of it rather than
// overwriting it.
func wrapPath(field string, err error) error {
	if err == nil {
		return nil
	}
	var be *BuildError
	if errors.As(err, &be) {
		if be.Path == "" {
			return &BuildError{Path: field, Err: be.Err}
		}
		return &BuildError{Path: field + " → " + be.Path, Err: be.Err}
	}
	return &BuildError{Path: field, Err: err}
}

// rejected reports that a Complex expression variant was used somewhere
// that does not accept it, naming the variant in the error message the way
// spec.md §6 requires (e.g. "vectors cannot be used in this context").
func rejected(variant string) error {
	return fmt.Errorf("%s cannot be used in this context", variant)
}
