package dump

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch indicates a capture whose body is not exactly the
	// expected object size.
	ErrSizeMismatch = errors.New("dump: size mismatch")

	// ErrNoTranslation indicates an identifier missing from the name table.
	ErrNoTranslation = errors.New("dump: no translation")
)

// SizeError reports the expected and actual body sizes of a capture.
type SizeError struct {
	Expected int
	Actual   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("dump: expected %d-byte object, capture holds %d bytes", e.Expected, e.Actual)
}

func (e *SizeError) Unwrap() error { return ErrSizeMismatch }
