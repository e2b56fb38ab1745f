package layout

import "errors"

var (
	// ErrUnknownField indicates a field path that does not exist in the mirror type.
	ErrUnknownField = errors.New("layout: unknown field")

	// ErrShortBuffer indicates fewer bytes than the encoded size of the type.
	ErrShortBuffer = errors.New("layout: short buffer")

	// ErrNotFixedSize indicates a type that cannot be laid out byte-exactly.
	ErrNotFixedSize = errors.New("layout: type is not fixed size")
)
