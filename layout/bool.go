package layout

// Bool is a one-byte native boolean. It is kept as the raw byte so values
// other than 0 and 1 found in a capture survive a decode/encode cycle.
type Bool uint8

// BoolOf converts a Go bool to its native encoding.
func BoolOf(v bool) Bool {
	if v {
		return 1
	}
	return 0
}

// Get reports whether the byte is non-zero.
func (b Bool) Get() bool { return b != 0 }
