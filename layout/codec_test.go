package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testInner struct {
	Kind  int32
	Flag  Bool
	Pad0  [3]byte
	Value uint64
}

type testOuter struct {
	Vptr  uint64
	Items [3]testInner
	Count int32
	Pad1  [4]byte
}

func TestCodec_SizeAndOffsets(t *testing.T) {
	c := Of[testOuter]()
	require.Equal(t, 8+3*16+8, c.Size())

	require.Equal(t, 0, c.Offset("Vptr"))
	require.Equal(t, 8, c.Offset("Items"))
	require.Equal(t, 8+16, c.Offset("Items.1"))
	require.Equal(t, 8+2*16+4, c.Offset("Items.2.Flag"))
	require.Equal(t, 8+2*16+8, c.Offset("Items.2.Value"))
	require.Equal(t, 56, c.Offset("Count"))

	f, err := c.Field("Items.0.Value")
	require.NoError(t, err)
	require.Equal(t, 8, f.Size)

	require.Equal(t, c, Of[testOuter](), "codec should be cached per type")
	require.Equal(t, 16, SizeOf[testInner]())
	require.Equal(t, 4, OffsetOf[testInner]("Flag"))
}

func TestCodec_UnknownField(t *testing.T) {
	c := Of[testOuter]()

	_, err := c.Field("Nope")
	require.ErrorIs(t, err, ErrUnknownField)

	_, err = c.Field("Items.3")
	require.ErrorIs(t, err, ErrUnknownField)

	_, err = c.Field("Count.Low")
	require.ErrorIs(t, err, ErrUnknownField)

	require.Panics(t, func() { c.Offset("Missing") })
}

func TestCodec_RoundTripKeepsPadding(t *testing.T) {
	c := Of[testOuter]()
	raw := make([]byte, c.Size())
	for i := range raw {
		raw[i] = byte(i*7 + 1)
	}

	v, err := c.Decode(raw)
	require.NoError(t, err)
	require.NotZero(t, v.Items[0].Pad0, "padding should be carried, not zeroed")

	out, err := c.Encode(&v)
	require.NoError(t, err)
	require.Equal(t, raw, out)
}

func TestCodec_DecodeShortBuffer(t *testing.T) {
	_, err := Of[testOuter]().Decode(make([]byte, 10))
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestCodec_EncodeField(t *testing.T) {
	c := Of[testOuter]()
	v := testOuter{Count: -2}
	v.Items[1].Value = 0x1122334455667788
	v.Items[2].Flag = BoolOf(true)

	b, err := c.EncodeField(&v, "Items.1.Value")
	require.NoError(t, err)
	require.Equal(t, []byte{0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, b)

	b, err = c.EncodeField(&v, "Items.2.Flag")
	require.NoError(t, err)
	require.Equal(t, []byte{1}, b)

	b, err = c.EncodeField(&v, "Count")
	require.NoError(t, err)
	require.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff}, b)

	whole, err := c.EncodeField(&v, "")
	require.NoError(t, err)
	require.Len(t, whole, c.Size())

	_, err = c.EncodeField(&v, "Items.9")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestOf_PanicsOnVariableSize(t *testing.T) {
	type bad struct {
		Name string
	}
	require.Panics(t, func() { Of[bad]() })
}

func TestBool_KeepsRawByte(t *testing.T) {
	c := Of[testInner]()
	raw := make([]byte, c.Size())
	raw[4] = 0x55

	v, err := c.Decode(raw)
	require.NoError(t, err)
	require.True(t, v.Flag.Get())

	out, err := c.Encode(&v)
	require.NoError(t, err)
	require.Equal(t, byte(0x55), out[4])
	require.Equal(t, Bool(0), BoolOf(false))
}
