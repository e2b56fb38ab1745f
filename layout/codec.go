package layout

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/modern-go/reflect2"
)

// Field locates one field of a mirror type inside its encoded bytes.
type Field struct {
	Path   string
	Offset int
	Size   int
	Type   reflect.Type
}

// Codec encodes and decodes a mirror type T and answers field-offset queries.
// Codecs are immutable after construction and safe for concurrent use.
type Codec[T any] struct {
	typ    reflect.Type
	size   int
	fields sync.Map // path -> Field
}

var (
	codecs sync.Map // reflect.Type -> *Codec[T]
	sizes  sync.Map // reflect.Type -> int
)

// Of returns the codec for T. It panics if T is not a fixed-size type, since
// that is a programming error in the mirror declaration.
func Of[T any]() *Codec[T] {
	typ := reflect.TypeFor[T]()
	if c, ok := codecs.Load(typ); ok {
		return c.(*Codec[T])
	}
	size := sizeOf(typ)
	if size < 0 {
		panic(fmt.Errorf("%w: %s", ErrNotFixedSize, typ))
	}
	c, _ := codecs.LoadOrStore(typ, &Codec[T]{typ: typ, size: size})
	return c.(*Codec[T])
}

// SizeOf returns the encoded size of T in bytes.
func SizeOf[T any]() int {
	return Of[T]().size
}

// OffsetOf returns the byte offset of path inside T. It panics on an unknown
// path; use Codec.Field when the path is not a compile-time constant.
func OffsetOf[T any](path string) int {
	return Of[T]().Offset(path)
}

func sizeOf(t reflect.Type) int {
	if s, ok := sizes.Load(t); ok {
		return s.(int)
	}
	s := binary.Size(reflect.Zero(t).Interface())
	sizes.Store(t, s)
	return s
}

// Size returns the encoded size of T.
func (c *Codec[T]) Size() int { return c.size }

// Type returns the Go type the codec describes.
func (c *Codec[T]) Type() reflect.Type { return c.typ }

// Field resolves a field path. The empty path names the whole object.
func (c *Codec[T]) Field(path string) (Field, error) {
	if f, ok := c.fields.Load(path); ok {
		return f.(Field), nil
	}
	f, err := resolve(c.typ, path)
	if err != nil {
		return Field{}, err
	}
	c.fields.Store(path, f)
	return f, nil
}

// Offset returns the byte offset of path and panics if it does not exist.
func (c *Codec[T]) Offset(path string) int {
	f, err := c.Field(path)
	if err != nil {
		panic(err)
	}
	return f.Offset
}

// Decode interprets the first Size() bytes of b as a T. Padding fields are
// filled from b verbatim.
func (c *Codec[T]) Decode(b []byte) (T, error) {
	var v T
	if len(b) < c.size {
		return v, fmt.Errorf("%w: have %d bytes, need %d for %s", ErrShortBuffer, len(b), c.size, c.typ)
	}
	if _, err := binary.Decode(b[:c.size], binary.LittleEndian, &v); err != nil {
		return v, fmt.Errorf("layout: decode %s: %w", c.typ, err)
	}
	return v, nil
}

// Encode returns the native bytes of v, including its padding fields.
func (c *Codec[T]) Encode(v *T) ([]byte, error) {
	out, err := binary.Append(make([]byte, 0, c.size), binary.LittleEndian, v)
	if err != nil {
		return nil, fmt.Errorf("layout: encode %s: %w", c.typ, err)
	}
	return out, nil
}

// EncodeField returns only the bytes of the field at path, taken from v.
func (c *Codec[T]) EncodeField(v *T, path string) ([]byte, error) {
	f, err := c.Field(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c.Encode(v)
	}
	ptr := reflect2.PtrOf(v)
	t2 := reflect2.Type2(c.typ)
	for _, seg := range strings.Split(path, ".") {
		switch t2.Kind() {
		case reflect.Struct:
			sf := t2.(reflect2.StructType).FieldByName(seg)
			ptr = sf.UnsafeGet(ptr)
			t2 = sf.Type()
		case reflect.Array:
			i, _ := strconv.Atoi(seg)
			at := t2.(reflect2.ArrayType)
			ptr = at.UnsafeGetIndex(ptr, i)
			t2 = at.Elem()
		}
	}
	out, err := binary.Append(make([]byte, 0, f.Size), binary.LittleEndian, t2.PackEFace(ptr))
	if err != nil {
		return nil, fmt.Errorf("layout: encode %s.%s: %w", c.typ, path, err)
	}
	return out, nil
}

// resolve walks path through t, summing the encoded sizes of the fields and
// elements that precede each step.
func resolve(t reflect.Type, path string) (Field, error) {
	if path == "" {
		return Field{Path: path, Size: sizeOf(t), Type: t}, nil
	}
	off := 0
	cur := t
	for _, seg := range strings.Split(path, ".") {
		switch cur.Kind() {
		case reflect.Struct:
			idx := -1
			for i := 0; i < cur.NumField(); i++ {
				sf := cur.Field(i)
				if sf.Name == seg {
					idx = i
					break
				}
				off += sizeOf(sf.Type)
			}
			if idx < 0 {
				return Field{}, fmt.Errorf("%w: %s in %s", ErrUnknownField, path, t)
			}
			cur = cur.Field(idx).Type
		case reflect.Array:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= cur.Len() {
				return Field{}, fmt.Errorf("%w: %s in %s (bad index %q)", ErrUnknownField, path, t, seg)
			}
			off += i * sizeOf(cur.Elem())
			cur = cur.Elem()
		default:
			return Field{}, fmt.Errorf("%w: %s in %s (%s has no fields)", ErrUnknownField, path, t, cur)
		}
	}
	return Field{Path: path, Offset: off, Size: sizeOf(cur), Type: cur}, nil
}
