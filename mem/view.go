package mem

import "github.com/joshuapare/pouchkit/layout"

// Refresher is implemented by cached copies that can re-read themselves from
// memory.
type Refresher interface {
	Refresh() error
}

// View is a cached decoded copy of the T at a fixed address.
type View[T any] struct {
	m   *Memory
	ptr Pointer[T]
	val T
}

// NewView reads the T at p and returns a view of it.
func NewView[T any](m *Memory, p Pointer[T]) (*View[T], error) {
	v := &View[T]{m: m, ptr: p}
	if err := v.Refresh(); err != nil {
		return nil, err
	}
	return v, nil
}

// Ptr returns the address the view mirrors.
func (v *View[T]) Ptr() Pointer[T] { return v.ptr }

// Get returns the cached copy. It is only current until the next write to
// memory that is not followed by Refresh.
func (v *View[T]) Get() *T { return &v.val }

// Refresh re-reads the whole object.
func (v *View[T]) Refresh() error {
	val, err := v.ptr.Read(v.m)
	if err != nil {
		return err
	}
	v.val = val
	return nil
}

// Update applies fn to the cached copy, writes back only the field at path
// and refreshes the whole copy from memory.
func (v *View[T]) Update(path string, fn func(*T)) error {
	fn(&v.val)
	b, err := layout.Of[T]().EncodeField(&v.val, path)
	if err != nil {
		return err
	}
	if err := v.m.WriteBytes(v.ptr.Addr()+uint64(layout.OffsetOf[T](path)), b); err != nil {
		return err
	}
	return v.Refresh()
}

// SetField writes one field of the viewed object and refreshes the view.
func SetField[F, T any](v *View[T], path string, value F) error {
	if err := WriteField(v.m, v.ptr, path, value); err != nil {
		return err
	}
	return v.Refresh()
}
