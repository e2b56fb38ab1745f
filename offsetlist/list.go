package offsetlist

import (
	"fmt"
	"slices"

	"github.com/joshuapare/pouchkit/mem"
)

// Node is the link embedded inside every list element.
type Node struct {
	Prev mem.Pointer[Node]
	Next mem.Pointer[Node]
}

// Header mirrors the list object as laid out in target memory.
type Header[T any] struct {
	StartEnd Node
	Count    int32
	Offset   int32
}

// List is a handle to a Header[T] living in memory.
type List[T any] struct {
	m    *mem.Memory
	self mem.Pointer[Header[T]]
}

// At returns a handle to the list header at p.
func At[T any](m *mem.Memory, p mem.Pointer[Header[T]]) *List[T] {
	return &List[T]{m: m, self: p}
}

// Ptr returns the header address.
func (l *List[T]) Ptr() mem.Pointer[Header[T]] { return l.self }

// Sentinel returns the address of the header's start/end node.
func (l *List[T]) Sentinel() mem.Pointer[Node] {
	return mem.FieldPtr[Node](l.self, "StartEnd")
}

// Header reads the list header.
func (l *List[T]) Header() (Header[T], error) { return l.self.Read(l.m) }

// Count returns the element count recorded in the header.
func (l *List[T]) Count() (int, error) {
	n, err := mem.ReadField[int32](l.m, l.self, "Count")
	return int(n), err
}

// Init makes the list empty: the sentinel links to itself and Count is 0.
func (l *List[T]) Init(offset int32) error {
	s := l.Sentinel()
	return l.self.Write(l.m, Header[T]{
		StartEnd: Node{Prev: s, Next: s},
		Offset:   offset,
	})
}

// AddCount adjusts the recorded count without touching any links.
func (l *List[T]) AddCount(delta int32) error {
	n, err := mem.ReadField[int32](l.m, l.self, "Count")
	if err != nil {
		return err
	}
	return mem.WriteField(l.m, l.self, "Count", n+delta)
}

func (l *List[T]) offset() (uint64, error) {
	off, err := mem.ReadField[int32](l.m, l.self, "Offset")
	return uint64(off), err
}

// LinkOf returns the address of the node embedded in elem.
func (l *List[T]) LinkOf(elem mem.Pointer[T]) (mem.Pointer[Node], error) {
	off, err := l.offset()
	if err != nil {
		return 0, err
	}
	return mem.Cast[Node](elem.Add(off)), nil
}

// elemOf maps a link back to its element, or NULL for the sentinel and for
// a NULL link.
func (l *List[T]) elemOf(link mem.Pointer[Node]) (mem.Pointer[T], error) {
	if link.IsNull() || link == l.Sentinel() {
		return 0, nil
	}
	off, err := l.offset()
	if err != nil {
		return 0, err
	}
	return mem.Cast[T](link.Sub(off)), nil
}

// First returns the first element, or NULL when the list is empty.
func (l *List[T]) First() (mem.Pointer[T], error) {
	next, err := mem.ReadField[mem.Pointer[Node]](l.m, l.Sentinel(), "Next")
	if err != nil {
		return 0, err
	}
	return l.elemOf(next)
}

// Last returns the last element, or NULL when the list is empty.
func (l *List[T]) Last() (mem.Pointer[T], error) {
	prev, err := mem.ReadField[mem.Pointer[Node]](l.m, l.Sentinel(), "Prev")
	if err != nil {
		return 0, err
	}
	return l.elemOf(prev)
}

// Next returns the element after elem, or NULL at the end of the list.
func (l *List[T]) Next(elem mem.Pointer[T]) (mem.Pointer[T], error) {
	return l.neighbour(elem, "Next")
}

// Prev returns the element before elem, or NULL at the start of the list.
func (l *List[T]) Prev(elem mem.Pointer[T]) (mem.Pointer[T], error) {
	return l.neighbour(elem, "Prev")
}

func (l *List[T]) neighbour(elem mem.Pointer[T], field string) (mem.Pointer[T], error) {
	link, err := l.LinkOf(elem)
	if err != nil {
		return 0, err
	}
	to, err := mem.ReadField[mem.Pointer[Node]](l.m, link, field)
	if err != nil {
		return 0, err
	}
	return l.elemOf(to)
}

// Nth returns the element n links after the sentinel, or NULL when n is not
// below the recorded count.
func (l *List[T]) Nth(n int) (mem.Pointer[T], error) {
	count, err := l.Count()
	if err != nil {
		return 0, err
	}
	if n < 0 || n >= count {
		return 0, nil
	}
	link, err := mem.ReadField[mem.Pointer[Node]](l.m, l.Sentinel(), "Next")
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		if link, err = mem.ReadField[mem.Pointer[Node]](l.m, link, "Next"); err != nil {
			return 0, fmt.Errorf("nth(%d) step %d: %w", n, i, err)
		}
	}
	return l.elemOf(link)
}

// PushBack links elem in after the last element and increments the count.
func (l *List[T]) PushBack(elem mem.Pointer[T]) error {
	s := l.Sentinel()
	last, err := mem.ReadField[mem.Pointer[Node]](l.m, s, "Prev")
	if err != nil {
		return err
	}
	return l.insert(elem, last, s)
}

// PushFront links elem in before the first element and increments the count.
func (l *List[T]) PushFront(elem mem.Pointer[T]) error {
	s := l.Sentinel()
	first, err := mem.ReadField[mem.Pointer[Node]](l.m, s, "Next")
	if err != nil {
		return err
	}
	return l.insert(elem, s, first)
}

func (l *List[T]) insert(elem mem.Pointer[T], prev, next mem.Pointer[Node]) error {
	link, err := l.LinkOf(elem)
	if err != nil {
		return err
	}
	if err := link.Write(l.m, Node{Prev: prev, Next: next}); err != nil {
		return err
	}
	if err := mem.WriteField(l.m, prev, "Next", link); err != nil {
		return err
	}
	if err := mem.WriteField(l.m, next, "Prev", link); err != nil {
		return err
	}
	return l.AddCount(1)
}

// PopFront unlinks and returns the first element, or NULL if there is none.
func (l *List[T]) PopFront() (mem.Pointer[T], error) {
	first, err := l.First()
	if err != nil || first.IsNull() {
		return first, err
	}
	return first, l.Erase(first)
}

// Erase unlinks elem: its neighbours are pointed at each other (a NULL side
// is skipped), its own Prev is cleared and the count is decremented. The
// element's other fields are left alone.
func (l *List[T]) Erase(elem mem.Pointer[T]) error {
	link, err := l.LinkOf(elem)
	if err != nil {
		return err
	}
	node, err := link.Read(l.m)
	if err != nil {
		return err
	}
	if !node.Prev.IsNull() {
		if err := mem.WriteField(l.m, node.Prev, "Next", node.Next); err != nil {
			return err
		}
	}
	if !node.Next.IsNull() {
		if err := mem.WriteField(l.m, node.Next, "Prev", node.Prev); err != nil {
			return err
		}
	}
	if err := mem.WriteField(l.m, link, "Prev", mem.Null[Node]()); err != nil {
		return err
	}
	return l.AddCount(-1)
}

// Walk visits every linked element in order. It fails with a
// *CorruptListError if a link is revisited or is NULL before the sentinel is
// reached; fn errors stop the walk and are returned as is.
func (l *List[T]) Walk(fn func(mem.Pointer[T]) error) error {
	s := l.Sentinel()
	link, err := mem.ReadField[mem.Pointer[Node]](l.m, s, "Next")
	if err != nil {
		return err
	}
	visited := make(map[mem.Pointer[Node]]struct{})
	for step := 0; link != s; step++ {
		if link.IsNull() {
			return &CorruptListError{List: l.self.Addr(), Link: 0, Step: step, Reason: "null link before sentinel"}
		}
		if _, seen := visited[link]; seen {
			return &CorruptListError{List: l.self.Addr(), Link: link.Addr(), Step: step, Reason: "link revisited before sentinel"}
		}
		visited[link] = struct{}{}
		elem, err := l.elemOf(link)
		if err != nil {
			return err
		}
		if err := fn(elem); err != nil {
			return err
		}
		if link, err = mem.ReadField[mem.Pointer[Node]](l.m, link, "Next"); err != nil {
			return fmt.Errorf("walk step %d: %w", step, err)
		}
	}
	return nil
}

// Elements returns every linked element in order.
func (l *List[T]) Elements() ([]mem.Pointer[T], error) {
	var out []mem.Pointer[T]
	err := l.Walk(func(e mem.Pointer[T]) error {
		out = append(out, e)
		return nil
	})
	return out, err
}

// Contains reports whether elem is currently linked into the list.
func (l *List[T]) Contains(elem mem.Pointer[T]) (bool, error) {
	elems, err := l.Elements()
	if err != nil {
		return false, err
	}
	return slices.Contains(elems, elem), nil
}

// Sort stably reorders the linked elements by cmp and rewrites every link.
// Ties keep their current relative order. The count is not changed.
func (l *List[T]) Sort(cmp func(a, b mem.Pointer[T]) int) error {
	elems, err := l.Elements()
	if err != nil {
		return err
	}
	slices.SortStableFunc(elems, cmp)

	s := l.Sentinel()
	prev := s
	for _, e := range elems {
		link, err := l.LinkOf(e)
		if err != nil {
			return err
		}
		if err := mem.WriteField(l.m, prev, "Next", link); err != nil {
			return err
		}
		if err := mem.WriteField(l.m, link, "Prev", prev); err != nil {
			return err
		}
		prev = link
	}
	if err := mem.WriteField(l.m, prev, "Next", s); err != nil {
		return err
	}
	return mem.WriteField(l.m, s, "Prev", prev)
}
