package verify

import (
	"errors"
	"fmt"

	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/offsetlist"
	"github.com/joshuapare/pouchkit/pouch"
	"github.com/joshuapare/pouchkit/slab"
)

// ValidationError describes the first invariant violation found.
type ValidationError struct {
	Type    string
	Message string
	Address uint64 // 0 if N/A
	Details map[string]any
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Address != 0 {
		return fmt.Sprintf("%s at 0x%X: %s", e.Type, e.Address, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Blocks checks that the stored blocks are sorted, neither overlap nor
// touch, and lie inside the memory's window.
func Blocks(m *mem.Memory) error {
	w := m.Window()
	regions := m.Regions()
	for i, r := range regions {
		if r.Size == 0 {
			return &ValidationError{Type: "Blocks", Message: "empty block", Address: r.Addr}
		}
		if !w.Contains(r.Addr, r.Size) {
			return &ValidationError{
				Type:    "Blocks",
				Message: fmt.Sprintf("block 0x%X-0x%X outside window", r.Addr, r.End()),
				Address: r.Addr,
			}
		}
		if i > 0 && regions[i-1].End() >= r.Addr {
			return &ValidationError{
				Type:    "Blocks",
				Message: fmt.Sprintf("block overlaps or touches previous block ending at 0x%X", regions[i-1].End()),
				Address: r.Addr,
				Details: map[string]any{"index": i},
			}
		}
	}
	return nil
}

// ListLinks walks l forward and checks every back link.
func ListLinks[T any](m *mem.Memory, l *offsetlist.List[T]) error {
	_, err := walkLinks(m, l)
	return err
}

func walkLinks[T any](m *mem.Memory, l *offsetlist.List[T]) (int, error) {
	s := l.Sentinel()
	prev := s
	n := 0
	err := l.Walk(func(e mem.Pointer[T]) error {
		link, err := l.LinkOf(e)
		if err != nil {
			return err
		}
		back, err := mem.ReadField[mem.Pointer[offsetlist.Node]](m, link, "Prev")
		if err != nil {
			return err
		}
		if back != prev {
			return &ValidationError{
				Type:    "ListLinks",
				Message: fmt.Sprintf("prev link 0x%X, expected 0x%X", back.Addr(), prev.Addr()),
				Address: link.Addr(),
				Details: map[string]any{"index": n},
			}
		}
		prev = link
		n++
		return nil
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return n, err
		}
		return n, &ValidationError{Type: "ListLinks", Message: err.Error(), Address: l.Ptr().Addr(), Err: err}
	}
	last, err := mem.ReadField[mem.Pointer[offsetlist.Node]](m, s, "Prev")
	if err != nil {
		return n, &ValidationError{Type: "ListLinks", Message: err.Error(), Address: s.Addr(), Err: err}
	}
	if last != prev {
		return n, &ValidationError{
			Type:    "ListLinks",
			Message: fmt.Sprintf("sentinel prev 0x%X, expected last link 0x%X", last.Addr(), prev.Addr()),
			Address: s.Addr(),
		}
	}
	return n, nil
}

// ListCount checks that the recorded count matches the linked elements.
func ListCount[T any](m *mem.Memory, l *offsetlist.List[T]) error {
	n, err := walkLinks(m, l)
	if err != nil {
		return err
	}
	count, err := l.Count()
	if err != nil {
		return &ValidationError{Type: "ListCount", Message: err.Error(), Address: l.Ptr().Addr(), Err: err}
	}
	if count != n {
		return &ValidationError{
			Type:    "ListCount",
			Message: fmt.Sprintf("count %d, %d elements linked", count, n),
			Address: l.Ptr().Addr(),
			Details: map[string]any{"count": count, "linked": n},
		}
	}
	return nil
}

// Slab checks the allocator's accounting.
func Slab[T any](m *mem.Memory, a *slab.Allocator[T]) error {
	at := a.Ptr()
	hdr, err := at.Read(m)
	if err != nil {
		return &ValidationError{Type: "Slab", Message: err.Error(), Address: at.Addr(), Err: err}
	}
	if int(hdr.PtrNumMax) != a.Capacity() {
		return &ValidationError{
			Type:    "Slab",
			Message: fmt.Sprintf("capacity %d, expected %d", hdr.PtrNumMax, a.Capacity()),
			Address: at.Addr(),
		}
	}
	free, err := a.FreeSlots()
	if err != nil {
		return &ValidationError{Type: "Slab", Message: err.Error(), Address: at.Addr(), Err: err}
	}
	if int(hdr.PtrNum)+len(free) != a.Capacity() {
		return &ValidationError{
			Type:    "Slab",
			Message: fmt.Sprintf("%d used + %d free != %d", hdr.PtrNum, len(free), a.Capacity()),
			Address: at.Addr(),
			Details: map[string]any{"used": hdr.PtrNum, "free": len(free)},
		}
	}
	return nil
}

// Manager checks both item lists, every linked item's ingredient array, the
// category order of the active list and the tab heads. Counts may be
// shifted between the lists but their sum must equal the linked total.
func Manager(mgr *pouch.Manager) error {
	m := mgr.Memory()
	active, graveyard := mgr.Active(), mgr.Graveyard()

	nActive, err := walkLinks(m, active)
	if err != nil {
		return err
	}
	nGrave, err := walkLinks(m, graveyard)
	if err != nil {
		return err
	}
	cActive, err := active.Count()
	if err != nil {
		return err
	}
	cGrave, err := graveyard.Count()
	if err != nil {
		return err
	}
	if cActive+cGrave != nActive+nGrave {
		return &ValidationError{
			Type:    "Manager",
			Message: fmt.Sprintf("counts %d+%d, %d+%d elements linked", cActive, cGrave, nActive, nGrave),
			Address: mgr.Ptr().Addr(),
		}
	}
	if nActive+nGrave > pouch.NumPouchItemsMax {
		return &ValidationError{
			Type:    "Manager",
			Message: fmt.Sprintf("%d items linked, only %d slots", nActive+nGrave, pouch.NumPouchItemsMax),
			Address: mgr.Ptr().Addr(),
		}
	}

	items, err := active.Elements()
	if err != nil {
		return err
	}
	prev := pouch.CategorySword
	for i, p := range items {
		if _, err := mgr.SlotIndex(p); err != nil {
			return &ValidationError{Type: "Manager", Message: err.Error(), Address: p.Addr(), Err: err}
		}
		it, err := mgr.Item(p)
		if err != nil {
			return err
		}
		cat := it.Type.Category()
		if cat < prev {
			return &ValidationError{
				Type:    "Manager",
				Message: fmt.Sprintf("item %d (%s) listed after category %s", i, cat, prev),
				Address: p.Addr(),
			}
		}
		prev = cat
		arr := slab.At[pouch.FixedSafeString](m, mem.FieldPtr[slab.Header](p, "Ingredients.Header"), pouch.NumIngredientsMax)
		if err := Slab(m, arr); err != nil {
			return err
		}
	}
	return tabHeads(mgr)
}

func tabHeads(mgr *pouch.Manager) error {
	st, err := mgr.Ptr().Read(mgr.Memory())
	if err != nil {
		return err
	}
	tabs := mem.FieldPtr[mem.Pointer[pouch.PouchItem]](mgr.Ptr(), "Tabs")
	for cat, head := range st.ListHeads {
		if head.IsNull() {
			continue
		}
		i := int(head.Addr()-tabs.Addr()) / 8
		if head.Addr() < tabs.Addr() || (head.Addr()-tabs.Addr())%8 != 0 || i >= int(st.NumTabs) || i >= pouch.NumTabMax {
			return &ValidationError{
				Type:    "Manager",
				Message: fmt.Sprintf("%s head does not point at a used tab", pouch.Category(cat)),
				Address: head.Addr(),
			}
		}
		it, err := mgr.Item(st.Tabs[i])
		if err != nil {
			return err
		}
		if it.Type.Category() != pouch.Category(cat) {
			return &ValidationError{
				Type:    "Manager",
				Message: fmt.Sprintf("%s head points at a %s tab", pouch.Category(cat), it.Type.Category()),
				Address: head.Addr(),
			}
		}
	}
	return nil
}

// AllInvariants runs Blocks and Manager. Returns the first error
// encountered, or nil if all checks pass.
func AllInvariants(mgr *pouch.Manager) error {
	if err := Blocks(mgr.Memory()); err != nil {
		return err
	}
	return Manager(mgr)
}
