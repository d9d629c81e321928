package imports

import (
	"iter"
	"strings"
	"unsafe"

	"chaimport/ast"
	"chaimport/logging"
)

// Element is a single dotted name of an import path along with the location
// it was written at
type Element = ast.Located

// view is the shared implementation of every kind of import path: a borrowed,
// read-only window over a sequence of elements.  A view never copies or owns
// its elements; whatever backs them (a declaration, a Builder, or a Context
// arena) must outlive it.  The window's capacity is clipped to its length so
// appending to the backing storage never writes through a view.
type view struct {
	raw []Element
}

func newView(raw []Element) view {
	return view{raw: raw[:len(raw):len(raw)]}
}

// Len returns the number of elements in the path
func (v view) Len() int {
	return len(v.raw)
}

// IsEmpty returns whether the path has no elements
func (v view) IsEmpty() bool {
	return len(v.raw) == 0
}

// At returns the i-th element of the path
func (v view) At(i int) Element {
	return v.raw[i]
}

// Front returns the first element of the path
func (v view) Front() Element {
	logging.Assert(len(v.raw) > 0, "front of empty import path")
	return v.raw[0]
}

// Back returns the last element of the path
func (v view) Back() Element {
	logging.Assert(len(v.raw) > 0, "back of empty import path")
	return v.raw[len(v.raw)-1]
}

// Raw returns the borrowed elements of the path.  The slice must not be
// modified.
func (v view) Raw() []Element {
	return v.raw
}

// All iterates over the elements of the path
func (v view) All() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i, elem := range v.raw {
			if !yield(i, elem) {
				return
			}
		}
	}
}

// Names returns the identifiers of the path without their locations
func (v view) Names() []ast.Identifier {
	names := make([]ast.Identifier, len(v.raw))
	for i, elem := range v.raw {
		names[i] = elem.Item
	}

	return names
}

// SourceRange returns the range from the first element to the last.  An empty
// path has an invalid range.
func (v view) SourceRange() ast.SourceRange {
	if len(v.raw) == 0 {
		return ast.SourceRange{}
	}

	return ast.NewSourceRange(v.raw[0].Loc, v.raw[len(v.raw)-1].Loc)
}

// String returns the path as it would be written: dot separated names
func (v view) String() string {
	sb := strings.Builder{}
	for i, elem := range v.raw {
		if i > 0 {
			sb.WriteRune('.')
		}

		sb.WriteString(elem.Item.Text())
	}

	return sb.String()
}

// -----------------------------------------------------------------------------

// equal returns whether both views hold precisely the same elements,
// including source locations
func (v view) equal(other view) bool {
	if len(v.raw) != len(other.raw) {
		return false
	}

	for i, elem := range v.raw {
		if elem != other.raw[i] {
			return false
		}
	}

	return true
}

// isSameAs returns whether both views name the same identifiers in the same
// order, ignoring source locations
func (v view) isSameAs(other view) bool {
	if len(v.raw) != len(other.raw) {
		return false
	}

	for i, elem := range v.raw {
		if elem.Item != other.raw[i].Item {
			return false
		}
	}

	return true
}

// compare orders views lexicographically by identifier text; a view that is a
// prefix of another orders first
func (v view) compare(other view) int {
	for i := 0; i < len(v.raw) && i < len(other.raw); i++ {
		if c := v.raw[i].Item.Compare(other.raw[i].Item); c != 0 {
			return c
		}
	}

	switch {
	case len(v.raw) < len(other.raw):
		return -1
	case len(v.raw) > len(other.raw):
		return 1
	default:
		return 0
	}
}

// dataAddr returns the address of the storage backing the view, or 0 for an
// empty view.  It identifies the storage, not the names stored in it.
func (v view) dataAddr() uintptr {
	if len(v.raw) == 0 {
		return 0
	}

	return uintptr(unsafe.Pointer(unsafe.SliceData(v.raw)))
}
