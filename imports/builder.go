package imports

import (
	"iter"
	"strings"

	"chaimport/ast"
	"chaimport/logging"
)

// Builder accumulates the elements of an import path.  The paths it produces
// directly (Path, ModulePath, AccessPath) borrow the builder's own storage and
// are only valid until the builder is next modified; paths produced by the
// Copy methods live as long as the Context they were copied into.
//
// A Builder is scratch space for a single declaration and must not be shared
// between goroutines.
type Builder struct {
	scratch []Element
}

// NewBuilder creates a builder holding the given elements
func NewBuilder(elems ...Element) *Builder {
	return NewBuilderFromSlice(elems)
}

// NewBuilderFromSlice creates a builder holding a copy of the given elements
func NewBuilderFromSlice(elems []Element) *Builder {
	b := &Builder{scratch: make([]Element, 0, max(len(elems), 4))}
	b.scratch = append(b.scratch, elems...)
	return b
}

// NewBuilderFromName creates a builder holding a single name
func NewBuilderFromName(name ast.Identifier, loc ast.SourceLoc) *Builder {
	return NewBuilder(Element{Item: name, Loc: loc})
}

// ParseBuilder splits text on sep and creates a builder holding one element
// per piece, each interned by ctx and given an invalid location.  This is
// not a parser: pieces are not checked to be valid identifiers, so `a..b`
// produces an empty name in the middle.  A trailing separator is ignored.
func ParseBuilder(ctx *ast.Context, text string, sep rune) *Builder {
	b := &Builder{}

	sepStr := string(sep)
	for text != "" {
		var next string
		next, text, _ = strings.Cut(text, sepStr)
		b.PushName(ctx.Intern(next), ast.SourceLoc{})
	}

	return b
}

// Push appends an element
func (b *Builder) Push(elem Element) {
	b.scratch = append(b.scratch, elem)
}

// PushName appends a name written at loc
func (b *Builder) PushName(name ast.Identifier, loc ast.SourceLoc) {
	b.scratch = append(b.scratch, Element{Item: name, Loc: loc})
}

// Pop removes the last element
func (b *Builder) Pop() {
	logging.Assert(len(b.scratch) > 0, "pop from empty import path builder")
	b.scratch = b.scratch[:len(b.scratch)-1]
}

// Append appends the given elements
func (b *Builder) Append(elems ...Element) {
	b.scratch = append(b.scratch, elems...)
}

// AppendSeq appends every element produced by seq
func (b *Builder) AppendSeq(seq iter.Seq[Element]) {
	for elem := range seq {
		b.scratch = append(b.scratch, elem)
	}
}

// Len returns the number of elements in the builder
func (b *Builder) Len() int {
	return len(b.scratch)
}

// IsEmpty returns whether the builder has no elements
func (b *Builder) IsEmpty() bool {
	return len(b.scratch) == 0
}

// At returns the i-th element
func (b *Builder) At(i int) Element {
	return b.scratch[i]
}

// SetAt replaces the i-th element
func (b *Builder) SetAt(i int, elem Element) {
	b.scratch[i] = elem
}

// Front returns the first element
func (b *Builder) Front() Element {
	logging.Assert(len(b.scratch) > 0, "front of empty import path builder")
	return b.scratch[0]
}

// SetFront replaces the first element
func (b *Builder) SetFront(elem Element) {
	logging.Assert(len(b.scratch) > 0, "front of empty import path builder")
	b.scratch[0] = elem
}

// Back returns the last element
func (b *Builder) Back() Element {
	logging.Assert(len(b.scratch) > 0, "back of empty import path builder")
	return b.scratch[len(b.scratch)-1]
}

// SetBack replaces the last element
func (b *Builder) SetBack(elem Element) {
	logging.Assert(len(b.scratch) > 0, "back of empty import path builder")
	b.scratch[len(b.scratch)-1] = elem
}

// Elements iterates over the elements of the builder
func (b *Builder) Elements() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for _, elem := range b.scratch {
			if !yield(elem) {
				return
			}
		}
	}
}

// -----------------------------------------------------------------------------
// Borrowing producers: the result is invalidated by the next modification of
// the builder.

// Path returns an import path borrowing the builder's storage
func (b *Builder) Path() Path {
	return NewPath(b.scratch)
}

// ModulePath returns a module path borrowing the builder's storage
func (b *Builder) ModulePath() ModulePath {
	return NewModulePath(b.scratch)
}

// AccessPath returns an access path borrowing the builder's storage
func (b *Builder) AccessPath() AccessPath {
	return NewAccessPath(b.scratch)
}

// -----------------------------------------------------------------------------
// Copying producers: the result lives as long as ctx.

// CopyPathTo copies the builder's elements into ctx and returns a path over
// the copy
func (b *Builder) CopyPathTo(ctx *ast.Context) Path {
	return NewPath(ctx.AllocateCopy(b.scratch))
}

// CopyModulePathTo copies the builder's elements into ctx and returns a module
// path over the copy
func (b *Builder) CopyModulePathTo(ctx *ast.Context) ModulePath {
	return NewModulePath(ctx.AllocateCopy(b.scratch))
}

// CopyAccessPathTo copies the builder's elements into ctx and returns an
// access path over the copy
func (b *Builder) CopyAccessPathTo(ctx *ast.Context) AccessPath {
	return NewAccessPath(ctx.AllocateCopy(b.scratch))
}
