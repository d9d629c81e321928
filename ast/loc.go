package ast

import "fmt"

// SourceLoc is an opaque position token in a source file.  The zero value is an
// invalid location, used for names the compiler synthesized itself.
type SourceLoc struct {
	line, col uint32
}

// NewSourceLoc creates a new location from a 1-based line and column
func NewSourceLoc(line, col uint32) SourceLoc {
	return SourceLoc{line: line, col: col}
}

// IsValid reports whether the location refers to real source text
func (l SourceLoc) IsValid() bool {
	return l.line > 0
}

// Line returns the 1-based line number
func (l SourceLoc) Line() uint32 {
	return l.line
}

// Col returns the 1-based column number
func (l SourceLoc) Col() uint32 {
	return l.col
}

func (l SourceLoc) String() string {
	if !l.IsValid() {
		return "<invalid loc>"
	}

	return fmt.Sprintf("%d:%d", l.line, l.col)
}

// SourceRange is a range of source text.  Both ends are inclusive: End is the
// location of the start of the last token in the range.
type SourceRange struct {
	Start, End SourceLoc
}

// NewSourceRange creates a range spanning start through end
func NewSourceRange(start, end SourceLoc) SourceRange {
	return SourceRange{Start: start, End: end}
}

// IsValid reports whether the range refers to real source text
func (r SourceRange) IsValid() bool {
	return r.Start.IsValid()
}

func (r SourceRange) String() string {
	if !r.IsValid() {
		return "<invalid range>"
	}

	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Located pairs an identifier with the location it was written at
type Located struct {
	Item Identifier
	Loc  SourceLoc
}
