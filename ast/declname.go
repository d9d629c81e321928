package ast

import "strings"

// DeclName is the full name of a declaration: a base name and, for compound
// names such as functions, the list of argument labels.
type DeclName struct {
	base     Identifier
	labels   []Identifier
	compound bool
}

// NewSimpleName creates a declaration name with no argument labels
func NewSimpleName(base Identifier) DeclName {
	return DeclName{base: base}
}

// NewCompoundName creates a declaration name with argument labels.  A compound
// name with no labels is distinct from a simple name: `f()` versus `f`.
func NewCompoundName(base Identifier, labels ...Identifier) DeclName {
	return DeclName{base: base, labels: labels, compound: true}
}

// BaseName returns the base name of the declaration
func (n DeclName) BaseName() Identifier {
	return n.base
}

// IsSimpleName returns whether the name has no argument list
func (n DeclName) IsSimpleName() bool {
	return !n.compound
}

// ArgumentLabels returns the argument labels of a compound name
func (n DeclName) ArgumentLabels() []Identifier {
	return n.labels
}

// Equal returns whether both names have the same base, the same shape, and
// the same argument labels
func (n DeclName) Equal(other DeclName) bool {
	if n.base != other.base || n.compound != other.compound || len(n.labels) != len(other.labels) {
		return false
	}

	for i, label := range n.labels {
		if label != other.labels[i] {
			return false
		}
	}

	return true
}

// MatchesRef returns whether a reference written as `ref` could refer to a
// declaration named `n`.  A simple reference matches any declaration with the
// same base name; a compound reference must match exactly.
func (n DeclName) MatchesRef(ref DeclName) bool {
	if ref.IsSimpleName() {
		return n.base == ref.base
	}

	return n.Equal(ref)
}

func (n DeclName) String() string {
	if !n.compound {
		return n.base.Text()
	}

	sb := strings.Builder{}
	sb.WriteString(n.base.Text())
	sb.WriteRune('(')
	for _, label := range n.labels {
		if label.IsEmpty() {
			sb.WriteRune('_')
		} else {
			sb.WriteString(label.Text())
		}

		sb.WriteRune(':')
	}
	sb.WriteRune(')')

	return sb.String()
}
