package ast

import "strings"

// identEntry is the unique storage for an interned name
type identEntry struct {
	text string
}

// Identifier is a name interned by a Context.  Identifiers interned by the same
// context from the same text are equal (==); comparing identifiers is a
// pointer comparison.  The zero Identifier is the empty identifier and is
// shared by every context.
type Identifier struct {
	entry *identEntry
}

// Text returns the name the identifier was interned from
func (id Identifier) Text() string {
	if id.entry == nil {
		return ""
	}

	return id.entry.text
}

// IsEmpty returns whether this is the empty identifier
func (id Identifier) IsEmpty() bool {
	return id.entry == nil
}

// Compare orders identifiers by their text.  It is not identity: two
// identifiers from different contexts may compare as 0 without being equal.
func (id Identifier) Compare(other Identifier) int {
	if id == other {
		return 0
	}

	return strings.Compare(id.Text(), other.Text())
}

func (id Identifier) String() string {
	return id.Text()
}
