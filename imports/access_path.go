package imports

import (
	"chaimport/ast"
	"chaimport/logging"
)

// AccessPath is the portion of an import path that scopes the import to a
// declaration inside the module.  An empty access path means the import
// covers every declaration of the module.  Only top-level declarations can be
// scope targets, so an access path has at most one element.
//
// AccessPath borrows its elements.  The zero AccessPath is the empty path.
type AccessPath struct {
	view
}

// NewAccessPath creates an access path viewing raw, which must hold at most
// one element
func NewAccessPath(raw []Element) AccessPath {
	logging.Assert(len(raw) <= 1, "nested scoped imports are not supported")
	return AccessPath{newView(raw)}
}

// EmptyAccessPath returns the access path of an unscoped import
func EmptyAccessPath() AccessPath {
	return AccessPath{}
}

// Equal returns whether both paths are precisely equal, including locations
func (ap AccessPath) Equal(other AccessPath) bool {
	return ap.equal(other.view)
}

// IsSameAs returns whether both paths scope to the same name, ignoring
// locations
func (ap AccessPath) IsSameAs(other AccessPath) bool {
	return ap.isSameAs(other.view)
}

// Compare orders paths lexicographically by identifier text
func (ap AccessPath) Compare(other AccessPath) int {
	return ap.compare(other.view)
}

// Less returns whether ap orders before other lexicographically
func (ap AccessPath) Less(other AccessPath) bool {
	return ap.compare(other.view) < 0
}

// TopLevelPath returns the path itself; it must not be empty
func (ap AccessPath) TopLevelPath() AccessPath {
	logging.Assert(ap.Len() >= 1, "nothing to take")
	return NewAccessPath(ap.raw[:1])
}

// ParentPath returns the empty access path
func (ap AccessPath) ParentPath() AccessPath {
	return NewAccessPath(ap.raw[:max(ap.Len()-1, 0)])
}

// Matches returns whether the import covers declarations named name.  An
// empty access path matches every name.
func (ap AccessPath) Matches(name ast.Identifier) bool {
	return ap.IsEmpty() || ap.raw[0].Item == name
}

// MatchesDecl returns whether the import covers the declaration with the given
// full name.  A scope target matches every declaration sharing its base name,
// so `import func io.read` covers both `read(file:)` and `read(stream:)`.
func (ap AccessPath) MatchesDecl(name ast.DeclName) bool {
	return ap.IsEmpty() || name.MatchesRef(ast.NewSimpleName(ap.raw[0].Item))
}
