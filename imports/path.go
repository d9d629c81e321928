package imports

import (
	"chaimport/logging"
)

// Path is an undifferentiated series of dotted names from an import
// statement, like `Foo.Bar`.  Its first element is always a top-level module
// name.  The remaining elements could name submodules or a declaration to
// scope the import to; Path does not distinguish between the two.  Use
// ModulePath and AccessPath, which split it according to the kind of import.
//
// Path borrows its elements.  The zero Path is invalid.
type Path struct {
	view
}

// NewPath creates a path viewing raw, which must hold at least one element
func NewPath(raw []Element) Path {
	logging.Assert(len(raw) >= 1, "import path must contain a module name")
	return Path{newView(raw)}
}

// Equal returns whether both paths are precisely equal, including locations
func (p Path) Equal(other Path) bool {
	return p.equal(other.view)
}

// IsSameAs returns whether both paths contain the same identifiers in the same
// order, ignoring locations
func (p Path) IsSameAs(other Path) bool {
	return p.isSameAs(other.view)
}

// Compare orders paths lexicographically by identifier text
func (p Path) Compare(other Path) int {
	return p.compare(other.view)
}

// Less returns whether p orders before other lexicographically
func (p Path) Less(other Path) bool {
	return p.compare(other.view) < 0
}

// TopLevelPath returns the path of just the first element
func (p Path) TopLevelPath() Path {
	logging.Assert(p.Len() >= 1, "nothing to take")
	return NewPath(p.raw[:1])
}

// ParentPath returns the path without its last element.  The result must
// still be a valid path, so p must have at least two elements.
func (p Path) ParentPath() Path {
	return NewPath(p.raw[:max(p.Len()-1, 0)])
}

// ModulePath extracts the portion of the path that names a module, including
// submodules.  If the import is scoped, that is everything but the last name.
func (p Path) ModulePath(isScoped bool) ModulePath {
	if isScoped {
		logging.Assert(p.Len() >= 2, "scoped import path `%s` must contain a declaration name", p)
		return NewModulePath(p.raw[:p.Len()-1])
	}

	return NewModulePath(p.raw)
}

// AccessPath extracts the portion of the path that scopes the import to a
// single declaration.  It is empty unless the import is scoped.
func (p Path) AccessPath(isScoped bool) AccessPath {
	if isScoped {
		logging.Assert(p.Len() >= 2, "scoped import path `%s` must contain a declaration name", p)
		return NewAccessPath(p.raw[p.Len()-1:])
	}

	return EmptyAccessPath()
}

// ModulePathFor extracts the module path for an import of the given kind
func (p Path) ModulePathFor(kind ImportKind) ModulePath {
	return p.ModulePath(kind.IsScoped())
}

// AccessPathFor extracts the access path for an import of the given kind
func (p Path) AccessPathFor(kind ImportKind) AccessPath {
	return p.AccessPath(kind.IsScoped())
}
