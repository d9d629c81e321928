package imports

import (
	"chaimport/logging"
)

// ModulePath is the portion of an import path that names the module being
// imported.  It holds one or more names: the first names a top-level module,
// and any further names chain together to name a submodule.  Chai's own
// modules are flat; submodules only arise from host-interop modules.
//
// ModulePath borrows its elements.  The zero ModulePath is invalid.
type ModulePath struct {
	view
}

// NewModulePath creates a module path viewing raw, which must hold at least
// one element
func NewModulePath(raw []Element) ModulePath {
	logging.Assert(len(raw) >= 1, "module path must have a top-level module")
	return ModulePath{newView(raw)}
}

// Equal returns whether both paths are precisely equal, including locations
func (mp ModulePath) Equal(other ModulePath) bool {
	return mp.equal(other.view)
}

// IsSameAs returns whether both paths name the same module, ignoring locations
func (mp ModulePath) IsSameAs(other ModulePath) bool {
	return mp.isSameAs(other.view)
}

// Compare orders paths lexicographically by identifier text
func (mp ModulePath) Compare(other ModulePath) int {
	return mp.compare(other.view)
}

// Less returns whether mp orders before other lexicographically
func (mp ModulePath) Less(other ModulePath) bool {
	return mp.compare(other.view) < 0
}

// TopLevelPath returns the path of just the top-level module
func (mp ModulePath) TopLevelPath() ModulePath {
	logging.Assert(mp.Len() >= 1, "nothing to take")
	return NewModulePath(mp.raw[:1])
}

// ParentPath returns the path of the enclosing module.  mp must name a
// submodule.
func (mp ModulePath) ParentPath() ModulePath {
	return NewModulePath(mp.raw[:max(mp.Len()-1, 0)])
}

// HasSubmodule returns whether the path names a submodule
func (mp ModulePath) HasSubmodule() bool {
	return mp.Len() > 1
}

// SubmodulePath returns the names after the top-level module
func (mp ModulePath) SubmodulePath() []Element {
	return mp.raw[1:]
}
