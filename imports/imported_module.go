package imports

import (
	"cmp"
	"slices"

	"chaimport/ast"
	"chaimport/logging"
)

// ImportedModule is a loaded module along with the access path of the import
// that named it: "this module, possibly restricted to one declaration".
// The zero ImportedModule is invalid.
type ImportedModule struct {
	access AccessPath

	// module is never nil
	module *ast.ModuleDecl
}

// NewImportedModule pairs a loaded module with an access path
func NewImportedModule(access AccessPath, module *ast.ModuleDecl) ImportedModule {
	logging.Assert(module != nil, "imported module must not be nil")
	return ImportedModule{access: access, module: module}
}

// AccessPath returns the access path of the import
func (im ImportedModule) AccessPath() AccessPath {
	return im.access
}

// Module returns the imported module
func (im ImportedModule) Module() *ast.ModuleDecl {
	return im.module
}

// Equal returns whether both name the same module through precisely equal
// access paths, including locations
func (im ImportedModule) Equal(other ImportedModule) bool {
	return im.module == other.module && im.access.Equal(other.access)
}

// IsSameAs returns whether both name the same module through access paths
// naming the same declaration, ignoring locations
func (im ImportedModule) IsSameAs(other ImportedModule) bool {
	return im.module == other.module && im.access.IsSameAs(other.access)
}

func (im ImportedModule) String() string {
	if im.access.IsEmpty() {
		return im.module.String()
	}

	return im.module.String() + "." + im.access.String()
}

// Order arbitrarily orders imported modules for use as keys of ordered
// collections: by module ID, then by the storage backing the access path,
// then by access path length.  It is a total order but carries no meaning;
// in particular, semantically equal imports may order differently.
func Order(a, b ImportedModule) int {
	if c := cmp.Compare(a.module.ID(), b.module.ID()); c != 0 {
		return c
	}

	if c := cmp.Compare(a.access.dataAddr(), b.access.dataAddr()); c != 0 {
		return c
	}

	return cmp.Compare(a.access.Len(), b.access.Len())
}

// OrderLess reports whether a orders before b under Order
func OrderLess(a, b ImportedModule) bool {
	return Order(a, b) < 0
}

// RemoveDuplicates removes imports that name the same module through the same
// access path, ignoring locations.  It sorts imports in place and returns the
// shortened slice; the order of the input is not preserved.
func RemoveDuplicates(imports []ImportedModule) []ImportedModule {
	slices.SortFunc(imports, func(a, b ImportedModule) int {
		if c := cmp.Compare(a.module.ID(), b.module.ID()); c != 0 {
			return c
		}

		return a.access.Compare(b.access)
	})

	return slices.CompactFunc(imports, ImportedModule.IsSameAs)
}
