package imports

import (
	"chaimport/ast"
	"chaimport/logging"
)

// AttributedImport is a reference to a module decorated with the attributes of
// the import that produced it.  M is the representation of the module: an
// UnloadedModule before the module is loaded, an ImportedModule after.
//
// An AttributedImport is immutable after construction.
type AttributedImport[M any] struct {
	module  M
	options ImportOptions

	// filename is the file whose private declarations are imported; only set
	// for private imports
	filename string

	// spiGroups names the SPI groups the import grants access to
	spiGroups []ast.Identifier
}

// ImportedModuleDesc is an attributed import of a loaded module
type ImportedModuleDesc = AttributedImport[ImportedModule]

// NewAttributedImport creates an attributed import.  An import cannot be both
// exported and implementation-only unless it is a reserved sentinel value.
func NewAttributedImport[M any](module M, options ImportOptions, filename string, spiGroups []ast.Identifier) AttributedImport[M] {
	logging.Assert(
		!(options.Contains(Exported) && options.Contains(ImplementationOnly)) || options.Contains(Reserved),
		"import cannot be both exported and implementation-only",
	)

	return AttributedImport[M]{
		module:    module,
		options:   options,
		filename:  filename,
		spiGroups: spiGroups,
	}
}

// Module returns the imported module
func (ai AttributedImport[M]) Module() M {
	return ai.module
}

// Options returns the flags of the import
func (ai AttributedImport[M]) Options() ImportOptions {
	return ai.options
}

// Filename returns the file of a private import
func (ai AttributedImport[M]) Filename() string {
	return ai.filename
}

// SPIGroups returns the SPI groups the import grants access to.  The slice
// must not be modified.
func (ai AttributedImport[M]) SPIGroups() []ast.Identifier {
	return ai.spiGroups
}

// WithSPIGroups returns a copy of the import granting access to the given
// groups instead
func (ai AttributedImport[M]) WithSPIGroups(groups []ast.Identifier) AttributedImport[M] {
	ai.spiGroups = groups
	return ai
}

// MapImport converts the module of an attributed import while keeping its
// attributes.  It is used to turn an import of an unloaded module into an
// import of the loaded one.
func MapImport[M, N any](ai AttributedImport[M], f func(M) N) AttributedImport[N] {
	return AttributedImport[N]{
		module:    f(ai.module),
		options:   ai.options,
		filename:  ai.filename,
		spiGroups: ai.spiGroups,
	}
}

// -----------------------------------------------------------------------------

// UnloadedModule is an import that has been split into module and access paths
// but whose module has not been loaded yet
type UnloadedModule struct {
	Module ModulePath
	Access AccessPath
}

// NewUnloadedModule splits path according to kind
func NewUnloadedModule(path Path, kind ImportKind) UnloadedModule {
	return UnloadedModule{
		Module: path.ModulePathFor(kind),
		Access: path.AccessPathFor(kind),
	}
}

func (um UnloadedModule) String() string {
	if um.Access.IsEmpty() {
		return um.Module.String()
	}

	return um.Module.String() + "." + um.Access.String()
}
