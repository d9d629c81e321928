package mods

import (
	"fmt"

	"chaimport/ast"
	"chaimport/imports"
	"chaimport/logging"
)

// ChaiModule represents a module -- specifically, the module configuration
// read from its module file.
type ChaiModule struct {
	// Name is the name of the module
	Name string

	// ID is the unique ID of the module generated from its root path
	ID uint64

	// ModuleRoot is the path to the root directory of the current module
	ModuleRoot string

	// ModFilePath is the path to the module file itself
	ModFilePath string

	// LocalImportDirs is a list of directories in which to check for imports
	// (outside of the current module and global import directories).  These
	// are absolute paths.
	LocalImportDirs []string

	// Submodules lists the dotted names of the module's submodules.  If it is
	// empty, every sub-directory of the module root is a submodule.
	Submodules []string

	// Implicit describes the imports the compiler adds on the module's behalf
	Implicit ImplicitImportConfig

	// Imports is the list of import declarations of the module in the order
	// they were declared
	Imports []*ImportDecl
}

// ImplicitImportConfig is the `[implicit-imports]` section of a module file
type ImplicitImportConfig struct {
	// Stdlib is the name of the standard library kind to import: `none`,
	// `builtin`, or `stdlib`
	Stdlib string

	// UnderlyingModule indicates whether the module's host-interop module
	// should be imported
	UnderlyingModule bool

	// BridgingHeader is the path to the module's bridging header relative to
	// the module root
	BridgingHeader string

	// Modules are the names of additional modules to import
	Modules []string
}

// ImportDecl is a single import declared in a module file
type ImportDecl struct {
	// Path is the dotted path of the import as written
	Path string

	// Kind is the keyword of the import kind; empty for a module import
	Kind string

	Exported           bool
	Testable           bool
	ImplementationOnly bool

	// PrivateFile is the file whose private declarations are imported; empty
	// if the import is not private
	PrivateFile string

	// SPIGroups names the SPI groups the import grants access to
	SPIGroups []string

	// Position is the position of the declaration in the module file
	Position *logging.TextPosition
}

// ImplicitImportInfo converts the module's implicit import configuration into
// the form the compiler consumes, interning names in ctx.  Extra modules are
// always imported by name: modules that are already loaded are for compilers
// that synthesize modules and cannot be named in a module file.
func (m *ChaiModule) ImplicitImportInfo(ctx *ast.Context) (imports.ImplicitImportInfo, error) {
	kind, err := imports.ParseImplicitStdlibKind(m.Implicit.Stdlib)
	if err != nil {
		return imports.ImplicitImportInfo{}, fmt.Errorf("module `%s`: %w", m.Name, err)
	}

	info := imports.ImplicitImportInfo{
		StdlibKind:                   kind,
		ShouldImportUnderlyingModule: m.Implicit.UnderlyingModule,
		BridgingHeaderPath:           m.Implicit.BridgingHeader,
	}

	for _, name := range m.Implicit.Modules {
		info.ModuleNames = append(info.ModuleNames, ctx.Intern(name))
	}

	return info, nil
}

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (module name, import path segment, SPI group, etc.)
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
