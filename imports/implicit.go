package imports

import (
	"fmt"

	"chaimport/ast"
)

// ImplicitStdlibKind is the kind of standard library imported implicitly
type ImplicitStdlibKind uint8

// Enumeration of implicit stdlib kinds.
const (
	// StdlibNone imports no standard library.
	StdlibNone ImplicitStdlibKind = iota

	// StdlibBuiltin imports only the builtin module.
	StdlibBuiltin

	// StdlibFull imports the full standard library.
	StdlibFull
)

var stdlibKindNames = [...]string{
	StdlibNone:    "none",
	StdlibBuiltin: "builtin",
	StdlibFull:    "stdlib",
}

func (k ImplicitStdlibKind) String() string {
	if int(k) < len(stdlibKindNames) {
		return stdlibKindNames[k]
	}

	return fmt.Sprintf("ImplicitStdlibKind(%d)", k)
}

// ParseImplicitStdlibKind converts the name of a stdlib kind into its value.
// The empty string means no standard library.
func ParseImplicitStdlibKind(name string) (ImplicitStdlibKind, error) {
	if name == "" {
		return StdlibNone, nil
	}

	for kind, kindName := range stdlibKindNames {
		if kindName == name {
			return ImplicitStdlibKind(kind), nil
		}
	}

	return StdlibNone, fmt.Errorf("unknown standard library kind `%s`", name)
}

// AdditionalModule is an already-loaded module to import implicitly
type AdditionalModule struct {
	Module   *ast.ModuleDecl
	Exported bool
}

// ImplicitImportInfo describes the imports the compiler synthesizes for a
// module rather than reading them from source.  It is created once when a
// module's compilation is set up and is read-only afterward.  The zero value
// imports nothing.
type ImplicitImportInfo struct {
	// StdlibKind is the standard library to import
	StdlibKind ImplicitStdlibKind

	// ShouldImportUnderlyingModule indicates whether to import the
	// host-interop module of the same name as the module being compiled
	ShouldImportUnderlyingModule bool

	// BridgingHeaderPath is the path of the module's bridging header, empty if
	// there is none
	BridgingHeaderPath string

	// ModuleNames are the names of additional modules to import
	ModuleNames []ast.Identifier

	// AdditionalModules are modules that are already loaded and should be
	// imported directly
	AdditionalModules []AdditionalModule
}

// ImplicitImport is a module that has been imported implicitly
type ImplicitImport struct {
	Module  *ast.ModuleDecl
	Options ImportOptions
}

// Equal returns whether both import the same module with the same options
func (ii ImplicitImport) Equal(other ImplicitImport) bool {
	return ii.Module == other.Module && ii.Options.Raw() == other.Options.Raw()
}

func (ii ImplicitImport) String() string {
	if ii.Options.IsEmpty() {
		return ii.Module.String()
	}

	return fmt.Sprintf("%s [%s]", ii.Module, ii.Options)
}

// Desc converts the implicit import into an unscoped attributed import
func (ii ImplicitImport) Desc() ImportedModuleDesc {
	return NewAttributedImport(NewImportedModule(EmptyAccessPath(), ii.Module), ii.Options, "", nil)
}
