package common

const (
	SrcFileExtension = ".chai"
	ModuleFileName   = "chai-mod.toml"
	ChaiVersion      = "0.1.0"
)

// Names of the modules that are imported implicitly by the compiler rather
// than by an import statement written in source.
const (
	BuiltinModuleName = "builtin"
	StdlibModuleName  = "core"

	// BridgingHeaderModuleName is the name given to the module synthesized for
	// a module's bridging header.
	BridgingHeaderModuleName = "__bridging"
)

// ChaiPath is the path to the Chai installation directory
var ChaiPath = ""
