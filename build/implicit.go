package build

import (
	"fmt"

	"chaimport/ast"
	"chaimport/common"
	"chaimport/imports"
	"chaimport/logging"
	"chaimport/mods"
)

// ResolveImplicitImports loads the modules described by info.  `name` is the
// name of the module being compiled.  The imports are returned in a fixed
// order: standard library, modules named by name, already-loaded modules, the
// underlying module, and finally the bridging header.  Modules that cannot be
// loaded are reported and skipped.
func ResolveImplicitImports(ctx *ast.Context, name ast.Identifier, info imports.ImplicitImportInfo, loader mods.Loader) []imports.ImplicitImport {
	var result []imports.ImplicitImport

	loadByName := func(modName ast.Identifier) (*ast.ModuleDecl, bool) {
		path := imports.NewBuilderFromName(modName, ast.SourceLoc{}).CopyModulePathTo(ctx)

		md, err := loader.LoadModule(path)
		if err != nil {
			logging.LogConfigError("Implicit Import", fmt.Sprintf("error loading module `%s`: %s", modName, err.Error()))
			return nil, false
		}

		return md, true
	}

	switch info.StdlibKind {
	case imports.StdlibBuiltin:
		if md, ok := loadByName(ctx.Intern(common.BuiltinModuleName)); ok {
			result = append(result, imports.ImplicitImport{Module: md})
		}
	case imports.StdlibFull:
		if md, ok := loadByName(ctx.Intern(common.StdlibModuleName)); ok {
			result = append(result, imports.ImplicitImport{Module: md})
		}
	}

	for _, modName := range info.ModuleNames {
		if md, ok := loadByName(modName); ok {
			result = append(result, imports.ImplicitImport{Module: md})
		}
	}

	for _, am := range info.AdditionalModules {
		var opts imports.ImportOptions
		if am.Exported {
			opts = opts.With(imports.Exported)
		}

		result = append(result, imports.ImplicitImport{Module: am.Module, Options: opts})
	}

	if !info.ShouldImportUnderlyingModule && info.BridgingHeaderPath == "" {
		return result
	}

	// the remaining imports come from the host-interop layer
	hl, ok := loader.(mods.HeaderLoader)
	if !ok {
		logging.LogConfigError("Implicit Import", "module loader cannot load host-interop modules")
		return result
	}

	if info.ShouldImportUnderlyingModule {
		if md, err := hl.LoadUnderlyingModule(name); err == nil {
			result = append(result, imports.ImplicitImport{Module: md, Options: imports.NewImportOptions(imports.Exported)})
		} else {
			logging.LogConfigError("Implicit Import", fmt.Sprintf("error loading underlying module of `%s`: %s", name, err.Error()))
		}
	}

	if info.BridgingHeaderPath != "" {
		if md, err := hl.LoadBridgingHeader(info.BridgingHeaderPath); err == nil {
			result = append(result, imports.ImplicitImport{Module: md, Options: imports.NewImportOptions(imports.Exported)})
		} else {
			logging.LogConfigError("Implicit Import", fmt.Sprintf("error loading bridging header: %s", err.Error()))
		}
	}

	return result
}
