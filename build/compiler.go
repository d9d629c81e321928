package build

import (
	"fmt"
	"slices"

	"chaimport/ast"
	"chaimport/imports"
	"chaimport/keymap"
	"chaimport/logging"
	"chaimport/mods"
)

// Compiler is the data structure responsible for maintaining the state of
// import resolution for a single root module
type Compiler struct {
	// ctx is the compilation context that owns interned names and copied
	// import paths
	ctx *ast.Context

	// rootMod is the root module whose imports are being resolved
	rootMod *mods.ChaiModule

	// rootDecl is the handle of the root module
	rootDecl *ast.ModuleDecl

	// loader loads imported modules
	loader mods.Loader

	// importTable maps each resolved import to its index in resolved.  Imports
	// that differ only by location or SPI groups share an entry.
	importTable *keymap.Map[imports.ImportedModuleDesc, int]

	// resolved is the list of resolved imports in the order they were first
	// encountered
	resolved []imports.ImportedModuleDesc
}

// NewCompiler creates a new compiler for a given root module.  `rootDecl` is
// the handle the loader uses for the root module: importing it is an error.
func NewCompiler(ctx *ast.Context, rootMod *mods.ChaiModule, rootDecl *ast.ModuleDecl, loader mods.Loader) *Compiler {
	return &Compiler{
		ctx:      ctx,
		rootMod:  rootMod,
		rootDecl: rootDecl,
		loader:   loader,
		importTable: keymap.New[imports.ImportedModuleDesc, int](
			imports.AttributedImportInfo[imports.ImportedModule]{Module: imports.ImportedModuleInfo{}},
		),
	}
}

// ResolveImports resolves the implicit imports of the root module followed by
// every import it declares.  It handles all errors appropriately and returns
// the resolved imports along with a boolean indicating whether or not
// resolution was successful.
func (c *Compiler) ResolveImports() ([]imports.ImportedModuleDesc, bool) {
	info, err := c.rootMod.ImplicitImportInfo(c.ctx)
	if err != nil {
		logging.LogConfigError("Module", err.Error())
		return nil, false
	}

	for _, ii := range ResolveImplicitImports(c.ctx, c.rootDecl.Name(), info, c.loader) {
		c.addImport(ii.Desc(), nil)
	}

	for _, decl := range c.rootMod.Imports {
		c.ProcessImport(decl)
	}

	logging.LogInfo("Imports", fmt.Sprintf("resolved %d imports of module `%s`", len(c.resolved), c.rootMod.Name))

	return c.resolved, logging.ShouldProceed()
}

// Imports returns the imports resolved so far
func (c *Compiler) Imports() []imports.ImportedModuleDesc {
	return c.resolved
}

// UniqueModules returns every module imported along with the declaration it is
// scoped to, with duplicates removed.  The order is unspecified.
func (c *Compiler) UniqueModules() []imports.ImportedModule {
	modules := make([]imports.ImportedModule, len(c.resolved))
	for i, desc := range c.resolved {
		modules[i] = desc.Module()
	}

	return imports.RemoveDuplicates(modules)
}

// addImport records a resolved import.  If an equivalent import has already
// been recorded, the SPI groups of the new import are merged into it.  `decl`
// is the declaration that produced the import or nil for implicit imports.
func (c *Compiler) addImport(desc imports.ImportedModuleDesc, decl *mods.ImportDecl) {
	if c.importTable.Insert(desc, len(c.resolved)) {
		c.resolved = append(c.resolved, desc)
		return
	}

	idx, _ := c.importTable.Get(desc)
	existing := c.resolved[idx]

	merged := slices.Clone(existing.SPIGroups())
	for _, group := range desc.SPIGroups() {
		if !slices.Contains(merged, group) {
			merged = append(merged, group)
		}
	}

	if len(merged) > len(existing.SPIGroups()) {
		c.resolved[idx] = existing.WithSPIGroups(merged)
	} else if decl != nil {
		logging.LogImportWarning(
			c.rootMod.ModFilePath,
			decl.Position,
			"module `%s` is imported more than once",
			desc.Module(),
		)
	}
}
