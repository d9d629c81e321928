package build

import (
	"path/filepath"
	"slices"

	"chaimport/ast"
	"chaimport/common"
	"chaimport/imports"
	"chaimport/logging"
	"chaimport/mods"
)

// ProcessImport validates a single import declaration, loads the module it
// names, and records the resulting import.  It returns the import and a
// boolean indicating whether or not it was successful.
func (c *Compiler) ProcessImport(decl *mods.ImportDecl) (imports.ImportedModuleDesc, bool) {
	kind, err := imports.ParseImportKind(decl.Kind)
	if err != nil {
		c.importError(decl, "%s", err.Error())
		return imports.ImportedModuleDesc{}, false
	}

	// the builder accepts anything so the names it splits out are checked here
	b := imports.ParseBuilder(c.ctx, decl.Path, '.')
	if b.IsEmpty() {
		c.importError(decl, "empty import path")
		return imports.ImportedModuleDesc{}, false
	}

	for i, elem := range b.Path().All() {
		if !mods.IsValidIdentifier(elem.Item.Text()) {
			c.importError(decl, "invalid name `%s` in import path `%s`", elem.Item, decl.Path)
			return imports.ImportedModuleDesc{}, false
		}

		b.SetAt(i, imports.Element{Item: elem.Item, Loc: declLoc(decl)})
	}

	if kind.IsScoped() && b.Len() < 2 {
		c.importError(decl, "%s import `%s` must name a declaration inside a module", kind, decl.Path)
		return imports.ImportedModuleDesc{}, false
	}

	opts, ok := c.importOptions(decl)
	if !ok {
		return imports.ImportedModuleDesc{}, false
	}

	groups := c.spiGroups(decl)
	if len(groups) > 0 {
		opts = opts.With(imports.SPIAccessControl)
	}

	path := b.CopyPathTo(c.ctx)
	unloaded := imports.NewAttributedImport(imports.NewUnloadedModule(path, kind), opts, decl.PrivateFile, groups)

	md, err := c.loader.LoadModule(unloaded.Module().Module)
	if err != nil {
		c.moduleError(decl, "unable to import `%s`: %s", unloaded.Module().Module, err.Error())
		return imports.ImportedModuleDesc{}, false
	}

	if md == c.rootDecl {
		c.moduleError(decl, "module `%s` cannot import itself", md)
		return imports.ImportedModuleDesc{}, false
	}

	desc := imports.MapImport(unloaded, func(um imports.UnloadedModule) imports.ImportedModule {
		return imports.NewImportedModule(um.Access, md)
	})

	c.addImport(desc, decl)
	return desc, true
}

// importOptions determines the options of an import declaration, reporting
// conflicting attributes
func (c *Compiler) importOptions(decl *mods.ImportDecl) (imports.ImportOptions, bool) {
	var opts imports.ImportOptions

	if decl.Exported && decl.ImplementationOnly {
		c.importError(decl, "import of `%s` cannot be both exported and implementation-only", decl.Path)
		return opts, false
	}

	if decl.Exported {
		opts = opts.With(imports.Exported)
	}

	if decl.Testable {
		opts = opts.With(imports.Testable)
	}

	if decl.ImplementationOnly {
		opts = opts.With(imports.ImplementationOnly)
	}

	if decl.PrivateFile != "" {
		if filepath.Ext(decl.PrivateFile) != common.SrcFileExtension {
			c.importError(decl, "private import of `%s` must name a source file, not `%s`", decl.Path, decl.PrivateFile)
			return opts, false
		}

		opts = opts.With(imports.PrivateImport)
	}

	return opts, true
}

// spiGroups interns the SPI groups of an import declaration.  Invalid and
// repeated groups are reported and dropped.
func (c *Compiler) spiGroups(decl *mods.ImportDecl) []ast.Identifier {
	var groups []ast.Identifier
	for _, name := range decl.SPIGroups {
		if !mods.IsValidIdentifier(name) {
			c.importError(decl, "invalid SPI group name `%s`", name)
			continue
		}

		group := c.ctx.Intern(name)
		if slices.Contains(groups, group) {
			logging.LogImportWarning(c.rootMod.ModFilePath, decl.Position, "SPI group `%s` listed more than once", name)
			continue
		}

		groups = append(groups, group)
	}

	return groups
}

// importError logs an error in an import declaration of the root module
func (c *Compiler) importError(decl *mods.ImportDecl, message string, args ...interface{}) {
	logging.LogImportError(c.rootMod.ModFilePath, decl.Position, message, args...)
}

// moduleError logs an error with the module named by an import declaration of
// the root module
func (c *Compiler) moduleError(decl *mods.ImportDecl, message string, args ...interface{}) {
	logging.LogModuleError(c.rootMod.ModFilePath, decl.Position, message, args...)
}

// declLoc converts the position of an import declaration into a source
// location.  Declarations without a position produce an invalid location.
func declLoc(decl *mods.ImportDecl) ast.SourceLoc {
	if decl.Position == nil {
		return ast.SourceLoc{}
	}

	return ast.NewSourceLoc(uint32(decl.Position.StartLn), uint32(decl.Position.StartCol+1))
}
