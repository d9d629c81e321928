package build

import (
	"fmt"
	"testing"

	"chaimport/ast"
	"chaimport/common"
	"chaimport/imports"
	"chaimport/logging"
	"chaimport/mods"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLoader serves modules from memory, keyed by dotted module path
type fakeLoader struct {
	ctx        *ast.Context
	modules    map[string]*ast.ModuleDecl
	headers    map[string]*ast.ModuleDecl
	underlying map[string]*ast.ModuleDecl
}

func newFakeLoader(ctx *ast.Context, names ...string) *fakeLoader {
	fl := &fakeLoader{
		ctx:        ctx,
		modules:    make(map[string]*ast.ModuleDecl),
		headers:    make(map[string]*ast.ModuleDecl),
		underlying: make(map[string]*ast.ModuleDecl),
	}

	for _, name := range names {
		fl.modules[name] = ctx.NewModuleDecl(ctx.Intern(name), "/lib/"+name)
	}

	return fl
}

func (fl *fakeLoader) LoadModule(path imports.ModulePath) (*ast.ModuleDecl, error) {
	if md, ok := fl.modules[path.String()]; ok {
		return md, nil
	}

	return nil, fmt.Errorf("`%s`: %w", path, mods.ErrModuleNotFound)
}

func (fl *fakeLoader) LoadBridgingHeader(path string) (*ast.ModuleDecl, error) {
	if md, ok := fl.headers[path]; ok {
		return md, nil
	}

	return nil, fmt.Errorf("no header at %s", path)
}

func (fl *fakeLoader) LoadUnderlyingModule(name ast.Identifier) (*ast.ModuleDecl, error) {
	if md, ok := fl.underlying[name.Text()]; ok {
		return md, nil
	}

	return nil, mods.ErrModuleNotFound
}

// plainLoader hides the host-interop methods of a loader
type plainLoader struct {
	mods.Loader
}

func newTestCompiler(fl *fakeLoader, root *mods.ChaiModule) *Compiler {
	rootDecl, ok := fl.modules[root.Name]
	if !ok {
		rootDecl = fl.ctx.NewModuleDecl(fl.ctx.Intern(root.Name), "/src/"+root.Name)
		fl.modules[root.Name] = rootDecl
	}

	return NewCompiler(fl.ctx, root, rootDecl, fl)
}

func errorMessages() []string {
	var msgs []string
	for _, msg := range logging.Messages() {
		switch v := msg.(type) {
		case *logging.CompileMessage:
			if v.IsError {
				msgs = append(msgs, v.Message)
			}
		case *logging.ConfigError:
			msgs = append(msgs, v.Message)
		}
	}

	return msgs
}

func TestProcessImport(t *testing.T) {
	logging.Initialize("silent")

	ctx := ast.NewContext()
	fl := newFakeLoader(ctx, "io", "net.http")
	c := newTestCompiler(fl, &mods.ChaiModule{Name: "app", ModFilePath: "app/chai-mod.toml"})

	desc, ok := c.ProcessImport(&mods.ImportDecl{
		Path:     "io.File",
		Kind:     "struct",
		Exported: true,
		Position: &logging.TextPosition{StartLn: 4, StartCol: 0, EndLn: 4, EndCol: 10},
	})
	require.True(t, ok)
	assert.Equal(t, fl.modules["io"], desc.Module().Module())
	assert.Equal(t, "File", desc.Module().AccessPath().String())
	assert.Equal(t, ast.NewSourceLoc(4, 1), desc.Module().AccessPath().Front().Loc)
	assert.Equal(t, imports.NewImportOptions(imports.Exported), desc.Options())

	desc, ok = c.ProcessImport(&mods.ImportDecl{Path: "net.http", SPIGroups: []string{"Internal", "Debug"}})
	require.True(t, ok)
	assert.Equal(t, fl.modules["net.http"], desc.Module().Module())
	assert.True(t, desc.Module().AccessPath().IsEmpty())
	assert.True(t, desc.Options().Contains(imports.SPIAccessControl))
	assert.Len(t, desc.SPIGroups(), 2)

	desc, ok = c.ProcessImport(&mods.ImportDecl{Path: "io", Testable: true, PrivateFile: "file" + common.SrcFileExtension})
	require.True(t, ok)
	assert.Equal(t, imports.NewImportOptions(imports.Testable, imports.PrivateImport), desc.Options())
	assert.Equal(t, "file.chai", desc.Filename())

	assert.True(t, logging.ShouldProceed())
	assert.Len(t, c.Imports(), 3)
}

func TestProcessImportErrors(t *testing.T) {
	ctx := ast.NewContext()
	fl := newFakeLoader(ctx, "io")

	for _, tc := range []struct {
		name string
		decl *mods.ImportDecl
		msg  string
		kind int
	}{
		{"unknown kind", &mods.ImportDecl{Path: "io.File", Kind: "macro"}, "unknown import kind `macro`", logging.LMKImport},
		{"empty path", &mods.ImportDecl{Path: ""}, "empty import path", logging.LMKImport},
		{"bad segment", &mods.ImportDecl{Path: "io..File"}, "invalid name `` in import path `io..File`", logging.LMKImport},
		{"scoped without decl", &mods.ImportDecl{Path: "io", Kind: "func"}, "func import `io` must name a declaration inside a module", logging.LMKImport},
		{"conflicting flags", &mods.ImportDecl{Path: "io", Exported: true, ImplementationOnly: true}, "import of `io` cannot be both exported and implementation-only", logging.LMKImport},
		{"private non-source", &mods.ImportDecl{Path: "io", PrivateFile: "notes.txt"}, "private import of `io` must name a source file, not `notes.txt`", logging.LMKImport},
		{"missing module", &mods.ImportDecl{Path: "json"}, "unable to import `json`: `json`: module not found", logging.LMKModule},
		{"self import", &mods.ImportDecl{Path: "app.Main", Kind: "func"}, "module `app` cannot import itself", logging.LMKModule},
	} {
		t.Run(tc.name, func(t *testing.T) {
			logging.Initialize("silent")

			c := newTestCompiler(fl, &mods.ChaiModule{Name: "app"})
			_, ok := c.ProcessImport(tc.decl)
			assert.False(t, ok)
			assert.Equal(t, []string{tc.msg}, errorMessages())
			assert.Empty(t, c.Imports())

			msgs := logging.Messages()
			require.Len(t, msgs, 1)
			cm, ok := msgs[0].(*logging.CompileMessage)
			require.True(t, ok)
			assert.Equal(t, tc.kind, cm.Kind)
		})
	}
}

func TestProcessImportSPIGroups(t *testing.T) {
	logging.Initialize("silent")

	ctx := ast.NewContext()
	fl := newFakeLoader(ctx, "io")
	c := newTestCompiler(fl, &mods.ChaiModule{Name: "app"})

	desc, ok := c.ProcessImport(&mods.ImportDecl{Path: "io", SPIGroups: []string{"Internal", "Internal", "not valid"}})
	require.True(t, ok, "bad groups are dropped, not fatal to the import")
	assert.Equal(t, []ast.Identifier{ctx.Intern("Internal")}, desc.SPIGroups())

	assert.Equal(t, []string{"invalid SPI group name `not valid`"}, errorMessages())
	assert.Len(t, logging.Messages(), 2)
}

func TestImportDeduplication(t *testing.T) {
	logging.Initialize("silent")

	ctx := ast.NewContext()
	fl := newFakeLoader(ctx, "io", "net")
	c := newTestCompiler(fl, &mods.ChaiModule{Name: "app"})

	for _, decl := range []*mods.ImportDecl{
		{Path: "io.File", Kind: "struct", Position: &logging.TextPosition{StartLn: 1}},
		{Path: "io.File", Kind: "class", Position: &logging.TextPosition{StartLn: 5}},
		{Path: "io.Reader", Kind: "protocol"},
		{Path: "net", SPIGroups: []string{"Internal"}},
		{Path: "net", SPIGroups: []string{"Debug", "Internal"}},
		{Path: "net"},
	} {
		_, ok := c.ProcessImport(decl)
		require.True(t, ok, decl.Path)
	}

	resolved := c.Imports()
	require.Len(t, resolved, 4)

	assert.Equal(t, "io.File", resolved[0].Module().String())
	assert.Equal(t, ast.NewSourceLoc(1, 1), resolved[0].Module().AccessPath().Front().Loc, "the first import is kept")
	assert.Equal(t, "io.Reader", resolved[1].Module().String())
	assert.Equal(t, []ast.Identifier{ctx.Intern("Internal"), ctx.Intern("Debug")}, resolved[2].SPIGroups())
	assert.True(t, resolved[3].Options().IsEmpty())

	// only the redundant `io.File` import is worth a warning
	assert.True(t, logging.ShouldProceed())
	require.Len(t, logging.Messages(), 1)

	unique := c.UniqueModules()
	assert.Len(t, unique, 3)
}

func TestResolveImports(t *testing.T) {
	logging.Initialize("silent")

	ctx := ast.NewContext()
	fl := newFakeLoader(ctx, common.StdlibModuleName, "io", "fmt")
	fl.headers["include/app.h"] = ctx.NewModuleDecl(ctx.Intern(common.BridgingHeaderModuleName), "/src/app/include/app.h")
	fl.underlying["app"] = ctx.NewModuleDecl(ctx.Intern("app"), "/src/app/include")

	root := &mods.ChaiModule{
		Name: "app",
		Implicit: mods.ImplicitImportConfig{
			Stdlib:           "stdlib",
			UnderlyingModule: true,
			BridgingHeader:   "include/app.h",
			Modules:          []string{"fmt"},
		},
		Imports: []*mods.ImportDecl{
			{Path: "io"},
			{Path: "fmt"},
		},
	}

	resolved, ok := newTestCompiler(fl, root).ResolveImports()
	require.True(t, ok)

	var got []string
	for _, desc := range resolved {
		got = append(got, fmt.Sprintf("%s %s", desc.Module(), desc.Options()))
	}

	assert.Equal(t, []string{
		"core none",
		"fmt none",
		"app exported",
		"__bridging exported",
		"io none",
	}, got)

	// the explicit `fmt` import duplicates the implicit one
	require.Len(t, logging.Messages(), 1)
}

func TestResolveImportsBadConfig(t *testing.T) {
	logging.Initialize("silent")

	ctx := ast.NewContext()
	fl := newFakeLoader(ctx)
	root := &mods.ChaiModule{Name: "app", Implicit: mods.ImplicitImportConfig{Stdlib: "all"}}

	_, ok := newTestCompiler(fl, root).ResolveImports()
	assert.False(t, ok)
}

func TestResolveImplicitImports(t *testing.T) {
	ctx := ast.NewContext()
	fl := newFakeLoader(ctx, common.BuiltinModuleName, common.StdlibModuleName, "io")
	extra := ctx.NewModuleDecl(ctx.Intern("generated"), "")
	fl.underlying["app"] = ctx.NewModuleDecl(ctx.Intern("app"), "/src/app/include")
	fl.headers["app.h"] = ctx.NewModuleDecl(ctx.Intern(common.BridgingHeaderModuleName), "/src/app/app.h")
	app := ctx.Intern("app")

	exported := imports.NewImportOptions(imports.Exported)

	t.Run("zero value imports nothing", func(t *testing.T) {
		logging.Initialize("silent")

		assert.Empty(t, ResolveImplicitImports(ctx, app, imports.ImplicitImportInfo{}, fl))
		assert.True(t, logging.ShouldProceed())
	})

	t.Run("builtin", func(t *testing.T) {
		logging.Initialize("silent")

		got := ResolveImplicitImports(ctx, app, imports.ImplicitImportInfo{StdlibKind: imports.StdlibBuiltin}, fl)
		require.Len(t, got, 1)
		assert.Same(t, fl.modules[common.BuiltinModuleName], got[0].Module)
	})

	t.Run("ordering", func(t *testing.T) {
		logging.Initialize("silent")

		info := imports.ImplicitImportInfo{
			StdlibKind:                   imports.StdlibFull,
			ShouldImportUnderlyingModule: true,
			BridgingHeaderPath:           "app.h",
			ModuleNames:                  []ast.Identifier{ctx.Intern("io")},
			AdditionalModules:            []imports.AdditionalModule{{Module: extra, Exported: true}},
		}

		got := ResolveImplicitImports(ctx, app, info, fl)
		want := []imports.ImplicitImport{
			{Module: fl.modules[common.StdlibModuleName]},
			{Module: fl.modules["io"]},
			{Module: extra, Options: exported},
			{Module: fl.underlying["app"], Options: exported},
			{Module: fl.headers["app.h"], Options: exported},
		}

		require.Len(t, got, len(want))
		for i := range want {
			assert.True(t, want[i].Equal(got[i]), "import %d: want %s, got %s", i, want[i], got[i])
		}
		assert.True(t, logging.ShouldProceed())
	})

	t.Run("failures are skipped", func(t *testing.T) {
		logging.Initialize("silent")

		info := imports.ImplicitImportInfo{
			ModuleNames:        []ast.Identifier{ctx.Intern("missing"), ctx.Intern("io")},
			BridgingHeaderPath: "other.h",
		}

		got := ResolveImplicitImports(ctx, app, info, fl)
		require.Len(t, got, 1)
		assert.Same(t, fl.modules["io"], got[0].Module)
		assert.Equal(t, 2, logging.ErrorCount())
	})

	t.Run("loader without host interop", func(t *testing.T) {
		logging.Initialize("silent")

		info := imports.ImplicitImportInfo{ShouldImportUnderlyingModule: true}
		assert.Empty(t, ResolveImplicitImports(ctx, app, info, plainLoader{fl}))
		assert.Equal(t, []string{"module loader cannot load host-interop modules"}, errorMessages())
	})
}
