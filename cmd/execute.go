package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chaimport/ast"
	"chaimport/build"
	"chaimport/common"
	"chaimport/generate"
	"chaimport/imports"
	"chaimport/logging"
	"chaimport/mods"

	"github.com/ComedicChimera/olive"
	"github.com/pterm/pterm"
)

// Execute runs the main `chaimp` application
func Execute() {
	defer logging.CatchInternalErrors()

	if !initChaiPath() {
		return
	}

	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("chaimp", "chaimp inspects and resolves the imports of Chai modules", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	resolveCmd := cli.AddSubcommand("resolve", "resolve the imports of a module", true)
	resolveCmd.AddPrimaryArg("module-path", "the path to the module directory", true)

	splitCmd := cli.AddSubcommand("split", "split an import path into module and access paths", true)
	splitCmd.AddPrimaryArg("import-path", "the dotted import path", true)
	kindArg := splitCmd.AddSelectorArg("kind", "k", "the kind of import", false, kindNames())
	kindArg.SetDefaultValue(imports.KindModule.String())

	autolinkCmd := cli.AddSubcommand("autolink", "generate the autolink manifest of a module", true)
	autolinkCmd.AddPrimaryArg("module-path", "the path to the module directory", true)
	autolinkCmd.AddStringArg("output", "o", "the path to write the manifest to", false)

	modCmd := cli.AddSubcommand("mod", "manage modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module", true)
	modInitCmd.AddPrimaryArg("module-name", "the name of the new module", true)

	cli.AddSubcommand("version", "print the Chai version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	loglevel := result.Arguments["loglevel"].(string)

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "resolve":
		execResolveCommand(subResult, loglevel)
	case "split":
		execSplitCommand(subResult)
	case "autolink":
		execAutolinkCommand(subResult, loglevel)
	case "mod":
		execModCommand(subResult)
	case "version":
		logging.PrintInfoMessage("Chai Version", common.ChaiVersion)
	}
}

// execResolveCommand executes the resolve subcommand and prints a table of the
// resolved imports
func execResolveCommand(result *olive.ArgParseResult, loglevel string) {
	moduleRelPath, _ := result.PrimaryArg()

	ctx := ast.NewContext()
	defer ctx.Release()

	_, resolved, ok := resolveModule(ctx, moduleRelPath, loglevel)
	if !ok {
		logging.LogFinished()
		return
	}

	data := pterm.TableData{{"Module", "Scope", "Options", "File", "SPI Groups"}}
	for _, desc := range resolved {
		groups := make([]string, len(desc.SPIGroups()))
		for i, group := range desc.SPIGroups() {
			groups[i] = group.Text()
		}

		data = append(data, []string{
			desc.Module().Module().String(),
			desc.Module().AccessPath().String(),
			desc.Options().String(),
			desc.Filename(),
			strings.Join(groups, ", "),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		logging.PrintErrorMessage("Display Error", err)
	}

	logging.LogFinished()
}

// execSplitCommand executes the split subcommand: it shows how an import path
// divides into module and access paths for the selected import kind
func execSplitCommand(result *olive.ArgParseResult) {
	text, _ := result.PrimaryArg()

	kind, err := imports.ParseImportKind(result.Arguments["kind"].(string))
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	ctx := ast.NewContext()
	defer ctx.Release()

	b := imports.ParseBuilder(ctx, text, '.')
	if b.IsEmpty() {
		logging.PrintErrorMessage("Import Error", errors.New("empty import path"))
		return
	}

	if kind.IsScoped() && b.Len() < 2 {
		logging.PrintErrorMessage("Import Error", fmt.Errorf("%s import `%s` must name a declaration inside a module", kind, text))
		return
	}

	um := imports.NewUnloadedModule(b.Path(), kind)

	data := pterm.TableData{
		{"Module Path", um.Module.String()},
		{"Top-Level Module", um.Module.TopLevelPath().String()},
		{"Submodule", fmt.Sprint(um.Module.HasSubmodule())},
		{"Access Path", um.Access.String()},
	}

	if err := pterm.DefaultTable.WithData(data).Render(); err != nil {
		logging.PrintErrorMessage("Display Error", err)
	}
}

// execAutolinkCommand executes the autolink subcommand and writes the manifest
// of the module's imports
func execAutolinkCommand(result *olive.ArgParseResult, loglevel string) {
	moduleRelPath, _ := result.PrimaryArg()

	ctx := ast.NewContext()
	defer ctx.Release()

	mod, resolved, ok := resolveModule(ctx, moduleRelPath, loglevel)
	if !ok {
		logging.LogFinished()
		return
	}

	outputPath := filepath.Join(mod.ModuleRoot, mod.Name+".autolink.ll")
	if outArgVal, ok := result.Arguments["output"]; ok {
		outputPath = outArgVal.(string)
	}

	g := generate.NewGenerator(mod.Name)
	if err := generate.WriteManifest(outputPath, g.Generate(resolved)); err != nil {
		logging.PrintErrorMessage("Output Error", err)
		return
	}

	logging.LogInfo("Autolink", fmt.Sprintf("wrote %d modules to %s", g.LinkedCount(), outputPath))
	logging.LogFinished()
}

// resolveModule loads the module at moduleRelPath and resolves its imports.
// The resolved imports are allocated in ctx and are only valid until the
// caller releases it.
func resolveModule(ctx *ast.Context, moduleRelPath, loglevel string) (*mods.ChaiModule, []imports.ImportedModuleDesc, bool) {
	modulePath, err := filepath.Abs(moduleRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return nil, nil, false
	}

	// initialize the logger before loading so module warnings are reported at
	// the requested level
	logging.Initialize(loglevel)

	mod, err := mods.LoadModule(modulePath)
	if err != nil {
		logging.PrintErrorMessage("Module Load Error", err)
		return nil, nil, false
	}

	loader := mods.NewDirLoader(ctx, mod)

	c := build.NewCompiler(ctx, mod, loader.Root(), loader)
	resolved, ok := c.ResolveImports()
	return mod, resolved, ok
}

// execModCommand executes the `mod` subcommand and its subcommands.  It handles
// all errors related to this command
func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()

	workDir, err := os.Getwd()
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	switch subcmdName {
	case "init":
		modName, _ := subResult.PrimaryArg()
		if err := mods.InitModule(modName, workDir); err != nil {
			logging.PrintErrorMessage("Module Init Error", err)
		}
	}
}

// -----------------------------------------------------------------------------

// kindNames returns the keywords of every import kind
func kindNames() []string {
	var names []string
	for kind := imports.KindModule; kind <= imports.KindFunc; kind++ {
		names = append(names, kind.String())
	}

	return names
}

// initChaiPath checks for a valid chai path and initializes its global value.
// The chai path is optional: without it, only local modules can be found.
func initChaiPath() bool {
	chaiPath, ok := os.LookupEnv("CHAI_PATH")
	if !ok {
		return true
	}

	finfo, err := os.Stat(chaiPath)
	if err != nil {
		logging.PrintErrorMessage("Config Error", fmt.Errorf("error loading chai_path: %w", err))
		return false
	}

	if !finfo.IsDir() {
		logging.PrintErrorMessage("Config Error", errors.New("error loading chai_path: must point to a directory"))
		return false
	}

	common.ChaiPath = chaiPath
	return true
}
