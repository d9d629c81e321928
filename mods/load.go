package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chaimport/common"
	"chaimport/imports"
	"chaimport/logging"

	"github.com/pelletier/go-toml"
)

// tomlModuleFile represents the module file as it is encoded in TOML
type tomlModuleFile struct {
	Module   *tomlModule         `toml:"module"`
	Implicit *tomlImplicitImport `toml:"implicit-imports,omitempty"`
	Imports  []*tomlImport       `toml:"import,omitempty"`
}

// tomlModule represents a Chai module as it is encoded in TOML
type tomlModule struct {
	Name            string   `toml:"name"`
	Version         string   `toml:"chai-version"`
	LocalImportDirs []string `toml:"import-dirs,omitempty"`
	Submodules      []string `toml:"submodules,omitempty"`
}

// tomlImplicitImport represents the implicit imports section as it is encoded
// in TOML
type tomlImplicitImport struct {
	Stdlib           string   `toml:"stdlib"`
	UnderlyingModule bool     `toml:"underlying-module"`
	BridgingHeader   string   `toml:"bridging-header,omitempty"`
	Modules          []string `toml:"modules,omitempty"`
}

// tomlImport represents an import declaration as it is encoded in TOML
type tomlImport struct {
	Path               string   `toml:"path"`
	Kind               string   `toml:"kind,omitempty"`
	Exported           bool     `toml:"exported"`
	Testable           bool     `toml:"testable"`
	ImplementationOnly bool     `toml:"implementation-only"`
	PrivateFile        string   `toml:"private-file,omitempty"`
	SPI                []string `toml:"spi,omitempty"`
}

// LoadModule loads and validates a module.  `path` is the path to the module
// directory.  Problems that do not prevent the module from being used are
// logged as configuration warnings.
func LoadModule(path string) (*ChaiModule, error) {
	abspath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	mfPath := filepath.Join(abspath, common.ModuleFileName)
	buff, err := os.ReadFile(mfPath)
	if err != nil {
		return nil, fmt.Errorf("error reading module file: %w", err)
	}

	return loadModuleBytes(abspath, mfPath, buff)
}

// loadModuleBytes loads a module from the contents of its module file
func loadModuleBytes(abspath, mfPath string, buff []byte) (*ChaiModule, error) {
	// the tree is kept around so that positions of import declarations can be
	// reported in diagnostics
	tree, err := toml.LoadBytes(buff)
	if err != nil {
		return nil, fmt.Errorf("error parsing module file %s: %w", mfPath, err)
	}

	tmf := &tomlModuleFile{}
	if err := tree.Unmarshal(tmf); err != nil {
		return nil, fmt.Errorf("error decoding module file %s: %w", mfPath, err)
	}

	if tmf.Module == nil {
		return nil, fmt.Errorf("missing [module] section in %s", mfPath)
	}

	if err := validateModule(abspath, tmf.Module); err != nil {
		return nil, err
	}

	chaiMod := &ChaiModule{
		Name:        tmf.Module.Name,
		ID:          common.GenerateIDFromPath(abspath),
		ModuleRoot:  abspath,
		ModFilePath: mfPath,
		Submodules:  tmf.Module.Submodules,
	}

	// local import directories are relative to the module root
	for _, dir := range tmf.Module.LocalImportDirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(abspath, dir)
		}

		chaiMod.LocalImportDirs = append(chaiMod.LocalImportDirs, filepath.Clean(dir))
	}

	if tmf.Implicit != nil {
		if _, err := imports.ParseImplicitStdlibKind(tmf.Implicit.Stdlib); err != nil {
			return nil, fmt.Errorf("module `%s`: %w", chaiMod.Name, err)
		}

		chaiMod.Implicit = ImplicitImportConfig{
			Stdlib:           tmf.Implicit.Stdlib,
			UnderlyingModule: tmf.Implicit.UnderlyingModule,
			BridgingHeader:   tmf.Implicit.BridgingHeader,
			Modules:          tmf.Implicit.Modules,
		}
	}

	positions := importPositions(tree)
	for i, ti := range tmf.Imports {
		decl := &ImportDecl{
			Path:               ti.Path,
			Kind:               ti.Kind,
			Exported:           ti.Exported,
			Testable:           ti.Testable,
			ImplementationOnly: ti.ImplementationOnly,
			PrivateFile:        ti.PrivateFile,
			SPIGroups:          ti.SPI,
		}

		if i < len(positions) {
			decl.Position = positions[i]
		}

		chaiMod.Imports = append(chaiMod.Imports, decl)
	}

	return chaiMod, nil
}

// importPositions returns the positions of the `[[import]]` tables of a module
// file in the order they were declared
func importPositions(tree *toml.Tree) []*logging.TextPosition {
	tables, ok := tree.Get("import").([]*toml.Tree)
	if !ok {
		return nil
	}

	positions := make([]*logging.TextPosition, len(tables))
	for i, table := range tables {
		pos := table.Position()
		positions[i] = &logging.TextPosition{
			StartLn:  pos.Line,
			StartCol: pos.Col - 1,
			EndLn:    pos.Line,
			EndCol:   pos.Col - 1 + len("[[import]]"),
		}
	}

	return positions
}

// validateModule checks that the top level module contents are valid
func validateModule(abspath string, mod *tomlModule) error {
	if mod.Name == "" {
		return fmt.Errorf("missing module name for module at %s", abspath)
	}

	if !IsValidIdentifier(mod.Name) {
		return errors.New("module name must be a valid identifier")
	}

	for _, sub := range mod.Submodules {
		for _, segment := range splitDotted(sub) {
			if !IsValidIdentifier(segment) {
				return fmt.Errorf("invalid submodule name `%s` in module `%s`", sub, mod.Name)
			}
		}
	}

	if mod.Version != common.ChaiVersion {
		logging.LogConfigWarning(
			"Module",
			fmt.Sprintf("version of module `%s` (v%s) does not match current chai version (v%s)", mod.Name, mod.Version, common.ChaiVersion),
		)
	}

	return nil
}
