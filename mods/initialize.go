package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chaimport/common"
	"chaimport/imports"

	"github.com/pelletier/go-toml"
)

// InitModule creates a new module with the given name at the given path
func InitModule(name, path string) error {
	// convert the module directory to the path to module file
	modFilePath := filepath.Join(path, common.ModuleFileName)

	// check to see if a module already exists
	_, err := os.Stat(modFilePath)
	if err == nil {
		return errors.New("module file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("module file error: %w", err)
	}

	if !IsValidIdentifier(name) {
		return errors.New("module name must be a valid identifier")
	}

	mf := &tomlModuleFile{
		Module: &tomlModule{
			Name:    name,
			Version: common.ChaiVersion,
		},
		Implicit: &tomlImplicitImport{
			Stdlib: imports.StdlibFull.String(),
		},
	}

	// encode and save module to file
	f, err := os.Create(modFilePath)
	if err != nil {
		return fmt.Errorf("error creating module file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(mf); err != nil {
		return fmt.Errorf("error encoding TOML: %w", err)
	}

	return nil
}
