package imports

import (
	"math"

	"chaimport/ast"
	"chaimport/keymap"
)

// Reserved values used as the empty and tombstone keys of hash tables.  They
// can never be produced by analysis: module IDs are assigned upward from 1,
// and file names cannot contain NUL.
var (
	emptyModuleKey     = ast.NewModuleDecl(math.MaxUint64, ast.Identifier{}, "")
	tombstoneModuleKey = ast.NewModuleDecl(math.MaxUint64-1, ast.Identifier{}, "")
)

const (
	emptyFilenameKey     = "\x00empty"
	tombstoneFilenameKey = "\x00tombstone"
)

// OptionsInfo keys hash tables by import options
type OptionsInfo struct{}

var _ keymap.KeyInfo[ImportOptions] = OptionsInfo{}

// EmptyKey has every bit set, including Reserved
func (OptionsInfo) EmptyKey() ImportOptions {
	return OptionsFromRaw(math.MaxUint8)
}

// TombstoneKey has every bit but the lowest set, including Reserved
func (OptionsInfo) TombstoneKey() ImportOptions {
	return OptionsFromRaw(math.MaxUint8 - 1)
}

func (OptionsInfo) Hash(opts ImportOptions) uint64 {
	return keymap.HashUint64(uint64(opts.Raw()))
}

func (OptionsInfo) Equal(a, b ImportOptions) bool {
	return a.Raw() == b.Raw()
}

// ModuleDeclInfo keys hash tables by module identity
type ModuleDeclInfo struct{}

var _ keymap.KeyInfo[*ast.ModuleDecl] = ModuleDeclInfo{}

func (ModuleDeclInfo) EmptyKey() *ast.ModuleDecl {
	return emptyModuleKey
}

func (ModuleDeclInfo) TombstoneKey() *ast.ModuleDecl {
	return tombstoneModuleKey
}

func (ModuleDeclInfo) Hash(md *ast.ModuleDecl) uint64 {
	return keymap.HashUint64(md.ID())
}

func (ModuleDeclInfo) Equal(a, b *ast.ModuleDecl) bool {
	return a == b
}

// ImportedModuleInfo keys hash tables by imported module.  Access paths are
// compared by name, so imports written at different locations are the same
// key.
type ImportedModuleInfo struct{}

var _ keymap.KeyInfo[ImportedModule] = ImportedModuleInfo{}

func (ImportedModuleInfo) EmptyKey() ImportedModule {
	return ImportedModule{module: emptyModuleKey}
}

func (ImportedModuleInfo) TombstoneKey() ImportedModule {
	return ImportedModule{module: tombstoneModuleKey}
}

// Hash combines the access path length with the module identity
func (ImportedModuleInfo) Hash(im ImportedModule) uint64 {
	return keymap.CombineHash(keymap.HashUint64(uint64(im.access.Len())), keymap.HashUint64(im.module.ID()))
}

func (ImportedModuleInfo) Equal(a, b ImportedModule) bool {
	return a.IsSameAs(b)
}

// AttributedImportInfo keys hash tables by attributed import, using Module to
// hash and compare the module.  SPI groups take no part in hashing or
// equality: two imports differing only in SPI groups are the same key, and
// whoever stores them is responsible for merging the groups.
type AttributedImportInfo[M any] struct {
	Module keymap.KeyInfo[M]
}

func (info AttributedImportInfo[M]) EmptyKey() AttributedImport[M] {
	return NewAttributedImport(info.Module.EmptyKey(), OptionsInfo{}.EmptyKey(), emptyFilenameKey, nil)
}

func (info AttributedImportInfo[M]) TombstoneKey() AttributedImport[M] {
	return NewAttributedImport(info.Module.TombstoneKey(), OptionsInfo{}.TombstoneKey(), tombstoneFilenameKey, nil)
}

// Hash combines the module's hash, the options, and the filename
func (info AttributedImportInfo[M]) Hash(ai AttributedImport[M]) uint64 {
	return keymap.CombineHash(
		info.Module.Hash(ai.module),
		keymap.CombineHash(OptionsInfo{}.Hash(ai.options), keymap.HashString(ai.filename)),
	)
}

func (info AttributedImportInfo[M]) Equal(a, b AttributedImport[M]) bool {
	return info.Module.Equal(a.module, b.module) &&
		OptionsInfo{}.Equal(a.options, b.options) &&
		a.filename == b.filename
}
