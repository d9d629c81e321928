package generate

import (
	"fmt"
	"os"

	"chaimport/ast"
	"chaimport/common"
	"chaimport/imports"
	"chaimport/keymap"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

// Generator builds the autolink manifest of a module: an LLVM module holding
// the name of every module the root module must be linked against.  The
// manifest is emitted as LLVM IR source text so it can be passed to `llc`
// along with the rest of the build output.
type Generator struct {
	// modName is the name of the module being compiled
	modName string

	// llModule is the LLVM module being built by this generator
	llModule *ir.Module

	// linked is the set of modules already added to the manifest
	linked *keymap.Set[*ast.ModuleDecl]

	// globalCounter is used to give each entry a unique global name
	globalCounter int
}

// NewGenerator creates a new generator for the module with the given name
func NewGenerator(modName string) *Generator {
	m := ir.NewModule()
	m.SourceFilename = modName

	return &Generator{
		modName:  modName,
		llModule: m,
		linked:   keymap.NewSet[*ast.ModuleDecl](imports.ModuleDeclInfo{}),
	}
}

// Generate adds an entry for each module imported by descs and returns the
// manifest.  Each module appears once regardless of how many imports name it.
// Bridging headers are compiled into the module itself and are not linked.
func (g *Generator) Generate(descs []imports.ImportedModuleDesc) *ir.Module {
	for _, desc := range descs {
		md := desc.Module().Module()
		if md.Name().Text() == common.BridgingHeaderModuleName {
			continue
		}

		if !g.linked.Insert(md) {
			continue
		}

		entry := g.llModule.NewGlobalDef(
			fmt.Sprintf("__autolink.%d", g.globalCounter),
			constant.NewCharArrayFromString(md.Name().Text()+"\x00"),
		)
		entry.Linkage = enum.LinkagePrivate
		entry.Immutable = true
		g.globalCounter++
	}

	count := g.llModule.NewGlobalDef("__autolink.count", constant.NewInt(types.I64, int64(g.globalCounter)))
	count.Linkage = enum.LinkagePrivate
	count.Immutable = true

	return g.llModule
}

// LinkedCount returns the number of modules in the manifest
func (g *Generator) LinkedCount() int {
	return g.linked.Len()
}

// WriteManifest writes the LLVM IR source text of the manifest to path
func WriteManifest(path string, m *ir.Module) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create autolink manifest: %w", err)
	}
	defer file.Close()

	if _, err := m.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write autolink manifest: %w", err)
	}

	return nil
}
