package imports

import (
	"testing"

	"chaimport/ast"
	"chaimport/keymap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsInfo(t *testing.T) {
	t.Parallel()

	info := OptionsInfo{}
	empty, tombstone := info.EmptyKey(), info.TombstoneKey()

	assert.True(t, empty.Contains(Reserved))
	assert.True(t, tombstone.Contains(Reserved))
	assert.False(t, info.Equal(empty, tombstone))

	m := keymap.New[ImportOptions, string](info)
	for raw := range uint8(0x20) {
		require.True(t, m.Insert(OptionsFromRaw(raw), OptionsFromRaw(raw).String()))
	}

	assert.Equal(t, 0x20, m.Len())
	got, ok := m.Get(NewImportOptions(Exported, Testable))
	require.True(t, ok)
	assert.Equal(t, "exported|testable", got)
}

func TestModuleDeclInfo(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()
	info := ModuleDeclInfo{}

	io := ctx.NewModuleDecl(ctx.Intern("io"), "/io")
	twin := ast.NewModuleDecl(io.ID(), io.Name(), io.Path())

	assert.True(t, info.Equal(io, io))
	assert.False(t, info.Equal(io, twin), "module identity is the handle")
	assert.False(t, info.Equal(info.EmptyKey(), io))

	m := keymap.New[*ast.ModuleDecl, int](info)
	m.Put(io, 1)
	m.Put(twin, 2)
	assert.Equal(t, 2, m.Len())
}

func TestAttributedImportInfo(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()
	m := ctx.NewModuleDecl(ctx.Intern("M"), "/m")
	info := AttributedImportInfo[ImportedModule]{Module: ImportedModuleInfo{}}

	desc := func(col uint32, opts ImportOptions, filename string, spi ...string) ImportedModuleDesc {
		groups := make([]ast.Identifier, len(spi))
		for i, name := range spi {
			groups[i] = ctx.Intern(name)
		}

		return NewAttributedImport(NewImportedModule(NewAccessPath(elems(ctx, col, "A")), m), opts, filename, groups)
	}

	base := desc(1, NewImportOptions(Exported), "")

	t.Run("locations ignored", func(t *testing.T) {
		t.Parallel()

		moved := desc(50, NewImportOptions(Exported), "")
		assert.Equal(t, info.Hash(base), info.Hash(moved))
		assert.True(t, info.Equal(base, moved))
	})

	t.Run("spi groups ignored", func(t *testing.T) {
		t.Parallel()

		spi := desc(1, NewImportOptions(Exported), "", "Internal")
		assert.Equal(t, info.Hash(base), info.Hash(spi))
		assert.True(t, info.Equal(base, spi))
	})

	t.Run("options and filename distinguish", func(t *testing.T) {
		t.Parallel()

		testable := desc(1, NewImportOptions(Testable), "")
		assert.False(t, info.Equal(base, testable))
		assert.NotEqual(t, info.Hash(base), info.Hash(testable))

		private := desc(1, NewImportOptions(PrivateImport), "a.chai")
		otherFile := desc(1, NewImportOptions(PrivateImport), "b.chai")
		assert.False(t, info.Equal(private, otherFile))
	})

	t.Run("sentinels", func(t *testing.T) {
		t.Parallel()

		empty, tombstone := info.EmptyKey(), info.TombstoneKey()
		assert.False(t, info.Equal(empty, tombstone))
		assert.False(t, info.Equal(empty, base))
		assert.False(t, info.Equal(tombstone, base))
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		table := keymap.New[ImportedModuleDesc, int](info)
		assert.True(t, table.Insert(base, 0))
		assert.False(t, table.Insert(desc(7, NewImportOptions(Exported), "", "Internal"), 1))

		stored, idx, ok := table.Lookup(desc(9, NewImportOptions(Exported), ""))
		require.True(t, ok)
		assert.Equal(t, 0, idx)
		assert.True(t, stored.Module().AccessPath().Equal(base.Module().AccessPath()))
	})
}
