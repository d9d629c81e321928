package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"chaimport/ast"
	"chaimport/common"
	"chaimport/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModFile(t *testing.T, dir, name, extra string) string {
	t.Helper()

	modDir := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(modDir, 0o755))

	contents := "[module]\nname = \"" + name + "\"\nchai-version = \"" + common.ChaiVersion + "\"\n" + extra
	require.NoError(t, os.WriteFile(filepath.Join(modDir, common.ModuleFileName), []byte(contents), 0o644))
	return modDir
}

func TestResolveModuleUsesCallerContext(t *testing.T) {
	dir := t.TempDir()
	appDir := writeModFile(t, dir, "app", "\n[[import]]\npath = \"io\"\n")
	writeModFile(t, dir, "io", "")

	ctx := ast.NewContext()

	mod, resolved, ok := resolveModule(ctx, appDir, "silent")
	require.True(t, ok)
	assert.Equal(t, "app", mod.Name)
	require.Len(t, resolved, 1)
	assert.Equal(t, "io", resolved[0].Module().Module().Name().Text())

	// the imported module's name was interned in the context passed in
	io, found := ctx.Lookup("io")
	require.True(t, found)
	assert.Equal(t, io, resolved[0].Module().Module().Name())

	ctx.Release()
	if logging.AssertionsEnabled() {
		assert.Panics(t, func() { ctx.Lookup("io") })
	}
}

func TestResolveModuleMissing(t *testing.T) {
	ctx := ast.NewContext()
	defer ctx.Release()

	_, _, ok := resolveModule(ctx, filepath.Join(t.TempDir(), "nothing"), "silent")
	assert.False(t, ok)
}
