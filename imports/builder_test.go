package imports

import (
	"slices"
	"testing"

	"chaimport/ast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderPushPop(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()

	b := NewBuilderFromName(ctx.Intern("net"), ast.NewSourceLoc(3, 8))
	b.PushName(ctx.Intern("http"), ast.NewSourceLoc(3, 12))
	b.Push(Element{Item: ctx.Intern("Client"), Loc: ast.NewSourceLoc(3, 17)})
	require.Equal(t, 3, b.Len())
	assert.Equal(t, "net.http.Client", b.Path().String())

	b.Pop()
	assert.Equal(t, "net.http", b.Path().String())
	assert.Equal(t, "http", b.Back().Item.Text())

	b.SetFront(Element{Item: ctx.Intern("std")})
	b.SetBack(Element{Item: ctx.Intern("io")})
	assert.Equal(t, "std.io", b.ModulePath().String())

	b.Append(elems(ctx, 1, "File")...)
	assert.Equal(t, "File", b.Path().AccessPath(true).String())

	b.Pop()
	b.Pop()
	b.Pop()
	assert.True(t, b.IsEmpty())
	assert.True(t, b.AccessPath().IsEmpty())
}

func TestBuilderAppendSeq(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()
	src := NewPath(elems(ctx, 1, "a", "b", "c"))

	b := NewBuilder()
	b.AppendSeq(slices.Values(src.Raw()))
	assert.True(t, b.Path().Equal(src))

	var copied []Element
	for elem := range b.Elements() {
		copied = append(copied, elem)
	}
	assert.Equal(t, src.Raw(), copied)
}

func TestBuilderBorrowVersusCopy(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()

	b := NewBuilderFromSlice(elems(ctx, 1, "io", "File"))
	copied := b.CopyPathTo(ctx)
	borrowed := b.Path()

	b.SetAt(1, Element{Item: ctx.Intern("Reader"), Loc: ast.NewSourceLoc(9, 9)})

	assert.Equal(t, "io.File", copied.String(), "copies are independent of the builder")
	assert.Equal(t, "io.Reader", borrowed.String(), "borrowed paths see the builder's storage")
	assert.Equal(t, 2, ctx.ArenaSize())

	mp := b.CopyModulePathTo(ctx)
	b.Pop()
	b.Pop()
	assert.Equal(t, "io.Reader", mp.String())

	b.PushName(ctx.Intern("Writer"), ast.SourceLoc{})
	ap := b.CopyAccessPathTo(ctx)
	b.SetAt(0, Element{Item: ctx.Intern("Closer")})
	assert.Equal(t, "Writer", ap.String())
	assert.Equal(t, 5, ctx.ArenaSize())
}

func TestParseBuilder(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()

	for _, tc := range []struct {
		text  string
		sep   rune
		names []string
	}{
		{"net.http.Client", '.', []string{"net", "http", "Client"}},
		{"net/http", '/', []string{"net", "http"}},
		{"io", '.', []string{"io"}},
		{"a..b", '.', []string{"a", "", "b"}},
		{"a.b.", '.', []string{"a", "b"}},
		{"not an identifier!", '.', []string{"not an identifier!"}},
		{"", '.', nil},
	} {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()

			b := ParseBuilder(ctx, tc.text, tc.sep)
			require.Equal(t, len(tc.names), b.Len())

			for i, name := range tc.names {
				elem := b.At(i)
				assert.Equal(t, name, elem.Item.Text())
				assert.False(t, elem.Loc.IsValid())
			}
		})
	}
}
