package imports

import (
	"testing"

	"chaimport/ast"
	"chaimport/logging"
)

// elems interns each name and places it on line 1 starting at col, one column
// per name
func elems(ctx *ast.Context, col uint32, names ...string) []Element {
	out := make([]Element, len(names))
	for i, name := range names {
		out[i] = Element{Item: ctx.Intern(name), Loc: ast.NewSourceLoc(1, col+uint32(i))}
	}

	return out
}

func requireAssertions(t *testing.T) {
	t.Helper()

	if !logging.AssertionsEnabled() {
		t.Skip("assertions are disabled")
	}
}
