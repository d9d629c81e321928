package ast

import (
	"sync"

	"chaimport/logging"
)

// arenaChunkSize is the number of located names allocated per arena chunk
const arenaChunkSize = 256

// Context is the long-lived state shared by everything that analyzes one
// compilation unit: it interns identifiers and owns the arena that durable
// import paths are copied into.  Everything it hands out stays valid until
// Release is called.  Context is safe for concurrent use; allocation and
// interning are serialized.
type Context struct {
	m *sync.Mutex

	// idents maps the text of every interned identifier to its entry
	idents map[string]*identEntry

	// chunk is the arena chunk currently being bump allocated from.  Full
	// chunks are referenced only by the slices allocated from them.
	chunk []Located

	// arenaSize is the total number of elements allocated from the arena
	arenaSize int

	// nextModuleID is the ID that will be assigned to the next module decl
	nextModuleID uint64

	released bool
}

// NewContext creates a new compilation context
func NewContext() *Context {
	return &Context{
		m:            &sync.Mutex{},
		idents:       make(map[string]*identEntry),
		nextModuleID: 1,
	}
}

// Intern returns the unique identifier for the given text.  The empty string
// always produces the empty identifier.
func (c *Context) Intern(text string) Identifier {
	if text == "" {
		return Identifier{}
	}

	c.m.Lock()
	defer c.m.Unlock()

	c.assertLive()

	if entry, ok := c.idents[text]; ok {
		return Identifier{entry: entry}
	}

	entry := &identEntry{text: text}
	c.idents[text] = entry
	return Identifier{entry: entry}
}

// Lookup returns the identifier for the given text if it has been interned
func (c *Context) Lookup(text string) (Identifier, bool) {
	if text == "" {
		return Identifier{}, true
	}

	c.m.Lock()
	defer c.m.Unlock()

	c.assertLive()

	entry, ok := c.idents[text]
	return Identifier{entry: entry}, ok
}

// AllocateCopy copies the given located names into the context's arena and
// returns the copy.  The returned slice has no spare capacity: appending to it
// never writes into arena memory owned by other allocations.
func (c *Context) AllocateCopy(elems []Located) []Located {
	if len(elems) == 0 {
		return nil
	}

	c.m.Lock()
	defer c.m.Unlock()

	c.assertLive()

	n := len(elems)
	c.arenaSize += n

	// large allocations get a dedicated chunk so they don't waste the
	// remainder of the current one
	if n > arenaChunkSize/4 {
		dst := make([]Located, n)
		copy(dst, elems)
		return dst
	}

	if cap(c.chunk)-len(c.chunk) < n {
		c.chunk = make([]Located, 0, arenaChunkSize)
	}

	start := len(c.chunk)
	c.chunk = append(c.chunk, elems...)
	return c.chunk[start : start+n : start+n]
}

// ArenaSize returns the number of located names copied into the arena
func (c *Context) ArenaSize() int {
	c.m.Lock()
	defer c.m.Unlock()

	return c.arenaSize
}

// NewModuleDecl creates a new module handle with an ID unique to this context
func (c *Context) NewModuleDecl(name Identifier, path string) *ModuleDecl {
	c.m.Lock()
	defer c.m.Unlock()

	c.assertLive()

	md := NewModuleDecl(c.nextModuleID, name, path)
	c.nextModuleID++
	return md
}

// Release tears down the context.  Using the context afterward is an internal
// error.  Paths previously copied into the arena remain readable by the
// garbage collector's rules, but are no longer owned by anything.
func (c *Context) Release() {
	c.m.Lock()
	defer c.m.Unlock()

	c.idents = nil
	c.chunk = nil
	c.released = true
}

// assertLive checks the context has not been released.  The mutex must be held.
func (c *Context) assertLive() {
	logging.Assert(!c.released, "use of released compilation context")
}
