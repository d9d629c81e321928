package ast

// ModuleDecl is the handle for a loaded module.  Module identity is the
// identity of the handle: two handles refer to the same module iff they are
// the same pointer.  The ID provides a total order over handles.
type ModuleDecl struct {
	id   uint64
	name Identifier

	// path is the absolute path the module was loaded from
	path string
}

// NewModuleDecl creates a module handle with an explicit ID.  Most callers
// should use Context.NewModuleDecl, which guarantees unique IDs; this is for
// callers that manage their own reserved IDs.
func NewModuleDecl(id uint64, name Identifier, path string) *ModuleDecl {
	return &ModuleDecl{id: id, name: name, path: path}
}

// ID returns the unique ID of the module
func (md *ModuleDecl) ID() uint64 {
	return md.id
}

// Name returns the full (dotted) name of the module
func (md *ModuleDecl) Name() Identifier {
	return md.name
}

// Path returns the absolute path the module was loaded from
func (md *ModuleDecl) Path() string {
	return md.path
}

func (md *ModuleDecl) String() string {
	return md.name.Text()
}
