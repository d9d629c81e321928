package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"chaimport/ast"
	"chaimport/common"
	"chaimport/imports"
)

// Errors returned by module loaders.
var (
	ErrModuleNotFound = errors.New("module not found")
	ErrNoSubmodule    = errors.New("no such submodule")
)

// Loader resolves module paths to loaded modules
type Loader interface {
	// LoadModule loads the module named by path, including any submodule
	// suffix.  Loading the same module twice returns the same handle.
	LoadModule(path imports.ModulePath) (*ast.ModuleDecl, error)
}

// HeaderLoader is implemented by loaders that can load host-interop modules
type HeaderLoader interface {
	Loader

	// LoadBridgingHeader loads the bridging header at path as a module
	LoadBridgingHeader(path string) (*ast.ModuleDecl, error)

	// LoadUnderlyingModule loads the host-interop module paired with the
	// module named name
	LoadUnderlyingModule(name ast.Identifier) (*ast.ModuleDecl, error)
}

// underlyingModuleDir is the directory within a module root holding its
// host-interop module
const underlyingModuleDir = "include"

// DirLoader loads modules from directories containing module files.  Modules
// are searched for relative to a root module.  It can be used from multiple
// goroutines.
type DirLoader struct {
	ctx  *ast.Context
	root *ChaiModule

	// rootDecl is the handle of the root module
	rootDecl *ast.ModuleDecl

	// loaded maps module IDs (generated from module paths) to handles
	loaded map[uint64]*ast.ModuleDecl

	// modules maps handles of loaded Chai modules to their configuration
	modules map[*ast.ModuleDecl]*ChaiModule

	m sync.Mutex
}

var _ HeaderLoader = (*DirLoader)(nil)

// NewDirLoader creates a loader searching for modules relative to root
func NewDirLoader(ctx *ast.Context, root *ChaiModule) *DirLoader {
	l := &DirLoader{
		ctx:     ctx,
		root:    root,
		loaded:  make(map[uint64]*ast.ModuleDecl),
		modules: make(map[*ast.ModuleDecl]*ChaiModule),
	}

	l.rootDecl = ctx.NewModuleDecl(ctx.Intern(root.Name), root.ModuleRoot)
	l.loaded[root.ID] = l.rootDecl
	l.modules[l.rootDecl] = root
	return l
}

// Root returns the handle of the root module
func (l *DirLoader) Root() *ast.ModuleDecl {
	return l.rootDecl
}

// Module returns the configuration of a loaded Chai module
func (l *DirLoader) Module(md *ast.ModuleDecl) (*ChaiModule, bool) {
	l.m.Lock()
	defer l.m.Unlock()

	mod, ok := l.modules[md]
	return mod, ok
}

func (l *DirLoader) LoadModule(path imports.ModulePath) (*ast.ModuleDecl, error) {
	l.m.Lock()
	defer l.m.Unlock()

	name := path.Front().Item.Text()
	modPath, ok := l.root.ResolveModulePath(name)
	if !ok {
		return nil, fmt.Errorf("unable to locate module by name `%s`: %w", name, ErrModuleNotFound)
	}

	md, mod, err := l.loadTopLevel(name, modPath)
	if err != nil {
		return nil, err
	}

	if !path.HasSubmodule() {
		return md, nil
	}

	segments := make([]string, 0, path.Len()-1)
	for _, elem := range path.SubmodulePath() {
		segments = append(segments, elem.Item.Text())
	}

	subPath, ok := mod.ResolveSubmodulePath(segments)
	if !ok {
		return nil, fmt.Errorf("module `%s` has no submodule `%s`: %w", name, path, ErrNoSubmodule)
	}

	return l.declare(path.String(), subPath), nil
}

// loadTopLevel returns the handle and configuration of the module at modPath,
// loading it if it has not been loaded already
func (l *DirLoader) loadTopLevel(name, modPath string) (*ast.ModuleDecl, *ChaiModule, error) {
	if md, ok := l.loaded[common.GenerateIDFromPath(modPath)]; ok {
		if mod, ok := l.modules[md]; ok {
			return md, mod, nil
		}

		// the handle was declared for a submodule of another module, so its
		// module file has not been read yet
	}

	mod, err := LoadModule(modPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading module `%s`: %w", name, err)
	}

	md := l.declare(mod.Name, mod.ModuleRoot)
	l.modules[md] = mod
	return md, mod, nil
}

// declare returns the handle for the module at abspath, creating one if needed
func (l *DirLoader) declare(name, abspath string) *ast.ModuleDecl {
	id := common.GenerateIDFromPath(abspath)
	if md, ok := l.loaded[id]; ok {
		return md
	}

	md := l.ctx.NewModuleDecl(l.ctx.Intern(name), abspath)
	l.loaded[id] = md
	return md
}

func (l *DirLoader) LoadBridgingHeader(path string) (*ast.ModuleDecl, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root.ModuleRoot, path)
	}

	finfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error loading bridging header: %w", err)
	}

	if finfo.IsDir() {
		return nil, fmt.Errorf("bridging header %s is a directory", path)
	}

	l.m.Lock()
	defer l.m.Unlock()

	return l.declare(common.BridgingHeaderModuleName, filepath.Clean(path)), nil
}

func (l *DirLoader) LoadUnderlyingModule(name ast.Identifier) (*ast.ModuleDecl, error) {
	l.m.Lock()
	defer l.m.Unlock()

	modPath, ok := l.root.ResolveModulePath(name.Text())
	if !ok {
		return nil, fmt.Errorf("unable to locate module by name `%s`: %w", name, ErrModuleNotFound)
	}

	interopPath := filepath.Join(modPath, underlyingModuleDir)
	finfo, err := os.Stat(interopPath)
	if err != nil || !finfo.IsDir() {
		return nil, fmt.Errorf("module `%s` has no underlying module: %w", name, ErrModuleNotFound)
	}

	return l.declare(name.Text(), interopPath), nil
}
