package imports

import "fmt"

// ImportKind describes what kind of name an import statement names.  Every
// kind other than KindModule is a scoped import: the last name of the path is
// a declaration inside the module rather than part of the module's name.
type ImportKind uint8

// Enumeration of import kinds.
const (
	KindModule ImportKind = iota
	KindType
	KindStruct
	KindClass
	KindEnum
	KindProtocol
	KindVar
	KindFunc
)

var importKindNames = [...]string{
	KindModule:   "module",
	KindType:     "type",
	KindStruct:   "struct",
	KindClass:    "class",
	KindEnum:     "enum",
	KindProtocol: "protocol",
	KindVar:      "var",
	KindFunc:     "func",
}

// IsScoped returns whether imports of this kind name a declaration
func (k ImportKind) IsScoped() bool {
	return k != KindModule
}

func (k ImportKind) String() string {
	if int(k) < len(importKindNames) {
		return importKindNames[k]
	}

	return fmt.Sprintf("ImportKind(%d)", k)
}

// ParseImportKind converts the keyword of an import kind into its value
func ParseImportKind(name string) (ImportKind, error) {
	if name == "" {
		return KindModule, nil
	}

	for kind, kindName := range importKindNames {
		if kindName == name {
			return ImportKind(kind), nil
		}
	}

	return KindModule, fmt.Errorf("unknown import kind `%s`", name)
}
