package imports

import "strings"

// ImportFlag is a single attribute of an import
type ImportFlag uint8

// Enumeration of import flags.
const (
	// Exported indicates the imported module is visible to anyone who imports
	// the importing module.
	Exported ImportFlag = 0x1

	// Testable gives the importing file access to testable declarations of the
	// imported module.
	Testable ImportFlag = 0x2

	// PrivateImport gives the importing file access to the private
	// declarations of one file of the imported module.
	PrivateImport ImportFlag = 0x4

	// ImplementationOnly indicates the imported module is an implementation
	// detail of the importing file and need not be present for clients.
	// Mutually exclusive with Exported.
	ImplementationOnly ImportFlag = 0x8

	// SPIAccessControl indicates the import grants access to named SPI groups.
	SPIAccessControl ImportFlag = 0x10

	// Reserved marks sentinel values used by hash tables.
	Reserved ImportFlag = 0x80
)

var importFlagNames = []struct {
	flag ImportFlag
	name string
}{
	{Exported, "exported"},
	{Testable, "testable"},
	{PrivateImport, "private"},
	{ImplementationOnly, "implementation-only"},
	{SPIAccessControl, "spi"},
	{Reserved, "reserved"},
}

func (f ImportFlag) String() string {
	for _, fn := range importFlagNames {
		if fn.flag == f {
			return fn.name
		}
	}

	return "unknown"
}

// ImportOptions is a set of import flags
type ImportOptions uint8

// NewImportOptions creates a set holding the given flags
func NewImportOptions(flags ...ImportFlag) ImportOptions {
	var opts ImportOptions
	for _, f := range flags {
		opts |= ImportOptions(f)
	}

	return opts
}

// OptionsFromRaw recreates an option set from its raw value
func OptionsFromRaw(raw uint8) ImportOptions {
	return ImportOptions(raw)
}

// Raw returns the raw bits of the set
func (o ImportOptions) Raw() uint8 {
	return uint8(o)
}

// Contains returns whether the set holds flag
func (o ImportOptions) Contains(flag ImportFlag) bool {
	return o&ImportOptions(flag) != 0
}

// IsEmpty returns whether the set holds no flags
func (o ImportOptions) IsEmpty() bool {
	return o == 0
}

// With returns the set with the given flags added
func (o ImportOptions) With(flags ...ImportFlag) ImportOptions {
	return o | NewImportOptions(flags...)
}

// Without returns the set with the given flags removed
func (o ImportOptions) Without(flags ...ImportFlag) ImportOptions {
	return o &^ NewImportOptions(flags...)
}

// Union returns the flags in either set
func (o ImportOptions) Union(other ImportOptions) ImportOptions {
	return o | other
}

// Intersect returns the flags in both sets
func (o ImportOptions) Intersect(other ImportOptions) ImportOptions {
	return o & other
}

// Difference returns the flags in o but not in other
func (o ImportOptions) Difference(other ImportOptions) ImportOptions {
	return o &^ other
}

// String lists the flags of the set separated by `|`
func (o ImportOptions) String() string {
	if o == 0 {
		return "none"
	}

	var names []string
	for _, fn := range importFlagNames {
		if o.Contains(fn.flag) {
			names = append(names, fn.name)
		}
	}

	if rest := o.Difference(NewImportOptions(Exported, Testable, PrivateImport, ImplementationOnly, SPIAccessControl, Reserved)); rest != 0 {
		names = append(names, "unknown")
	}

	return strings.Join(names, "|")
}
