package common

import "github.com/cespare/xxhash/v2"

// GenerateIDFromPath takes an absolute path and converts it into a numeric ID;
// this is used by the module loader to recognize modules it has already loaded
func GenerateIDFromPath(abspath string) uint64 {
	return xxhash.Sum64String(abspath)
}
