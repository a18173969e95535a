package keys

import (
	"strings"
)

const (
	// PfxToken prefixes cached erc20 metadata
	PfxToken = "token"
)

// CustomKey joins key components with the given delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey joins cache key components with ':'
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix returns everything before the last component of key
func GetPrefix(key string) string {
	idx := strings.LastIndex(key, ":")
	if idx < 0 {
		return ""
	}
	return key[:idx]
}
