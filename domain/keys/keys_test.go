package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "token:25:0xabc", CacheKey(PfxToken, "25", "0xabc"))
	assert.Equal(t, "a|b", CustomKey("|", "a", "b"))
	assert.Equal(t, "", CacheKey())
}

func TestGetPrefix(t *testing.T) {
	assert.Equal(t, "token:25", GetPrefix("token:25:0xabc"))
	assert.Equal(t, "", GetPrefix("token"))
}
