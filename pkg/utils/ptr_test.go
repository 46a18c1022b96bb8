package utils

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeOptional(t *testing.T) {
	assert.False(t, NormalizeOptional(null.String{}).Valid)
	assert.False(t, NormalizeOptional(null.StringFrom("")).Valid)
	assert.False(t, NormalizeOptional(null.StringFrom("   ")).Valid)

	got := NormalizeOptional(null.StringFrom("  REF-1  "))
	assert.True(t, got.Valid)
	assert.Equal(t, "REF-1", got.String)
}

func TestSafeDeref(t *testing.T) {
	v := 5
	assert.Equal(t, 5, SafeDeref(&v))
	assert.Equal(t, 0, SafeDeref[int](nil))
	assert.Equal(t, "", SafeDeref[string](nil))
}
