package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/augment/pkg/checks"
)

func TestNonEmpty(t *testing.T) {
	t.Run("accepts content", func(t *testing.T) {
		assert.True(t, passes(t, checks.NonEmpty(), "hello"))
	})

	t.Run("rejects empty and whitespace-only strings", func(t *testing.T) {
		assert.False(t, passes(t, checks.NonEmpty(), ""))
		assert.False(t, passes(t, checks.NonEmpty(), "   \t"))
	})

	t.Run("rejects non-strings", func(t *testing.T) {
		assert.False(t, passes(t, checks.NonEmpty(), 42))
	})
}

func TestMinLenMaxLen(t *testing.T) {
	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, passes(t, checks.MinLen(3), "abc"))
		assert.False(t, passes(t, checks.MinLen(3), "ab"))
		assert.True(t, passes(t, checks.MaxLen(3), "abc"))
		assert.False(t, passes(t, checks.MaxLen(3), "abcd"))
	})
}

func TestInSet(t *testing.T) {
	t.Run("accepts listed choices only", func(t *testing.T) {
		c := checks.InSet("red", "green", "blue")
		assert.True(t, passes(t, c, "green"))
		assert.False(t, passes(t, c, "yellow"))
		assert.False(t, passes(t, c, ""))
	})
}

func TestHasPrefixHasSuffix(t *testing.T) {
	t.Run("prefix and suffix match literally", func(t *testing.T) {
		assert.True(t, passes(t, checks.HasPrefix("usr_"), "usr_42"))
		assert.False(t, passes(t, checks.HasPrefix("usr_"), "org_42"))
		assert.True(t, passes(t, checks.HasSuffix(".go"), "main.go"))
		assert.False(t, passes(t, checks.HasSuffix(".go"), "main.py"))
	})
}

func TestNumeric(t *testing.T) {
	t.Run("accepts signed decimals", func(t *testing.T) {
		for _, ok := range []any{"12", "-12", "12.5", 42} {
			assert.True(t, passes(t, checks.Numeric(), ok), "%v", ok)
		}
	})

	t.Run("rejects everything else", func(t *testing.T) {
		for _, bad := range []any{"ab", "12.5x", "1.2.3", ""} {
			assert.False(t, passes(t, checks.Numeric(), bad), "%v", bad)
		}
	})
}
