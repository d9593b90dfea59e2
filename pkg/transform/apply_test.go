package transform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/augment/pkg/transform"
)

func TestApply(t *testing.T) {
	t.Run("runs transformations in order", func(t *testing.T) {
		got := transform.Apply("  Hello World  ", strings.TrimSpace, strings.ToLower)
		assert.Equal(t, "hello world", got)
	})

	t.Run("no transformations returns the value unchanged", func(t *testing.T) {
		assert.Equal(t, 42, transform.Apply(42))
	})
}

func TestCompose(t *testing.T) {
	t.Run("builds a reusable pipeline", func(t *testing.T) {
		clean := transform.Compose(strings.TrimSpace, strings.ToUpper)
		assert.Equal(t, "ONE", clean(" one "))
		assert.Equal(t, "TWO", clean("two"))
	})
}

func TestChain(t *testing.T) {
	t.Run("composes any-typed transformations", func(t *testing.T) {
		pipeline := transform.Chain(transform.Trim, transform.Lower)
		assert.Equal(t, "hello", pipeline("  Hello "))
	})

	t.Run("passes non-strings through", func(t *testing.T) {
		pipeline := transform.Chain(transform.Trim, transform.Lower)
		assert.Equal(t, 7, pipeline(7))
	})
}
