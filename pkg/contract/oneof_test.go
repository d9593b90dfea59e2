package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/augment/pkg/contract"
)

func TestEnsureOneOf(t *testing.T) {
	rules := []contract.Rule{
		contract.Arg("a", greaterThan10()),
		contract.Arg("b", smallerThan10()),
	}

	t.Run("rejects when no group member validates", func(t *testing.T) {
		calls := 0
		wrapped := contract.MustEnsureOneOf(pairFn(&calls), rules)

		_, err := wrapped.Call([]any{5, 11}, nil)
		require.Error(t, err)

		report := contract.AsReport(err)
		require.NotNil(t, report)
		assert.Equal(t, []string{"must be greater than 10"}, report.Get("a"))
		assert.Equal(t, []string{"must be smaller than 10"}, report.Get("b"))
		assert.Contains(t, report.Summary(), "one of")
		assert.Equal(t, 0, calls)
	})

	t.Run("accepts when one group member validates", func(t *testing.T) {
		wrapped := contract.MustEnsureOneOf(pairFn(nil), rules)

		res, err := wrapped.Call([]any{11, 11}, nil)
		require.NoError(t, err)
		assert.Equal(t, []any{11, 11}, res)
	})

	t.Run("accepts when every group member validates", func(t *testing.T) {
		wrapped := contract.MustEnsureOneOf(pairFn(nil), rules)

		res, err := wrapped.Call([]any{11, 5}, nil)
		require.NoError(t, err)
		assert.Equal(t, []any{11, 5}, res)
	})

	t.Run("records pass and fail outcomes on the report", func(t *testing.T) {
		wrapped := contract.MustEnsureOneOf(pairFn(nil), rules)

		_, err := wrapped.Call([]any{5, 11}, nil)
		require.Error(t, err)

		report := contract.AsReport(err)
		assert.Empty(t, report.Passed)
		assert.Equal(t, []string{"a", "b"}, report.Failed)
	})
}

func TestEnsureOneOfExclusive(t *testing.T) {
	rules := []contract.Rule{
		contract.Arg("a", greaterThan10()),
		contract.Arg("b", smallerThan10()),
	}

	t.Run("rejects when no group member validates", func(t *testing.T) {
		wrapped := contract.MustEnsureOneOf(pairFn(nil), rules, contract.Exclusive())

		_, err := wrapped.Call([]any{5, 11}, nil)
		require.Error(t, err)
		assert.Contains(t, contract.AsReport(err).Summary(), "one of")
	})

	t.Run("accepts when exactly one group member validates", func(t *testing.T) {
		wrapped := contract.MustEnsureOneOf(pairFn(nil), rules, contract.Exclusive())

		res, err := wrapped.Call([]any{11, 11}, nil)
		require.NoError(t, err)
		assert.Equal(t, []any{11, 11}, res)
	})

	t.Run("rejects when more than one group member validates", func(t *testing.T) {
		calls := 0
		wrapped := contract.MustEnsureOneOf(pairFn(&calls), rules, contract.Exclusive())

		_, err := wrapped.Call([]any{11, 5}, nil)
		require.Error(t, err)

		report := contract.AsReport(err)
		assert.Contains(t, report.Summary(), "only one of")
		assert.Equal(t, []string{"a", "b"}, report.Passed)
		assert.Equal(t, 0, calls)
	})

	t.Run("rejects when nothing in the group resolves", func(t *testing.T) {
		wrapped := contract.MustEnsureOneOf(pairFn(nil), rules, contract.Exclusive())

		_, err := wrapped.Call(nil, nil)
		require.Error(t, err, "zero resolvable arguments is a defined failure, not a silent pass")
		assert.Contains(t, contract.AsReport(err).Summary(), "one of")
	})

	t.Run("error handler decides the outcome", func(t *testing.T) {
		wrapped := contract.MustEnsureOneOf(pairFn(nil), rules,
			contract.Exclusive(),
			contract.WithErrorHandler(func(report *contract.Report) (any, error) {
				return "handled", nil
			}))

		res, err := wrapped.Call([]any{11, 5}, nil)
		require.NoError(t, err)
		assert.Equal(t, "handled", res)
	})
}

func TestEnsureOneOfDecoration(t *testing.T) {
	t.Run("rejects nil target", func(t *testing.T) {
		_, err := contract.EnsureOneOf(nil, nil)
		assert.ErrorIs(t, err, contract.ErrNilTarget)
	})

	t.Run("rejects malformed constraints", func(t *testing.T) {
		_, err := contract.EnsureOneOf(pairFn(nil), []contract.Rule{
			contract.Arg("a", contract.That("anything", nil)),
		})
		assert.ErrorIs(t, err, contract.ErrMalformedConstraint)
	})
}
