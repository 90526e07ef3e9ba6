package logical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typecodec/pkg/logical"
)

func TestVariant(t *testing.T) {
	t.Parallel()

	t.Run("overrides mapped dialect, falls back otherwise", func(t *testing.T) {
		t.Parallel()
		v := logical.String(64).WithVariant("mysql", logical.Text())

		assert.Equal(t, logical.Text().Key(), v.ForDialect("mysql").Key())
		assert.Equal(t, logical.String(64).Key(), v.ForDialect("postgres").Key())
		assert.Equal(t, logical.String(64).Key(), v.Base().Key())
	})

	t.Run("extends with new dialects", func(t *testing.T) {
		t.Parallel()
		v := logical.String(64).WithVariant("mysql", logical.Text())

		v2, err := v.WithVariant("sqlite", logical.String(255))
		require.NoError(t, err)

		assert.Equal(t, logical.String(255).Key(), v2.ForDialect("sqlite").Key())
		assert.Equal(t, logical.Text().Key(), v2.ForDialect("mysql").Key())
		assert.ElementsMatch(t, []string{"mysql", "sqlite"}, v2.Dialects())
	})

	t.Run("duplicate dialect is rejected, original intact", func(t *testing.T) {
		t.Parallel()
		v := logical.String(64).WithVariant("mysql", logical.Text())

		_, err := v.WithVariant("mysql", logical.String(255))
		require.ErrorIs(t, err, logical.ErrDuplicateVariant)

		// The failed call must not have touched the original mapping.
		assert.Equal(t, logical.Text().Key(), v.ForDialect("mysql").Key())
		assert.ElementsMatch(t, []string{"mysql"}, v.Dialects())
	})

	t.Run("extension does not alias the parent mapping", func(t *testing.T) {
		t.Parallel()
		v := logical.Integer().WithVariant("mysql", logical.BigInt())
		v2, err := v.WithVariant("sqlite", logical.Integer())
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"mysql"}, v.Dialects())
		assert.ElementsMatch(t, []string{"mysql", "sqlite"}, v2.Dialects())
	})
}
