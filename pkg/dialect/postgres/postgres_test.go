package postgres_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typecodec/pkg/codec"
	"github.com/dmitrymomot/typecodec/pkg/dialect"
	"github.com/dmitrymomot/typecodec/pkg/dialect/postgres"
	"github.com/dmitrymomot/typecodec/pkg/logical"
)

func TestAdapter_Descriptor(t *testing.T) {
	t.Parallel()

	a := postgres.New()
	assert.Equal(t, dialect.Key("postgres"), a.Name())

	t.Run("overrides decimals, intervals, uuids", func(t *testing.T) {
		t.Parallel()
		for _, typ := range []logical.Type{
			logical.Numeric(10, 2),
			logical.Interval(),
			logical.UUID(),
		} {
			impl, err := a.Descriptor(typ)
			require.NoError(t, err)
			assert.NotNil(t, impl, "expected override for %s", typ.Key())
		}
	})

	t.Run("defers the rest to generic codecs", func(t *testing.T) {
		t.Parallel()
		for _, typ := range []logical.Type{
			logical.String(100),
			logical.Integer(),
			logical.DateTime(true),
			logical.Float(53),
		} {
			impl, err := a.Descriptor(typ)
			require.NoError(t, err)
			assert.Nil(t, impl, "no override expected for %s", typ.Key())
		}
	})
}

func TestNumericCodec(t *testing.T) {
	t.Parallel()

	a := postgres.New()
	impl, err := a.Descriptor(logical.Numeric(10, 2))
	require.NoError(t, err)

	t.Run("binds as pgtype.Numeric", func(t *testing.T) {
		t.Parallel()
		stored, err := impl.BindProcessor()(big.NewRat(1299, 100))
		require.NoError(t, err)

		n, ok := stored.(pgtype.Numeric)
		require.True(t, ok)
		assert.True(t, n.Valid)
	})

	t.Run("round trip preserves the value", func(t *testing.T) {
		t.Parallel()
		in := big.NewRat(-1299, 100)
		stored, err := impl.BindProcessor()(in)
		require.NoError(t, err)

		back, err := impl.ResultProcessor()(stored)
		require.NoError(t, err)
		assert.True(t, impl.CompareValues(in, back))
	})

	t.Run("decodes driver strings and bytes", func(t *testing.T) {
		t.Parallel()
		result := impl.ResultProcessor()

		back, err := result("12.99")
		require.NoError(t, err)
		assert.True(t, impl.CompareValues(big.NewRat(1299, 100), back))

		back, err = result([]byte("0.5"))
		require.NoError(t, err)
		assert.True(t, impl.CompareValues(big.NewRat(1, 2), back))
	})

	t.Run("rejects non-decimal binds", func(t *testing.T) {
		t.Parallel()
		_, err := impl.BindProcessor()("12.99")
		require.ErrorIs(t, err, codec.ErrEncode)
	})
}

func TestIntervalCodec(t *testing.T) {
	t.Parallel()

	a := postgres.New()
	impl, err := a.Descriptor(logical.Interval())
	require.NoError(t, err)

	t.Run("binds as pgtype.Interval microseconds", func(t *testing.T) {
		t.Parallel()
		stored, err := impl.BindProcessor()(90 * time.Minute)
		require.NoError(t, err)

		iv, ok := stored.(pgtype.Interval)
		require.True(t, ok)
		assert.True(t, iv.Valid)
		assert.Equal(t, int64(5_400_000_000), iv.Microseconds)
	})

	t.Run("decodes month and day components", func(t *testing.T) {
		t.Parallel()
		back, err := impl.ResultProcessor()(pgtype.Interval{
			Months:       1,
			Days:         2,
			Microseconds: 3_000_000,
			Valid:        true,
		})
		require.NoError(t, err)

		expected := 30*24*time.Hour + 2*24*time.Hour + 3*time.Second
		assert.Equal(t, expected, back)
	})

	t.Run("null interval for a non-null value is a decode error", func(t *testing.T) {
		t.Parallel()
		_, err := impl.ResultProcessor()(pgtype.Interval{})
		require.ErrorIs(t, err, codec.ErrDecode)
	})
}

func TestUUIDCodec(t *testing.T) {
	t.Parallel()

	a := postgres.New()
	impl, err := a.Descriptor(logical.UUID())
	require.NoError(t, err)

	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	t.Run("binds as pgtype.UUID", func(t *testing.T) {
		t.Parallel()
		stored, err := impl.BindProcessor()(u)
		require.NoError(t, err)

		pu, ok := stored.(pgtype.UUID)
		require.True(t, ok)
		assert.True(t, pu.Valid)
		assert.Equal(t, [16]byte(u), pu.Bytes)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		stored, err := impl.BindProcessor()(u.String())
		require.NoError(t, err)

		back, err := impl.ResultProcessor()(stored)
		require.NoError(t, err)
		assert.Equal(t, u, back)
	})

	t.Run("decodes textual driver values", func(t *testing.T) {
		t.Parallel()
		back, err := impl.ResultProcessor()(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, back)
	})
}

func TestRegistryIntegration(t *testing.T) {
	t.Parallel()

	reg := dialect.NewRegistry()
	require.NoError(t, reg.Register(postgres.New()))

	b, err := reg.Resolve(logical.Numeric(10, 2), postgres.Dialect)
	require.NoError(t, err)

	stored, err := b.Bind(big.NewRat(1, 4))
	require.NoError(t, err)
	_, isNative := stored.(pgtype.Numeric)
	assert.True(t, isNative)

	// Float-mode numerics take the generic float path, not pgtype.
	fb, err := reg.Resolve(logical.Float(53), postgres.Dialect)
	require.NoError(t, err)
	out, err := fb.Bind(3.5)
	require.NoError(t, err)
	assert.Equal(t, 3.5, out)
}
