package sqlite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typecodec/pkg/codec"
	"github.com/dmitrymomot/typecodec/pkg/dialect"
	"github.com/dmitrymomot/typecodec/pkg/dialect/sqlite"
	"github.com/dmitrymomot/typecodec/pkg/logical"
)

func TestAdapter_Descriptor(t *testing.T) {
	t.Parallel()

	a := sqlite.New()
	assert.Equal(t, dialect.Key("sqlite"), a.Name())

	t.Run("overrides temporal and boolean kinds", func(t *testing.T) {
		t.Parallel()
		for _, typ := range []logical.Type{
			logical.DateTime(false),
			logical.Date(),
			logical.Time(false),
			logical.Bool(),
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
			logical.Numeric(10, 2),
			logical.Binary(0),
		} {
			impl, err := a.Descriptor(typ)
			require.NoError(t, err)
			assert.Nil(t, impl, "no override expected for %s", typ.Key())
		}
	})
}

func TestDatetimeTextCodec(t *testing.T) {
	t.Parallel()

	a := sqlite.New()
	impl, err := a.Descriptor(logical.DateTime(false))
	require.NoError(t, err)

	t.Run("binds naive timestamps as UTC RFC 3339 text", func(t *testing.T) {
		t.Parallel()
		in := time.Date(2026, 8, 25, 13, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60))
		stored, err := impl.BindProcessor()(in)
		require.NoError(t, err)
		assert.Equal(t, "2026-08-25T10:30:00Z", stored)
	})

	t.Run("round trip preserves the instant", func(t *testing.T) {
		t.Parallel()
		in := time.Date(2026, 8, 25, 10, 30, 0, 123456000, time.UTC)
		stored, err := impl.BindProcessor()(in)
		require.NoError(t, err)

		back, err := impl.ResultProcessor()(stored)
		require.NoError(t, err)
		assert.True(t, impl.CompareValues(in, back))
	})

	t.Run("parses legacy space-separated text", func(t *testing.T) {
		t.Parallel()
		back, err := impl.ResultProcessor()("2026-08-25 10:30:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC), back)
	})

	t.Run("rejects non-temporal text", func(t *testing.T) {
		t.Parallel()
		_, err := impl.ResultProcessor()("yesterday")
		require.ErrorIs(t, err, codec.ErrDecode)
	})
}

func TestDateTextCodec(t *testing.T) {
	t.Parallel()

	a := sqlite.New()
	impl, err := a.Descriptor(logical.Date())
	require.NoError(t, err)

	stored, err := impl.BindProcessor()(time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2026-08-25", stored)

	back, err := impl.ResultProcessor()(stored)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), back)
}

func TestTimeTextCodec(t *testing.T) {
	t.Parallel()

	a := sqlite.New()
	impl, err := a.Descriptor(logical.Time(false))
	require.NoError(t, err)

	in := time.Date(1, time.January, 1, 14, 45, 30, 500000000, time.UTC)

	stored, err := impl.BindProcessor()(in)
	require.NoError(t, err)
	assert.Equal(t, "14:45:30.5", stored)

	back, err := impl.ResultProcessor()(stored)
	require.NoError(t, err)
	assert.True(t, impl.CompareValues(in, back), "clock value survives, anchored at the zero date")
}

func TestBoolIntCodec(t *testing.T) {
	t.Parallel()

	a := sqlite.New()
	impl, err := a.Descriptor(logical.Bool())
	require.NoError(t, err)

	stored, err := impl.BindProcessor()(true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored)

	stored, err = impl.BindProcessor()(false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored)

	back, err := impl.ResultProcessor()(int64(1))
	require.NoError(t, err)
	assert.Equal(t, true, back)

	_, err = impl.ResultProcessor()("yes")
	require.ErrorIs(t, err, codec.ErrDecode)
}

func TestRegistryIntegration(t *testing.T) {
	t.Parallel()

	reg := dialect.NewRegistry()
	require.NoError(t, reg.Register(sqlite.New()))

	b, err := reg.Resolve(logical.Bool(), sqlite.Dialect)
	require.NoError(t, err)

	stored, err := b.Bind(true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored)
}
