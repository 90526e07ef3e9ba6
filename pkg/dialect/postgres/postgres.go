// Package postgres adapts logical types to PostgreSQL's native
// representations via pgx v5 pgtype values: exact decimals bind as
// pgtype.Numeric, durations as pgtype.Interval, UUIDs as pgtype.UUID.
// Temporal and textual kinds need no override — pgx handles time.Time and
// string natively.
package postgres

import (
	"github.com/dmitrymomot/typecodec/pkg/codec"
	"github.com/dmitrymomot/typecodec/pkg/dialect"
	"github.com/dmitrymomot/typecodec/pkg/logical"
)

// Dialect is the key this adapter registers under.
const Dialect dialect.Key = "postgres"

// Adapter maps logical types to PostgreSQL codecs.
type Adapter struct{}

// New returns the PostgreSQL adapter.
func New() *Adapter { return &Adapter{} }

// Name implements dialect.Adapter.
func (*Adapter) Name() dialect.Key { return Dialect }

// Descriptor implements dialect.Adapter.
func (*Adapter) Descriptor(t logical.Type) (codec.Codec, error) {
	switch t.Kind {
	case logical.KindNumeric:
		if t.AsDecimal {
			return &numericCodec{codec.NewBase(t)}, nil
		}
		return nil, nil
	case logical.KindInterval:
		return &intervalCodec{codec.NewBase(t)}, nil
	case logical.KindUUID:
		return &uuidCodec{codec.NewBase(t)}, nil
	default:
		return nil, nil
	}
}
