// Package sqlite adapts logical types to SQLite's storage classes. SQLite
// has no native temporal, boolean, or decimal types, so timestamps are
// stored as RFC 3339 text, dates and clock times as their ISO 8601 forms,
// and booleans as 0/1 integers. Exact decimals and UUIDs already bind to
// text through the generic codecs.
package sqlite

import (
	"github.com/dmitrymomot/typecodec/pkg/codec"
	"github.com/dmitrymomot/typecodec/pkg/dialect"
	"github.com/dmitrymomot/typecodec/pkg/logical"
)

// Dialect is the key this adapter registers under.
const Dialect dialect.Key = "sqlite"

// Adapter maps logical types to SQLite codecs.
type Adapter struct{}

// New returns the SQLite adapter.
func New() *Adapter { return &Adapter{} }

// Name implements dialect.Adapter.
func (*Adapter) Name() dialect.Key { return Dialect }

// Descriptor implements dialect.Adapter.
func (*Adapter) Descriptor(t logical.Type) (codec.Codec, error) {
	switch t.Kind {
	case logical.KindDateTime:
		return &datetimeTextCodec{codec.NewBase(t)}, nil
	case logical.KindDate:
		return &dateTextCodec{codec.NewBase(t)}, nil
	case logical.KindTime:
		return &timeTextCodec{codec.NewBase(t)}, nil
	case logical.KindBoolean:
		return &boolIntCodec{codec.NewBase(t)}, nil
	default:
		return nil, nil
	}
}
