package codec

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/dmitrymomot/typecodec/pkg/logical"
)

// nullCodec stands in for the untyped null type: everything passes through.
type nullCodec struct{ Base }

// stringCodec handles String and Text. Without a declared charset both
// processors are nil and values pass straight through; with one, values are
// transcoded to the storage character set on bind and back on result.
type stringCodec struct {
	Base
	enc encoding.Encoding
}

func newStringCodec(t logical.Type) (*stringCodec, error) {
	c := &stringCodec{Base: NewBase(t)}
	if t.Charset != "" {
		enc, err := ianaindex.IANA.Encoding(t.Charset)
		if err != nil || enc == nil {
			return nil, errors.Join(ErrUnsupported, fmt.Errorf("unknown charset %q", t.Charset))
		}
		c.enc = enc
	}
	return c, nil
}

func (c *stringCodec) BindProcessor() Processor {
	if c.enc == nil {
		return nil
	}
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errors.Join(ErrEncode, fmt.Errorf("expected string, got %T", v))
		}
		out, err := c.enc.NewEncoder().String(s)
		if err != nil {
			return nil, errors.Join(ErrEncode, err)
		}
		return out, nil
	}
}

func (c *stringCodec) ResultProcessor() Processor {
	if c.enc == nil {
		return nil
	}
	return func(v any) (any, error) {
		s, err := asString(v)
		if err != nil {
			return nil, err
		}
		out, err := c.enc.NewDecoder().String(s)
		if err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
		return out, nil
	}
}

// integerCodec normalizes the Go integer zoo to int64 and range-checks
// SmallInt declarations.
type integerCodec struct{ Base }

func (c *integerCodec) BindProcessor() Processor {
	small := c.LogicalType().Kind == logical.KindSmallInt
	return func(v any) (any, error) {
		n, err := asInt64(v, ErrEncode)
		if err != nil {
			return nil, err
		}
		if small && (n < math.MinInt16 || n > math.MaxInt16) {
			return nil, errors.Join(ErrEncode, fmt.Errorf("value %d out of smallint range", n))
		}
		return n, nil
	}
}

func (c *integerCodec) ResultProcessor() Processor {
	return func(v any) (any, error) {
		return asInt64(v, ErrDecode)
	}
}

// binaryCodec passes []byte through; equality is byte-wise.
type binaryCodec struct{ Base }

func (c *binaryCodec) BindProcessor() Processor {
	return func(v any) (any, error) {
		switch b := v.(type) {
		case []byte:
			return b, nil
		case string:
			return []byte(b), nil
		default:
			return nil, errors.Join(ErrEncode, fmt.Errorf("expected []byte, got %T", v))
		}
	}
}

func (c *binaryCodec) CompareValues(x, y any) bool {
	xb, xok := x.([]byte)
	yb, yok := y.([]byte)
	if xok && yok {
		return bytes.Equal(xb, yb)
	}
	return c.Base.CompareValues(x, y)
}

// boolCodec passes bool through on bind and tolerates drivers that report
// booleans as integers on result.
type boolCodec struct{ Base }

func (c *boolCodec) ResultProcessor() Processor {
	return func(v any) (any, error) {
		switch b := v.(type) {
		case bool:
			return b, nil
		case int64:
			return b != 0, nil
		case int:
			return b != 0, nil
		default:
			return nil, errors.Join(ErrDecode, fmt.Errorf("expected bool, got %T", v))
		}
	}
}

// enumCodec validates membership on the way in; unknown labels cannot be
// stored.
type enumCodec struct{ Base }

func (c *enumCodec) BindProcessor() Processor {
	values := c.LogicalType().Values
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errors.Join(ErrEncode, fmt.Errorf("expected string, got %T", v))
		}
		if !slices.Contains(values, s) {
			return nil, errors.Join(ErrEncode, fmt.Errorf("%q is not a permitted enum label", s))
		}
		return s, nil
	}
}

func (c *enumCodec) ResultProcessor() Processor {
	return func(v any) (any, error) {
		return asString(v)
	}
}

// uuidCodec stores UUIDs in canonical textual form; dialects with native
// UUID storage override it.
type uuidCodec struct{ Base }

func (c *uuidCodec) BindProcessor() Processor {
	return func(v any) (any, error) {
		switch u := v.(type) {
		case uuid.UUID:
			return u.String(), nil
		case string:
			parsed, err := uuid.Parse(u)
			if err != nil {
				return nil, errors.Join(ErrEncode, err)
			}
			return parsed.String(), nil
		default:
			return nil, errors.Join(ErrEncode, fmt.Errorf("expected uuid.UUID or string, got %T", v))
		}
	}
}

func (c *uuidCodec) ResultProcessor() Processor {
	return func(v any) (any, error) {
		switch u := v.(type) {
		case uuid.UUID:
			return u, nil
		case [16]byte:
			return uuid.UUID(u), nil
		case []byte:
			parsed, err := uuid.ParseBytes(u)
			if err != nil {
				return nil, errors.Join(ErrDecode, err)
			}
			return parsed, nil
		case string:
			parsed, err := uuid.Parse(u)
			if err != nil {
				return nil, errors.Join(ErrDecode, err)
			}
			return parsed, nil
		default:
			return nil, errors.Join(ErrDecode, fmt.Errorf("expected uuid representation, got %T", v))
		}
	}
}

func asString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", errors.Join(ErrDecode, fmt.Errorf("expected textual value, got %T", v))
	}
}

func asInt64(v any, sentinel error) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, errors.Join(sentinel, fmt.Errorf("value %d overflows int64", n))
		}
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, errors.Join(sentinel, fmt.Errorf("value %d overflows int64", n))
		}
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	default:
		return 0, errors.Join(sentinel, fmt.Errorf("expected integer, got %T", v))
	}
}
