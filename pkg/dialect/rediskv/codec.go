package rediskv

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/typecodec/pkg/codec"
	"github.com/dmitrymomot/typecodec/pkg/logical"
)

// textCodec composes a generic codec with a string projection. Redis
// strings are binary safe, so byte blobs are carried verbatim.
type textCodec struct {
	codec.Base
	inner codec.Codec
}

func (c *textCodec) BindProcessor() codec.Processor {
	innerBind := c.inner.BindProcessor()
	return func(v any) (any, error) {
		if innerBind != nil {
			bound, err := innerBind(v)
			if err != nil {
				return nil, err
			}
			v = bound
		}
		return render(v)
	}
}

func (c *textCodec) ResultProcessor() codec.Processor {
	innerResult := c.inner.ResultProcessor()
	kind := c.LogicalType()
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			if b, isBytes := v.([]byte); isBytes {
				s = string(b)
			} else {
				return nil, errors.Join(codec.ErrDecode, fmt.Errorf("expected string, got %T", v))
			}
		}
		parsed, err := parse(kind, s)
		if err != nil {
			return nil, err
		}
		if innerResult != nil {
			return innerResult(parsed)
		}
		return parsed, nil
	}
}

func (c *textCodec) CompareValues(x, y any) bool { return c.inner.CompareValues(x, y) }
func (c *textCodec) CopyValue(v any) any         { return c.inner.CopyValue(v) }
func (c *textCodec) Mutable() bool               { return c.inner.Mutable() }

// render turns a generically-bound storage value into a Redis string.
func render(v any) (any, error) {
	switch b := v.(type) {
	case string:
		return b, nil
	case []byte:
		return string(b), nil
	case int64:
		return strconv.FormatInt(b, 10), nil
	case float64:
		return strconv.FormatFloat(b, 'g', -1, 64), nil
	case bool:
		if b {
			return "1", nil
		}
		return "0", nil
	case time.Time:
		return b.Format(time.RFC3339Nano), nil
	case uuid.UUID:
		return b.String(), nil
	default:
		return nil, errors.Join(codec.ErrEncode, fmt.Errorf("cannot project %T onto a redis string", v))
	}
}

// parse reverses render into the representation the generic result
// processor expects for the given logical type.
func parse(t logical.Type, s string) (any, error) {
	switch t.Kind {
	case logical.KindInteger, logical.KindSmallInt, logical.KindBigInt, logical.KindInterval:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errors.Join(codec.ErrDecode, err)
		}
		return n, nil
	case logical.KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Join(codec.ErrDecode, err)
		}
		return f, nil
	case logical.KindNumeric:
		if t.AsDecimal {
			return s, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Join(codec.ErrDecode, err)
		}
		return f, nil
	case logical.KindBoolean:
		switch s {
		case "1", "true":
			return true, nil
		case "0", "false":
			return false, nil
		default:
			return nil, errors.Join(codec.ErrDecode, fmt.Errorf("cannot parse %q as bool", s))
		}
	case logical.KindDateTime, logical.KindDate, logical.KindTime:
		ts, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, errors.Join(codec.ErrDecode, err)
		}
		return ts, nil
	case logical.KindBinary, logical.KindPickled, logical.KindJSON:
		return []byte(s), nil
	default:
		return s, nil
	}
}
