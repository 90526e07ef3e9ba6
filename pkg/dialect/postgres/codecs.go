package postgres

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dmitrymomot/typecodec/pkg/codec"
)

// numericCodec binds *big.Rat values as pgtype.Numeric so pgx transmits
// them in PostgreSQL's binary numeric format instead of text.
type numericCodec struct{ codec.Base }

func (c *numericCodec) BindProcessor() codec.Processor {
	scale := c.LogicalType().Scale
	return func(v any) (any, error) {
		r, ok := v.(*big.Rat)
		if !ok {
			return nil, errors.Join(codec.ErrEncode, fmt.Errorf("expected *big.Rat, got %T", v))
		}
		var n pgtype.Numeric
		if err := n.Scan(r.FloatString(scale)); err != nil {
			return nil, errors.Join(codec.ErrEncode, err)
		}
		return n, nil
	}
}

func (c *numericCodec) ResultProcessor() codec.Processor {
	return func(v any) (any, error) {
		switch n := v.(type) {
		case *big.Rat:
			return n, nil
		case pgtype.Numeric:
			dv, err := n.Value()
			if err != nil {
				return nil, errors.Join(codec.ErrDecode, err)
			}
			return ratFromDriver(dv)
		case string, []byte, float64, int64:
			return ratFromDriver(n)
		default:
			return nil, errors.Join(codec.ErrDecode, fmt.Errorf("expected numeric representation, got %T", v))
		}
	}
}

func (c *numericCodec) CompareValues(x, y any) bool {
	xr, xok := x.(*big.Rat)
	yr, yok := y.(*big.Rat)
	if xok && yok {
		return xr.Cmp(yr) == 0
	}
	return c.Base.CompareValues(x, y)
}

func (c *numericCodec) CopyValue(v any) any {
	if r, ok := v.(*big.Rat); ok {
		return new(big.Rat).Set(r)
	}
	return v
}

func ratFromDriver(v any) (*big.Rat, error) {
	var s string
	switch n := v.(type) {
	case string:
		s = n
	case []byte:
		s = string(n)
	case float64:
		return new(big.Rat).SetFloat64(n), nil
	case int64:
		return new(big.Rat).SetInt64(n), nil
	default:
		return nil, errors.Join(codec.ErrDecode, fmt.Errorf("expected numeric representation, got %T", v))
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, errors.Join(codec.ErrDecode, fmt.Errorf("cannot parse %q as decimal", s))
	}
	return r, nil
}

// intervalCodec binds time.Duration as pgtype.Interval. PostgreSQL
// intervals carry month and day components; months convert at the
// PostgreSQL convention of 30 days.
type intervalCodec struct{ codec.Base }

func (c *intervalCodec) BindProcessor() codec.Processor {
	return func(v any) (any, error) {
		d, ok := v.(time.Duration)
		if !ok {
			return nil, errors.Join(codec.ErrEncode, fmt.Errorf("expected time.Duration, got %T", v))
		}
		return pgtype.Interval{Microseconds: d.Microseconds(), Valid: true}, nil
	}
}

func (c *intervalCodec) ResultProcessor() codec.Processor {
	return func(v any) (any, error) {
		switch iv := v.(type) {
		case time.Duration:
			return iv, nil
		case pgtype.Interval:
			if !iv.Valid {
				return nil, errors.Join(codec.ErrDecode, errors.New("null interval for non-null value"))
			}
			d := time.Duration(iv.Microseconds) * time.Microsecond
			d += time.Duration(iv.Days) * 24 * time.Hour
			d += time.Duration(iv.Months) * 30 * 24 * time.Hour
			return d, nil
		case int64:
			return time.Duration(iv) * time.Microsecond, nil
		default:
			return nil, errors.Join(codec.ErrDecode, fmt.Errorf("expected interval representation, got %T", v))
		}
	}
}

// uuidCodec binds UUIDs as pgtype.UUID for the native 16-byte wire format.
type uuidCodec struct{ codec.Base }

func (c *uuidCodec) BindProcessor() codec.Processor {
	return func(v any) (any, error) {
		switch u := v.(type) {
		case uuid.UUID:
			return pgtype.UUID{Bytes: u, Valid: true}, nil
		case string:
			parsed, err := uuid.Parse(u)
			if err != nil {
				return nil, errors.Join(codec.ErrEncode, err)
			}
			return pgtype.UUID{Bytes: parsed, Valid: true}, nil
		default:
			return nil, errors.Join(codec.ErrEncode, fmt.Errorf("expected uuid.UUID or string, got %T", v))
		}
	}
}

func (c *uuidCodec) ResultProcessor() codec.Processor {
	return func(v any) (any, error) {
		switch u := v.(type) {
		case uuid.UUID:
			return u, nil
		case pgtype.UUID:
			if !u.Valid {
				return nil, errors.Join(codec.ErrDecode, errors.New("null uuid for non-null value"))
			}
			return uuid.UUID(u.Bytes), nil
		case [16]byte:
			return uuid.UUID(u), nil
		case string:
			parsed, err := uuid.Parse(u)
			if err != nil {
				return nil, errors.Join(codec.ErrDecode, err)
			}
			return parsed, nil
		case []byte:
			parsed, err := uuid.FromBytes(u)
			if err != nil {
				return nil, errors.Join(codec.ErrDecode, err)
			}
			return parsed, nil
		default:
			return nil, errors.Join(codec.ErrDecode, fmt.Errorf("expected uuid representation, got %T", v))
		}
	}
}
