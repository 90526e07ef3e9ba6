package codec

import (
	"errors"
	"fmt"
	"math/big"
)

// decimalCodec handles Numeric declarations with AsDecimal set. Application
// values are *big.Rat; the storage-bound form is a decimal string formatted
// at the declared scale, which every backend can store losslessly.
type decimalCodec struct{ Base }

func (c *decimalCodec) BindProcessor() Processor {
	scale := c.LogicalType().Scale
	return func(v any) (any, error) {
		r, err := asRat(v, ErrEncode)
		if err != nil {
			return nil, err
		}
		return r.FloatString(scale), nil
	}
}

func (c *decimalCodec) ResultProcessor() Processor {
	return func(v any) (any, error) {
		switch n := v.(type) {
		case *big.Rat:
			return n, nil
		case string:
			return parseRat(n)
		case []byte:
			return parseRat(string(n))
		case float64:
			return new(big.Rat).SetFloat64(n), nil
		case int64:
			return new(big.Rat).SetInt64(n), nil
		default:
			return nil, errors.Join(ErrDecode, fmt.Errorf("expected decimal representation, got %T", v))
		}
	}
}

func (c *decimalCodec) CompareValues(x, y any) bool {
	xr, xok := x.(*big.Rat)
	yr, yok := y.(*big.Rat)
	if xok && yok {
		return xr.Cmp(yr) == 0
	}
	return c.Base.CompareValues(x, y)
}

// CopyValue returns an independent *big.Rat: the value is a pointer type
// and change-tracking callers must not share the mantissa.
func (c *decimalCodec) CopyValue(v any) any {
	if r, ok := v.(*big.Rat); ok {
		return new(big.Rat).Set(r)
	}
	return v
}

// floatCodec handles Float and Numeric with AsDecimal unset: float64 both
// ways, with widening from the smaller Go numeric types on bind.
type floatCodec struct{ Base }

func (c *floatCodec) BindProcessor() Processor {
	return func(v any) (any, error) {
		f, err := asFloat64(v, ErrEncode)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}

func (c *floatCodec) ResultProcessor() Processor {
	return func(v any) (any, error) {
		return asFloat64(v, ErrDecode)
	}
}

func asRat(v any, sentinel error) (*big.Rat, error) {
	switch n := v.(type) {
	case *big.Rat:
		return n, nil
	case string:
		r, ok := new(big.Rat).SetString(n)
		if !ok {
			return nil, errors.Join(sentinel, fmt.Errorf("cannot parse %q as decimal", n))
		}
		return r, nil
	case float64:
		return new(big.Rat).SetFloat64(n), nil
	case int64:
		return new(big.Rat).SetInt64(n), nil
	case int:
		return new(big.Rat).SetInt64(int64(n)), nil
	default:
		return nil, errors.Join(sentinel, fmt.Errorf("expected *big.Rat, got %T", v))
	}
}

func parseRat(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, errors.Join(ErrDecode, fmt.Errorf("cannot parse %q as decimal", s))
	}
	return r, nil
}

func asFloat64(v any, sentinel error) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, errors.Join(sentinel, fmt.Errorf("expected float, got %T", v))
	}
}
