package codec

import (
	"errors"
	"fmt"
	"time"
)

// datetimeCodec handles DateTime. Timezone-aware declarations pass values
// through untouched (nil processors); naive ones normalize to UTC so the
// stored representation never depends on the process's local zone.
type datetimeCodec struct{ Base }

func (c *datetimeCodec) BindProcessor() Processor {
	if c.LogicalType().Timezone {
		return nil
	}
	return func(v any) (any, error) {
		t, err := asTime(v, ErrEncode)
		if err != nil {
			return nil, err
		}
		return t.UTC(), nil
	}
}

func (c *datetimeCodec) ResultProcessor() Processor {
	if c.LogicalType().Timezone {
		return nil
	}
	return func(v any) (any, error) {
		t, err := asTime(v, ErrDecode)
		if err != nil {
			return nil, err
		}
		return t.UTC(), nil
	}
}

func (c *datetimeCodec) CompareValues(x, y any) bool { return compareTimes(x, y) }

// dateCodec truncates to midnight UTC in both directions.
type dateCodec struct{ Base }

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (c *dateCodec) BindProcessor() Processor {
	return func(v any) (any, error) {
		t, err := asTime(v, ErrEncode)
		if err != nil {
			return nil, err
		}
		return truncateDate(t), nil
	}
}

func (c *dateCodec) ResultProcessor() Processor {
	return func(v any) (any, error) {
		t, err := asTime(v, ErrDecode)
		if err != nil {
			return nil, err
		}
		return truncateDate(t), nil
	}
}

func (c *dateCodec) CompareValues(x, y any) bool { return compareTimes(x, y) }

// timeCodec keeps only the clock part, anchored to the zero date.
type timeCodec struct{ Base }

func truncateClock(t time.Time, keepZone bool) time.Time {
	loc := time.UTC
	if keepZone {
		loc = t.Location()
	} else {
		t = t.UTC()
	}
	return time.Date(1, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func (c *timeCodec) BindProcessor() Processor {
	tz := c.LogicalType().Timezone
	return func(v any) (any, error) {
		t, err := asTime(v, ErrEncode)
		if err != nil {
			return nil, err
		}
		return truncateClock(t, tz), nil
	}
}

func (c *timeCodec) ResultProcessor() Processor {
	tz := c.LogicalType().Timezone
	return func(v any) (any, error) {
		t, err := asTime(v, ErrDecode)
		if err != nil {
			return nil, err
		}
		return truncateClock(t, tz), nil
	}
}

func (c *timeCodec) CompareValues(x, y any) bool { return compareTimes(x, y) }

// intervalCodec stores durations as integral microseconds, the portable
// representation for backends without a native interval type.
type intervalCodec struct{ Base }

func (c *intervalCodec) BindProcessor() Processor {
	return func(v any) (any, error) {
		d, ok := v.(time.Duration)
		if !ok {
			return nil, errors.Join(ErrEncode, fmt.Errorf("expected time.Duration, got %T", v))
		}
		return d.Microseconds(), nil
	}
}

func (c *intervalCodec) ResultProcessor() Processor {
	return func(v any) (any, error) {
		switch d := v.(type) {
		case time.Duration:
			return d, nil
		case int64:
			return time.Duration(d) * time.Microsecond, nil
		case int:
			return time.Duration(d) * time.Microsecond, nil
		case float64:
			return time.Duration(d * float64(time.Microsecond)), nil
		default:
			return nil, errors.Join(ErrDecode, fmt.Errorf("expected microsecond count, got %T", v))
		}
	}
}

func asTime(v any, sentinel error) (time.Time, error) {
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, errors.Join(sentinel, fmt.Errorf("expected time.Time, got %T", v))
	}
	return t, nil
}

// compareTimes uses time.Time.Equal so instants in different zones compare
// equal; mixed or non-time operands compare false.
func compareTimes(x, y any) bool {
	xt, xok := x.(time.Time)
	yt, yok := y.(time.Time)
	if xok && yok {
		return xt.Equal(yt)
	}
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return false
}
