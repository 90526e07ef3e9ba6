package sqlite

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/typecodec/pkg/codec"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05.999999999"
)

func bindTime(v any, layout string, utc bool) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, errors.Join(codec.ErrEncode, fmt.Errorf("expected time.Time, got %T", v))
	}
	if utc {
		t = t.UTC()
	}
	return t.Format(layout), nil
}

func parseTime(v any, layouts ...string) (time.Time, error) {
	var s string
	switch tv := v.(type) {
	case time.Time:
		return tv, nil
	case string:
		s = tv
	case []byte:
		s = string(tv)
	default:
		return time.Time{}, errors.Join(codec.ErrDecode, fmt.Errorf("expected temporal text, got %T", v))
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Join(codec.ErrDecode, fmt.Errorf("cannot parse %q as temporal value", s))
}

func compareTimes(x, y any) bool {
	xt, xok := x.(time.Time)
	yt, yok := y.(time.Time)
	if xok && yok {
		return xt.Equal(yt)
	}
	return x == nil && y == nil
}

// datetimeTextCodec stores timestamps as RFC 3339 text. Naive declarations
// normalize to UTC first so the stored text is zone-independent.
type datetimeTextCodec struct{ codec.Base }

func (c *datetimeTextCodec) BindProcessor() codec.Processor {
	utc := !c.LogicalType().Timezone
	return func(v any) (any, error) {
		return bindTime(v, time.RFC3339Nano, utc)
	}
}

func (c *datetimeTextCodec) ResultProcessor() codec.Processor {
	utc := !c.LogicalType().Timezone
	return func(v any) (any, error) {
		t, err := parseTime(v, time.RFC3339Nano, "2006-01-02 15:04:05.999999999", "2006-01-02 15:04:05")
		if err != nil {
			return nil, err
		}
		if utc {
			t = t.UTC()
		}
		return t, nil
	}
}

func (c *datetimeTextCodec) CompareValues(x, y any) bool { return compareTimes(x, y) }

type dateTextCodec struct{ codec.Base }

func (c *dateTextCodec) BindProcessor() codec.Processor {
	return func(v any) (any, error) {
		return bindTime(v, dateLayout, true)
	}
}

func (c *dateTextCodec) ResultProcessor() codec.Processor {
	return func(v any) (any, error) {
		t, err := parseTime(v, dateLayout)
		if err != nil {
			return nil, err
		}
		return t.UTC(), nil
	}
}

func (c *dateTextCodec) CompareValues(x, y any) bool { return compareTimes(x, y) }

type timeTextCodec struct{ codec.Base }

func (c *timeTextCodec) BindProcessor() codec.Processor {
	utc := !c.LogicalType().Timezone
	return func(v any) (any, error) {
		return bindTime(v, timeLayout, utc)
	}
}

func (c *timeTextCodec) ResultProcessor() codec.Processor {
	return func(v any) (any, error) {
		t, err := parseTime(v, timeLayout, "15:04:05")
		if err != nil {
			return nil, err
		}
		// Anchor at the zero date, same as the generic time codec.
		return time.Date(1, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
	}
}

func (c *timeTextCodec) CompareValues(x, y any) bool { return compareTimes(x, y) }

// boolIntCodec stores booleans the SQLite way: integer 0 or 1.
type boolIntCodec struct{ codec.Base }

func (c *boolIntCodec) BindProcessor() codec.Processor {
	return func(v any) (any, error) {
		b, ok := v.(bool)
		if !ok {
			return nil, errors.Join(codec.ErrEncode, fmt.Errorf("expected bool, got %T", v))
		}
		if b {
			return int64(1), nil
		}
		return int64(0), nil
	}
}

func (c *boolIntCodec) ResultProcessor() codec.Processor {
	return func(v any) (any, error) {
		switch b := v.(type) {
		case bool:
			return b, nil
		case int64:
			return b != 0, nil
		case int:
			return b != 0, nil
		default:
			return nil, errors.Join(codec.ErrDecode, fmt.Errorf("expected 0/1 integer, got %T", v))
		}
	}
}
