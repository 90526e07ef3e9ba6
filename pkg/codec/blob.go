package codec

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"
)

func init() {
	// Common container shapes stored through Pickled. User-defined types
	// must be registered by the caller, the same way they must be gob
	// encodable anywhere else.
	gob.Register(map[string]any{})
	gob.Register([]any{})
	gob.Register([]string{})
	gob.Register(map[string]string{})
	gob.Register(time.Time{})
}

// pickledCodec serializes arbitrary Go values with encoding/gob into a byte
// blob. When the type is declared mutable, CopyValue produces an isolated
// copy via a serialize/deserialize round trip, and equality falls back to a
// caller-supplied comparator, else structural equality.
type pickledCodec struct{ Base }

func gobEncode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&v); err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return buf.Bytes(), nil
}

func gobDecode(data []byte) (any, error) {
	var v any
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return v, nil
}

func (c *pickledCodec) BindProcessor() Processor {
	return func(v any) (any, error) {
		return gobEncode(v)
	}
}

func (c *pickledCodec) ResultProcessor() Processor {
	return func(v any) (any, error) {
		data, ok := v.([]byte)
		if !ok {
			return nil, errors.Join(ErrDecode, fmt.Errorf("expected []byte, got %T", v))
		}
		return gobDecode(data)
	}
}

// CopyValue round-trips mutable values through the serializer to produce an
// independent deep copy. A value that cannot survive the round trip could
// never be stored either; that is a caller bug and panics.
func (c *pickledCodec) CopyValue(v any) any {
	if !c.LogicalType().Mutable || v == nil {
		return v
	}
	data, err := gobEncode(v)
	if err != nil {
		panic(fmt.Sprintf("codec: copy of unserializable pickled value: %v", err))
	}
	out, err := gobDecode(data)
	if err != nil {
		panic(fmt.Sprintf("codec: copy of unserializable pickled value: %v", err))
	}
	return out
}

func (c *pickledCodec) CompareValues(x, y any) bool {
	if cmp := c.LogicalType().Comparator; cmp != nil {
		return cmp(x, y)
	}
	return reflect.DeepEqual(x, y)
}

func (c *pickledCodec) Mutable() bool { return c.LogicalType().Mutable }

// jsonCodec stores arbitrary values as JSON text. Same mutability contract
// as pickledCodec, with encoding/json as the serializer.
type jsonCodec struct{ Base }

func (c *jsonCodec) BindProcessor() Processor {
	return func(v any) (any, error) {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Join(ErrEncode, err)
		}
		return data, nil
	}
}

func (c *jsonCodec) ResultProcessor() Processor {
	return func(v any) (any, error) {
		var data []byte
		switch d := v.(type) {
		case []byte:
			data = d
		case string:
			data = []byte(d)
		default:
			return nil, errors.Join(ErrDecode, fmt.Errorf("expected JSON text, got %T", v))
		}
		var out any
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
		return out, nil
	}
}

func (c *jsonCodec) CopyValue(v any) any {
	if !c.LogicalType().Mutable || v == nil {
		return v
	}
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("codec: copy of unserializable json value: %v", err))
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("codec: copy of unserializable json value: %v", err))
	}
	return out
}

func (c *jsonCodec) CompareValues(x, y any) bool {
	if cmp := c.LogicalType().Comparator; cmp != nil {
		return cmp(x, y)
	}
	return reflect.DeepEqual(x, y)
}

func (c *jsonCodec) Mutable() bool { return c.LogicalType().Mutable }
