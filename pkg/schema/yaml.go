package schema

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/typecodec/pkg/logical"
)

type fileSchema struct {
	Table  string      `yaml:"table"`
	Fields []fileField `yaml:"fields"`
}

type fileField struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Values     []string `yaml:"values"`
	Charset    string   `yaml:"charset"`
	Length     int      `yaml:"length"`
	Precision  int      `yaml:"precision"`
	Scale      int      `yaml:"scale"`
	Timezone   bool     `yaml:"timezone"`
	Mutable    bool     `yaml:"mutable"`
	PrimaryKey bool     `yaml:"primary_key"`
}

// Load parses a YAML schema document:
//
//	table: posts
//	fields:
//	  - name: id
//	    type: integer
//	    primary_key: true
//	  - name: title
//	    type: string
//	    length: 100
//	  - name: status
//	    type: enum
//	    values: [draft, published]
//
// Unknown type names fail with [ErrUnknownType]; structural problems fail
// with [ErrInvalidSchema].
func Load(data []byte) (*Schema, error) {
	var doc fileSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	fields := make([]Field, 0, len(doc.Fields))
	for _, ff := range doc.Fields {
		t, err := ff.logicalType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: ff.Name, Type: t, PrimaryKey: ff.PrimaryKey})
	}
	return New(doc.Table, fields...)
}

// LoadFile reads and parses a YAML schema file.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	return Load(data)
}

func (ff fileField) logicalType() (logical.Type, error) {
	var t logical.Type
	switch ff.Type {
	case "string", "varchar":
		t = logical.String(ff.Length)
	case "text":
		t = logical.Text()
	case "integer", "int":
		t = logical.Integer()
	case "smallint":
		t = logical.SmallInt()
	case "bigint":
		t = logical.BigInt()
	case "numeric", "decimal":
		t = logical.Numeric(ff.Precision, ff.Scale)
	case "float":
		t = logical.Float(ff.Precision)
	case "boolean", "bool":
		t = logical.Bool()
	case "datetime", "timestamp":
		t = logical.DateTime(ff.Timezone)
	case "date":
		t = logical.Date()
	case "time":
		t = logical.Time(ff.Timezone)
	case "interval":
		t = logical.Interval()
	case "binary", "blob":
		t = logical.Binary(ff.Length)
	case "pickled":
		t = logical.Pickled(ff.Mutable, nil)
	case "enum":
		if len(ff.Values) == 0 {
			return logical.Type{}, errors.Join(ErrInvalidSchema, fmt.Errorf("enum field %q declares no values", ff.Name))
		}
		t = logical.Enum(ff.Values...)
	case "uuid":
		t = logical.UUID()
	case "json":
		t = logical.JSON()
	default:
		return logical.Type{}, errors.Join(ErrUnknownType, fmt.Errorf("%q on field %q", ff.Type, ff.Name))
	}
	if ff.Charset != "" {
		t = t.WithCharset(ff.Charset)
	}
	return t, nil
}
