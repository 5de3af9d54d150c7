package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colstorehq/coltable/pkg/coltable"
)

// schemaFile is the on-disk YAML shape for a table schema, e.g.:
//
//	columns:
//	  - name: id
//	    type: long
//	  - name: name
//	    type: string
//	    nullable: true
type schemaFile struct {
	Columns []struct {
		Name           string `yaml:"name"`
		Type           string `yaml:"type"`
		Nullable       bool   `yaml:"nullable"`
		ObjectTypeName string `yaml:"object_type_name"`
	} `yaml:"columns"`
}

func loadSchema(path string) ([]coltable.ColumnSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sf schemaFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, err
	}
	specs := make([]coltable.ColumnSpec, len(sf.Columns))
	for i, c := range sf.Columns {
		t, err := parseLogicalType(c.Type)
		if err != nil {
			return nil, err
		}
		specs[i] = coltable.ColumnSpec{
			Name:           c.Name,
			Type:           t,
			Nullable:       c.Nullable,
			ObjectTypeName: c.ObjectTypeName,
		}
	}
	return specs, nil
}

func parseLogicalType(s string) (coltable.LogicalType, error) {
	switch s {
	case "boolean", "bool":
		return coltable.TypeBoolean, nil
	case "byte":
		return coltable.TypeByte, nil
	case "short":
		return coltable.TypeShort, nil
	case "int":
		return coltable.TypeInt, nil
	case "long":
		return coltable.TypeLong, nil
	case "float":
		return coltable.TypeFloat, nil
	case "double":
		return coltable.TypeDouble, nil
	case "char":
		return coltable.TypeChar, nil
	case "string":
		return coltable.TypeString, nil
	case "byte-string", "bytes":
		return coltable.TypeByteString, nil
	case "object":
		return coltable.TypeObject, nil
	default:
		return 0, fmt.Errorf("unknown column type %q", s)
	}
}
