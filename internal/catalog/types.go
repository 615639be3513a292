// internal/catalog/types.go
//
// JSON-backed column types.
//
// Vehicle specifications and the image/model lists live in JSON columns
// so the catalog keeps the flat-record shape without join tables.  Both
// types implement driver.Valuer and sql.Scanner, so sqlx handles them
// like any scalar.

package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as a JSON array.
// Element order is preserved end to end; image galleries depend on it.
type StringList []string

// Value encodes the list for storage.  A nil list stores as "[]" so
// reads never see SQL NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan decodes a JSON array from []byte, string, or NULL.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("catalog: cannot scan %T into StringList", src)
	}
}

// StringMap is a free-form key-value map stored as a JSON object, used
// for vehicle specifications ("engine": "Cummins 6.7L", ...).
type StringMap map[string]string

// Value encodes the map for storage.  A nil map stores as "{}".
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan decodes a JSON object from []byte, string, or NULL.
func (m *StringMap) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = StringMap{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("catalog: cannot scan %T into StringMap", src)
	}
}
