package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SpecMap stores a product's specifications (size, color, material, ...) as
// a JSON column. Keys and values are free-form strings.
type SpecMap map[string]string

func (m SpecMap) Value() (driver.Value, error) {
	if m == nil {
		m = SpecMap{}
	}
	return json.Marshal(m)
}

func (m *SpecMap) Scan(src interface{}) error {
	if src == nil {
		*m = SpecMap{}
		return nil
	}
	b, err := toBytes(src)
	if err != nil {
		return fmt.Errorf("specifications column: %w", err)
	}
	if len(b) == 0 {
		*m = SpecMap{}
		return nil
	}
	if err := json.Unmarshal(b, m); err != nil {
		return fmt.Errorf("specifications column: %w", err)
	}
	return nil
}

// TagList stores a product's tag set as a JSON array. Order is whatever the
// admin entered; duplicates are rejected at the form layer.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	return json.Marshal(t)
}

func (t *TagList) Scan(src interface{}) error {
	if src == nil {
		*t = TagList{}
		return nil
	}
	b, err := toBytes(src)
	if err != nil {
		return fmt.Errorf("tags column: %w", err)
	}
	if len(b) == 0 {
		*t = TagList{}
		return nil
	}
	if err := json.Unmarshal(b, t); err != nil {
		return fmt.Errorf("tags column: %w", err)
	}
	return nil
}

func toBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported source type %T", src)
	}
}
