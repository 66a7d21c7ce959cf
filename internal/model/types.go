package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSON-encoded list of URLs stored in a single column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal StringList: %w", err)
	}
	return b, nil
}
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("StringList.Scan: expected []byte, got %T", src)
	}
	return json.Unmarshal(data, l)
}
