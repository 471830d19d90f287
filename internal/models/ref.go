package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RefID is an optional entity reference decoded leniently from JSON.
// null, "" and an absent field all decode to "no reference"; numbers and
// numeric strings decode to an ID.
type RefID struct {
	ID *int
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RefID) UnmarshalJSON(data []byte) error {
	r.ID = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
	} else {
		raw = string(data)
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid reference id %s", string(data))
	}
	r.ID = &id
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r RefID) MarshalJSON() ([]byte, error) {
	if r.ID == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(*r.ID)), nil
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int { return &v }
