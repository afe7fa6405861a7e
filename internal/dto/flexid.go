package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexID is an integer id that also accepts its decimal string form,
// e.g. {"category": 3} and {"category": "3"}. A blank string is rejected.
type FlexID int64

// NewFlexID returns a pointer to id, for optional id fields.
func NewFlexID(id int64) *FlexID {
	f := FlexID(id)
	return &f
}

func (f *FlexID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("id must be an integer: %s", data)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("id must not be blank")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("id must be an integer: %q", s)
	}
	*f = FlexID(n)
	return nil
}

func (f FlexID) Int64() int64 {
	return int64(f)
}
