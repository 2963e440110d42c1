package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ID is the canonical identifier of every entity in the document.
// Book and circulation ids arrive as JSON numbers or as strings from forms and URLs;
// both forms collapse to the same ID here so lookups use plain equality.
type ID string

// ParseID canonicalizes raw input: surrounding space is dropped and
// integer strings lose leading zeros and plus signs.
func ParseID(s string) ID {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ID(strconv.FormatInt(n, 10))
	}
	return ID(s)
}

// IntID builds an ID from a sequence number.
func IntID(n int64) ID {
	return ID(strconv.FormatInt(n, 10))
}

func (id ID) String() string {
	return string(id)
}

// Int reports the numeric value of an integer id.
func (id ID) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != string(id) {
		return 0, false
	}
	return n, true
}

func (id ID) MarshalJSON() ([]byte, error) {
	if _, ok := id.Int(); ok {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ParseID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*id = IntID(i)
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return err
	}
	if f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		*id = IntID(int64(f))
		return nil
	}
	*id = ID(n.String())
	return nil
}
