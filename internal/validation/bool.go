package validation

import (
	"strconv"
	"strings"
)

// Bool is a request field that accepts true, false, 1, 0, "1", "0",
// "true" and "false". Anything else is kept as present but invalid so the
// "boolean" rule reports it instead of the JSON decoder.
type Bool struct {
	raw string
	set bool
}

func NewBool(v bool) Bool {
	return Bool{raw: strconv.FormatBool(v), set: true}
}

func (b *Bool) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*b = Bool{}
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}

	switch strings.ToLower(s) {
	case "true", "1":
		b.raw = "true"
	case "false", "0":
		b.raw = "false"
	case "":
		// boş string gönderilmemiş sayılır
		*b = Bool{}
		return nil
	default:
		b.raw = "invalid"
	}
	b.set = true
	return nil
}

// Present reports whether the field was sent with a non-null value.
func (b Bool) Present() bool {
	return b.set
}

func (b Bool) Value() bool {
	return b.raw == "true"
}
