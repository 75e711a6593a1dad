package value

import (
	"fmt"
	"strings"
)

// Kind is the type of data held by a Value or Ref. The set of Kinds is closed.
type Kind int

const (
	// KindNull is SQL NULL. It is the Kind of the zero Value.
	KindNull Kind = iota

	// KindBoolean is a true/false value. Engines without a native boolean
	// type store it as the integer 0 or 1.
	KindBoolean

	// KindInteger is a signed 64-bit integer. Narrower integers are held in
	// it without loss.
	KindInteger

	// KindReal is a 64-bit IEEE floating point number.
	KindReal

	// KindText is a UTF-8 string.
	KindText

	// KindBlob is an arbitrary sequence of bytes.
	KindBlob
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	case KindText:
		return "Text"
	case KindBlob:
		return "Blob"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses the name of a Kind as returned by Kind.String. Matching is
// not case-sensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "null":
		return KindNull, nil
	case "boolean":
		return KindBoolean, nil
	case "integer":
		return KindInteger, nil
	case "real":
		return KindReal, nil
	case "text":
		return KindText, nil
	case "blob":
		return KindBlob, nil
	default:
		return KindNull, fmt.Errorf("unknown Kind %q", s)
	}
}

func (k Kind) valid() bool {
	return k >= KindNull && k <= KindBlob
}

// format gives the debug rendering shared by Value and Ref.
func format(k Kind, i int64, f float64, s string, b []byte) string {
	switch k {
	case KindNull:
		return "Null"
	case KindBoolean:
		return fmt.Sprintf("Boolean(%t)", i != 0)
	case KindInteger:
		return fmt.Sprintf("Integer(%d)", i)
	case KindReal:
		return fmt.Sprintf("Real(%v)", f)
	case KindText:
		return fmt.Sprintf("Text(%q)", s)
	case KindBlob:
		return fmt.Sprintf("Blob([% x])", b)
	default:
		return k.String()
	}
}
