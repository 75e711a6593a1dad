package tosql

import (
	"github.com/dekarrin/tosql/value"
)

// Null is the SQL NULL marker.
type Null struct{}

func (Null) SQLValue() value.Value {
	return value.Null()
}

// ToSQL converts n to an Owned NULL.
func (n Null) ToSQL() (Output, error) {
	return FromValue(n), nil
}

// Bool is a bool that converts to an Owned Boolean.
type Bool bool

func (b Bool) SQLValue() value.Value {
	return value.Bool(bool(b))
}

func (b Bool) ToSQL() (Output, error) {
	return FromValue(b), nil
}

// Int32 is an int32 that converts to an Owned Integer.
type Int32 int32

func (i Int32) SQLValue() value.Value {
	return value.Int32(int32(i))
}

func (i Int32) ToSQL() (Output, error) {
	return FromValue(i), nil
}

// Int64 is an int64 that converts to an Owned Integer.
type Int64 int64

func (i Int64) SQLValue() value.Value {
	return value.Int64(int64(i))
}

func (i Int64) ToSQL() (Output, error) {
	return FromValue(i), nil
}

// Float64 is a float64 that converts to an Owned Real.
type Float64 float64

func (f Float64) SQLValue() value.Value {
	return value.Float64(float64(f))
}

func (f Float64) ToSQL() (Output, error) {
	return FromValue(f), nil
}

// Text is a string that converts to a Borrowed Text over its own data.
type Text string

func (t Text) SQLRef() value.Ref {
	return value.TextRef(string(t))
}

func (t Text) ToSQL() (Output, error) {
	return FromRef(t), nil
}

// Blob is a byte slice that converts to a Borrowed Blob viewing the slice
// itself. A nil Blob converts to an empty blob, not to NULL.
//
// The slice must not be modified until the Output has been consumed.
type Blob []byte

func (b Blob) SQLRef() value.Ref {
	if b == nil {
		return value.BlobRef([]byte{})
	}
	return value.BlobRef(b)
}

func (b Blob) ToSQL() (Output, error) {
	return FromRef(b), nil
}
