// Package tosql converts Go values into SQL values for binding to the
// parameters of a prepared statement.
//
// Any type can take part by implementing ToSQL. Conversion produces an
// [Output], which either borrows the converted value's memory ([Borrowed]) or
// owns a value of its own ([Owned]). Text and byte slices are borrowed so that
// binding them does not require a copy; scalars are owned.
//
// Because a Borrowed Output aliases its source, it is only valid while the
// source is alive and unmodified. Consumers must copy anything they need out
// of it before that point. [Use] scopes an Output to a callback to make that
// easier to get right.
//
// Adapters for the basic kinds are provided as named types: [Null], [Bool],
// [Int32], [Int64], [Float64], [Text], and [Blob]. [Option] adds optionality to
// any of them, and [Of] selects an adapter for a plain Go value.
//
// Building with the zeroblob tag enables the ZeroBlob Output, which asks the
// binder to reserve a run of zero bytes instead of sending data.
package tosql

import (
	"reflect"
)

// ToSQL is implemented by any value that can be converted to a SQL value.
//
// ToSQL must not modify its receiver. If the value cannot be represented, ToSQL
// must return a non-nil error and a nil Output rather than truncate, wrap
// around, or panic; use ConversionError to build one.
type ToSQL interface {
	ToSQL() (Output, error)
}

// Convert converts v to an Output. A nil v or a nil pointer is converted to
// SQL NULL.
//
// If conversion fails, the returned error will match ErrConversion with
// errors.Is along with whatever the error from v matches, and the returned
// Output will be nil.
func Convert(v ToSQL) (Output, error) {
	if isNil(v) {
		return FromValue(Null{}), nil
	}

	out, err := v.ToSQL()
	if err != nil {
		return nil, wrapConversion(err)
	}
	if out == nil {
		return nil, ConversionError(nil, "%T.ToSQL returned neither an output nor an error", v)
	}

	return out, nil
}

// Use converts v and calls fn with the result. The Output must not be used
// after fn returns. If conversion fails, fn is not called and the conversion
// error is returned; otherwise, the return value of fn is returned.
func Use(v ToSQL, fn func(Output) error) error {
	out, err := Convert(v)
	if err != nil {
		return err
	}
	return fn(out)
}

func isNil(v ToSQL) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
