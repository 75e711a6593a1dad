package tosql

import (
	"database/sql/driver"
	"math"
	"reflect"
	"time"

	"github.com/dekarrin/tosql/value"
	"github.com/google/uuid"
)

// Uint64 is a uint64 that converts to an Owned Integer. Values above
// math.MaxInt64 do not fit in a SQL integer and fail with ErrOutOfRange.
type Uint64 uint64

func (u Uint64) ToSQL() (Output, error) {
	if u > math.MaxInt64 {
		return nil, ConversionError([]error{ErrOutOfRange}, "uint64 %d is larger than max SQL integer %d", uint64(u), int64(math.MaxInt64))
	}
	return FromValue(value.Int64(int64(u))), nil
}

// Timestamp is a time.Time that converts to an Owned Integer holding the
// number of seconds since the Unix epoch. Sub-second precision is dropped.
type Timestamp time.Time

func (ts Timestamp) SQLValue() value.Value {
	return value.Int64(time.Time(ts).Unix())
}

func (ts Timestamp) ToSQL() (Output, error) {
	return FromValue(ts), nil
}

// UUID is a uuid.UUID that converts to an Owned Text holding its canonical
// string form. The string is created during conversion, so there is nothing
// to borrow from.
type UUID uuid.UUID

func (u UUID) SQLValue() value.Value {
	return value.Text(uuid.UUID(u).String())
}

func (u UUID) ToSQL() (Output, error) {
	return FromValue(u), nil
}

// Valuer adapts a database/sql/driver.Valuer. The driver.Value it produces is
// converted to an Owned value of the matching kind; time.Time values become
// Unix timestamps as with Timestamp. A nil V converts to NULL.
//
// Errors from V.Value are returned as the cause of a conversion error. A
// driver.Value of any type not listed in the driver package fails with
// ErrUnsupported.
type Valuer struct {
	V driver.Valuer
}

func (dv Valuer) ToSQL() (Output, error) {
	if dv.V == nil {
		return FromValue(Null{}), nil
	}
	if rv := reflect.ValueOf(dv.V); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return FromValue(Null{}), nil
	}

	v, err := dv.V.Value()
	if err != nil {
		return nil, ConversionError([]error{err}, "%T.Value", dv.V)
	}

	switch typed := v.(type) {
	case nil:
		return FromValue(value.Null()), nil
	case int64:
		return FromValue(value.Int64(typed)), nil
	case float64:
		return FromValue(value.Float64(typed)), nil
	case bool:
		return FromValue(value.Bool(typed)), nil
	case string:
		return FromValue(value.Text(typed)), nil
	case []byte:
		return FromValue(value.Blob(typed)), nil
	case time.Time:
		return FromValue(Timestamp(typed)), nil
	default:
		return nil, ConversionError([]error{ErrUnsupported}, "%T.Value gave a %T", dv.V, v)
	}
}

// Of returns the ToSQL adapter for a plain Go value. v may be nil, a bool, any
// sized or unsized integer, a float32 or float64, a string, a []byte, a
// time.Time, a uuid.UUID, a value.Value or value.Ref, something that already
// implements ToSQL, or a driver.Valuer; or a pointer to any of those, with a
// nil pointer giving NULL.
//
// Integers are checked for range when converted, not by Of. Any other type
// gives an error matching ErrUnsupported and ErrConversion.
func Of(v any) (ToSQL, error) {
	switch typed := v.(type) {
	case nil:
		return Null{}, nil
	case ToSQL:
		return typed, nil
	case bool:
		return Bool(typed), nil
	case int:
		return Int64(typed), nil
	case int8:
		return Int32(typed), nil
	case int16:
		return Int32(typed), nil
	case int32:
		return Int32(typed), nil
	case int64:
		return Int64(typed), nil
	case uint:
		return Uint64(typed), nil
	case uint8:
		return Int32(typed), nil
	case uint16:
		return Int32(typed), nil
	case uint32:
		return Int64(typed), nil
	case uint64:
		return Uint64(typed), nil
	case float32:
		return Float64(typed), nil
	case float64:
		return Float64(typed), nil
	case string:
		return Text(typed), nil
	case []byte:
		return Blob(typed), nil
	case time.Time:
		return Timestamp(typed), nil
	case uuid.UUID:
		return UUID(typed), nil
	case value.Value:
		return Value{typed}, nil
	case value.Ref:
		return Ref{typed}, nil
	case driver.Valuer:
		return Valuer{V: typed}, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Null{}, nil
		}
		return Of(rv.Elem().Interface())
	}

	return nil, ConversionError([]error{ErrUnsupported}, "%T", v)
}
