package tosql

import (
	"github.com/dekarrin/tosql/value"
)

// Output is the result of converting a value to SQL. Every Output is exactly
// one of Borrowed or Owned, or ZeroBlob when built with the zeroblob tag. Use
// a type switch to find out which:
//
//	switch o := out.(type) {
//	case tosql.Borrowed:
//		// o.Ref is only valid while the converted value is
//	case tosql.Owned:
//		// o.Value may be kept
//	}
//
// No types outside of this package implement Output.
//
// An Output is itself a ToSQL that converts to itself, so an Output passed
// back through conversion keeps its case and payload.
type Output interface {
	ToSQL

	// String gives a debug rendering of the Output, e.g.
	// "Owned(Integer(42))".
	String() string

	isOutput()
}

// Borrowed is an Output whose Ref views memory owned by the value that was
// converted. It must be consumed before that value is released or modified
// and must not be retained past that point.
type Borrowed struct {
	Ref value.Ref
}

func (Borrowed) isOutput() {}

// ToSQL returns b.
func (b Borrowed) ToSQL() (Output, error) {
	return b, nil
}

func (b Borrowed) String() string {
	return "Borrowed(" + b.Ref.String() + ")"
}

// Owned is an Output that holds its own Value. It is always safe to retain.
type Owned struct {
	Value value.Value
}

func (Owned) isOutput() {}

// ToSQL returns o.
func (o Owned) ToSQL() (Output, error) {
	return o, nil
}

func (o Owned) String() string {
	return "Owned(" + o.Value.String() + ")"
}

// RefSource is anything that can give a borrowed view of itself as a SQL
// value.
type RefSource interface {
	SQLRef() value.Ref
}

// ValueSource is anything that can give itself as an owned SQL value.
type ValueSource interface {
	SQLValue() value.Value
}

// FromRef creates a Borrowed Output from the view given by src. Nothing is
// copied.
//
// This is the only way that the default ToSQL implementations create a
// Borrowed Output; a new type that wishes to convert without copying needs
// only a SQLRef method.
func FromRef[S RefSource](src S) Output {
	return Borrowed{Ref: src.SQLRef()}
}

// FromValue creates an Owned Output from the value given by src.
//
// This is the only way that the default ToSQL implementations create an Owned
// Output; a new type that converts to an owned value needs only a SQLValue
// method.
func FromValue[S ValueSource](src S) Output {
	return Owned{Value: src.SQLValue()}
}
