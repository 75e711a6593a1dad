// Package value contains the engine-neutral SQL value model used by tosql. A
// SQL value is one of a closed set of Kinds and comes in two forms: Value,
// which owns its storage, and Ref, which is a view into storage owned by
// something else.
//
// A Ref must not be used after the memory it views is released or modified.
// Call Ref.ToOwned to get a Value that is safe to retain.
package value

import (
	"bytes"
	"math"
)

// Value is a SQL value that owns its data. The zero Value is SQL NULL.
//
// Value should be treated as immutable; the Blob accessor returns the held
// slice itself rather than a copy.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    []byte
}

// Null returns a Value of KindNull.
func Null() Value {
	return Value{}
}

// Bool returns a Value of KindBoolean.
func Bool(b bool) Value {
	v := Value{kind: KindBoolean}
	if b {
		v.i = 1
	}
	return v
}

// Int64 returns a Value of KindInteger.
func Int64(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// Int32 returns a Value of KindInteger.
func Int32(i int32) Value {
	return Value{kind: KindInteger, i: int64(i)}
}

// Float64 returns a Value of KindReal.
func Float64(f float64) Value {
	return Value{kind: KindReal, f: f}
}

// Text returns a Value of KindText.
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

// Blob returns a Value of KindBlob holding a copy of b. The held slice is
// never nil, even when b is.
func Blob(b []byte) Value {
	owned := make([]byte, len(b))
	copy(owned, b)
	return Value{kind: KindBlob, b: owned}
}

// Kind returns the kind of data in v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns whether v is SQL NULL.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean held by v. ok is false if v is not KindBoolean.
func (v Value) Bool() (b bool, ok bool) {
	return v.i != 0, v.kind == KindBoolean
}

// Int64 returns the integer held by v. ok is false if v is not KindInteger.
func (v Value) Int64() (i int64, ok bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.i, true
}

// Float64 returns the float held by v. ok is false if v is not KindReal.
func (v Value) Float64() (f float64, ok bool) {
	if v.kind != KindReal {
		return 0, false
	}
	return v.f, true
}

// Text returns the string held by v. ok is false if v is not KindText.
func (v Value) Text() (s string, ok bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

// Blob returns the bytes held by v. ok is false if v is not KindBlob. The
// returned slice is v's own storage and must not be modified.
func (v Value) Blob() (b []byte, ok bool) {
	if v.kind != KindBlob {
		return nil, false
	}
	return v.b, true
}

// View returns a Ref over v's data. It does not copy; the Ref is valid for as
// long as v is.
func (v Value) View() Ref {
	return Ref{kind: v.kind, i: v.i, f: v.f, s: v.s, b: v.b}
}

// SQLValue returns v. It allows a Value to be given anywhere an owned value
// source is accepted.
func (v Value) SQLValue() Value {
	return v
}

// SQLRef is the same as View.
func (v Value) SQLRef() Ref {
	return v.View()
}

// Equal returns whether other is of the same Kind as v and holds the same
// data. Any two NaN Reals are Equal.
func (v Value) Equal(other Value) bool {
	return equal(v.kind, v.i, v.f, v.s, v.b, other.kind, other.i, other.f, other.s, other.b)
}

func (v Value) String() string {
	return format(v.kind, v.i, v.f, v.s, v.b)
}

func equal(k1 Kind, i1 int64, f1 float64, s1 string, b1 []byte, k2 Kind, i2 int64, f2 float64, s2 string, b2 []byte) bool {
	if k1 != k2 {
		return false
	}

	switch k1 {
	case KindBoolean, KindInteger:
		return i1 == i2
	case KindReal:
		return f1 == f2 || (math.IsNaN(f1) && math.IsNaN(f2))
	case KindText:
		return s1 == s2
	case KindBlob:
		return bytes.Equal(b1, b2)
	default:
		return true
	}
}
