package value

// Ref is a borrowed SQL value. Text and blob data in a Ref is not copied from
// its source; the Ref is only valid while that source is alive and unmodified.
// The zero Ref is SQL NULL.
type Ref struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    []byte
}

// NullRef returns a Ref of KindNull.
func NullRef() Ref {
	return Ref{}
}

// BoolRef returns a Ref of KindBoolean.
func BoolRef(b bool) Ref {
	return Bool(b).View()
}

// IntegerRef returns a Ref of KindInteger.
func IntegerRef(i int64) Ref {
	return Ref{kind: KindInteger, i: i}
}

// RealRef returns a Ref of KindReal.
func RealRef(f float64) Ref {
	return Ref{kind: KindReal, f: f}
}

// TextRef returns a Ref of KindText over s.
func TextRef(s string) Ref {
	return Ref{kind: KindText, s: s}
}

// BlobRef returns a Ref of KindBlob that views b directly. Changes made to b
// after the call are visible through the Ref.
func BlobRef(b []byte) Ref {
	return Ref{kind: KindBlob, b: b}
}

// Kind returns the kind of data in r.
func (r Ref) Kind() Kind {
	return r.kind
}

// IsNull returns whether r is SQL NULL.
func (r Ref) IsNull() bool {
	return r.kind == KindNull
}

// Bool returns the boolean viewed by r. ok is false if r is not KindBoolean.
func (r Ref) Bool() (b bool, ok bool) {
	return r.i != 0, r.kind == KindBoolean
}

// Int64 returns the integer viewed by r. ok is false if r is not KindInteger.
func (r Ref) Int64() (i int64, ok bool) {
	if r.kind != KindInteger {
		return 0, false
	}
	return r.i, true
}

// Float64 returns the float viewed by r. ok is false if r is not KindReal.
func (r Ref) Float64() (f float64, ok bool) {
	if r.kind != KindReal {
		return 0, false
	}
	return r.f, true
}

// Text returns the string viewed by r. ok is false if r is not KindText.
func (r Ref) Text() (s string, ok bool) {
	if r.kind != KindText {
		return "", false
	}
	return r.s, true
}

// Blob returns the bytes viewed by r. ok is false if r is not KindBlob. The
// returned slice is the source's storage.
func (r Ref) Blob() (b []byte, ok bool) {
	if r.kind != KindBlob {
		return nil, false
	}
	return r.b, true
}

// ToOwned returns a Value holding a copy of r's data. The result stays valid
// after r's source is gone.
func (r Ref) ToOwned() Value {
	if r.kind == KindBlob {
		return Blob(r.b)
	}
	return Value{kind: r.kind, i: r.i, f: r.f, s: r.s}
}

// SQLRef returns r.
func (r Ref) SQLRef() Ref {
	return r
}

// Equal returns whether other is of the same Kind as r and views the same
// data. Two Refs over different memory holding the same bytes are Equal.
func (r Ref) Equal(other Ref) bool {
	return equal(r.kind, r.i, r.f, r.s, r.b, other.kind, other.i, other.f, other.s, other.b)
}

func (r Ref) String() string {
	return format(r.kind, r.i, r.f, r.s, r.b)
}
