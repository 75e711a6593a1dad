package tosql

// Option is a T that may be absent. An absent Option converts to SQL NULL and
// a present one converts exactly as the T it holds would, errors included.
//
// Options nest; an Option[Option[T]] is NULL if either level is absent. The
// zero value of Option is absent.
type Option[T ToSQL] struct {
	val T
	ok  bool
}

// Some returns a present Option holding v.
func Some[T ToSQL](v T) Option[T] {
	return Option[T]{val: v, ok: true}
}

// None returns an absent Option.
func None[T ToSQL]() Option[T] {
	return Option[T]{}
}

// FromPtr returns an Option holding *p, or an absent Option if p is nil.
func FromPtr[T ToSQL](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the held value and whether there is one.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.ok
}

// IsSome returns whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// ToSQL converts o. The result of converting a present Option is passed back
// unaltered from the held value's ToSQL. A present Option holding a nil
// pointer or nil interface converts to NULL, as it would in Convert.
func (o Option[T]) ToSQL() (Output, error) {
	if !o.ok || isNil(o.val) {
		return FromValue(Null{}), nil
	}
	return o.val.ToSQL()
}
