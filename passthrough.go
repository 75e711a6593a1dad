package tosql

import (
	"github.com/dekarrin/tosql/value"
)

// Value wraps a value.Value that is already in SQL form so it can be passed
// where a ToSQL is expected. It converts to a Borrowed view over the wrapped
// Value's own data.
type Value struct {
	value.Value
}

func (v Value) ToSQL() (Output, error) {
	return FromRef(v.Value), nil
}

// Ref wraps a value.Ref so it can be passed where a ToSQL is expected. It
// converts to a Borrowed holding the same view.
type Ref struct {
	value.Ref
}

func (r Ref) ToSQL() (Output, error) {
	return FromRef(r.Ref), nil
}
