//go:build zeroblob

package bind

import (
	"database/sql/driver"
	"fmt"

	"github.com/dekarrin/tosql"
)

// extendedValue binds a ZeroBlob as a zero-filled []byte of its length.
func extendedValue(out tosql.Output) (driver.Value, error) {
	zb, ok := out.(tosql.ZeroBlob)
	if !ok {
		return nil, fmt.Errorf("cannot bind output of type %T", out)
	}
	if zb.Len < 0 {
		return nil, fmt.Errorf("zero-filled blob length %d is negative", zb.Len)
	}
	return make([]byte, zb.Len), nil
}
