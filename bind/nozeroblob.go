//go:build !zeroblob

package bind

import (
	"database/sql/driver"
	"fmt"

	"github.com/dekarrin/tosql"
)

func extendedValue(out tosql.Output) (driver.Value, error) {
	return nil, fmt.Errorf("cannot bind output of type %T", out)
}
