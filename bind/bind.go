// Package bind attaches converted values to the parameters of SQL statements
// run through database/sql.
//
// Every parameter is converted with tosql.Convert before any of them are
// given to the database, so a parameter that fails to convert stops the whole
// statement. Borrowed blob data is either copied out (Args, DriverValue) or
// handed to the driver only for the duration of the call that runs the
// statement (Binder), so it never outlives the value it was borrowed from.
package bind

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/dekarrin/tosql"
	"github.com/dekarrin/tosql/logging"
	"github.com/dekarrin/tosql/value"
)

// Execer runs statements. *sql.DB, *sql.Tx, and *sql.Conn all satisfy it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DriverValue gives the driver.Value for out. Booleans become the int64 0 or
// 1, and blobs are always non-nil so that an empty blob is not bound as NULL.
// Blob data in a Borrowed output is copied, so the result is safe to keep
// after the converted value is gone.
func DriverValue(out tosql.Output) (driver.Value, error) {
	return driverValue(out, true)
}

// Args converts each of params and returns the results as driver values ready
// to give to a database/sql query method. If any param fails to convert, Args
// returns nil and an error naming the 1-based position of the param.
func Args(params ...tosql.ToSQL) ([]any, error) {
	return convertAll(params, true, nil)
}

// Binder runs statements against DB with parameters given as tosql.ToSQL
// values. If Log is nil, nothing is logged.
type Binder struct {
	DB  Execer
	Log logging.Logger
}

// Exec converts params and executes query with them.
func (b Binder) Exec(ctx context.Context, query string, params ...tosql.ToSQL) (sql.Result, error) {
	args, err := convertAll(params, false, b.logger())
	if err != nil {
		return nil, err
	}
	return b.DB.ExecContext(ctx, query, args...)
}

// Query converts params and runs query with them.
func (b Binder) Query(ctx context.Context, query string, params ...tosql.ToSQL) (*sql.Rows, error) {
	args, err := convertAll(params, false, b.logger())
	if err != nil {
		return nil, err
	}
	return b.DB.QueryContext(ctx, query, args...)
}

// QueryRow converts params and runs query with them. Unlike
// sql.DB.QueryRowContext, a conversion failure is returned directly instead
// of being deferred to Scan.
func (b Binder) QueryRow(ctx context.Context, query string, params ...tosql.ToSQL) (*sql.Row, error) {
	args, err := convertAll(params, false, b.logger())
	if err != nil {
		return nil, err
	}
	return b.DB.QueryRowContext(ctx, query, args...), nil
}

func (b Binder) logger() logging.Logger {
	if b.Log == nil {
		return logging.NoOpLogger{}
	}
	return b.Log
}

// convertAll converts every param before returning any. If copyBlobs is false,
// blob args may alias the params and must be consumed before they change.
func convertAll(params []tosql.ToSQL, copyBlobs bool, log logging.Logger) ([]any, error) {
	if log == nil {
		log = logging.NoOpLogger{}
	}

	args := make([]any, len(params))
	for i := range params {
		out, err := tosql.Convert(params[i])
		if err != nil {
			log.Errorf("parameter %d: %s", i+1, err)
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}

		dv, err := driverValue(out, copyBlobs)
		if err != nil {
			log.Errorf("parameter %d: %s", i+1, err)
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		log.Tracef("parameter %d: %s", i+1, out)

		args[i] = dv
	}

	return args, nil
}

func driverValue(out tosql.Output, copyBlobs bool) (driver.Value, error) {
	switch o := out.(type) {
	case tosql.Borrowed:
		return refValue(o.Ref, copyBlobs), nil
	case tosql.Owned:
		return refValue(o.Value.View(), false), nil
	case nil:
		return nil, fmt.Errorf("no output to bind")
	default:
		return extendedValue(out)
	}
}

func refValue(r value.Ref, copyBlob bool) driver.Value {
	switch r.Kind() {
	case value.KindBoolean:
		if b, _ := r.Bool(); b {
			return int64(1)
		}
		return int64(0)
	case value.KindInteger:
		i, _ := r.Int64()
		return i
	case value.KindReal:
		f, _ := r.Float64()
		return f
	case value.KindText:
		s, _ := r.Text()
		return s
	case value.KindBlob:
		b, _ := r.Blob()
		if copyBlob || b == nil {
			cp := make([]byte, len(b))
			copy(cp, b)
			return cp
		}
		return b
	default:
		return nil
	}
}
