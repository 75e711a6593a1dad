// Package sqlite provides a SQLite store for converted values, using the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dekarrin/tosql/logging"
	"modernc.org/sqlite"
)

var (
	ErrConstraintViolation = errors.New("a uniqueness constraint was violated")
	ErrNotFound            = errors.New("the requested entity could not be found")
	ErrDecodingFailure     = errors.New("column could not be decoded to a SQL value")
)

// DefaultFile is the name of the database file used when Open is given none.
const DefaultFile = "params.db"

// WrapDBError wraps an error from the SQLite engine into one that can be
// checked against the errors in this package. It should be called on any
// error returned from SQLite before a repo passes the error back to a caller.
// Apart from constraint violations, the returned error still wraps the
// original *sqlite.Error.
func WrapDBError(err error) error {
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		primaryCode := sqliteErr.Code() & 0xff
		if primaryCode == 19 {
			return fmt.Errorf("%w: %s", ErrConstraintViolation, err.Error())
		}
		if primaryCode == 1 {
			// this is a generic error and thus the string is not descriptive,
			// so preserve the original error instead
			return err
		}
		return fmt.Errorf("%s: %w", sqlite.ErrorCodeString[sqliteErr.Code()], err)
	} else if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Store is a SQLite database holding bound parameters.
//
// Its zero-value should not be used; call Open to get a Store ready for use.
type Store struct {
	db         *sql.DB
	dbFilename string

	params *ParamsDB
}

// Open opens the SQLite database file in storageDir, creating it and its
// tables if needed. If file is empty, DefaultFile is used. log receives
// per-parameter binding messages; it may be nil.
func Open(storageDir, file string, log logging.Logger) (*Store, error) {
	if file == "" {
		file = DefaultFile
	}

	st := &Store{
		dbFilename: file,
	}

	fileName := filepath.Join(storageDir, st.dbFilename)

	var err error
	st.db, err = sql.Open("sqlite", fileName)
	if err != nil {
		return nil, WrapDBError(err)
	}

	st.params = NewParamsDB(st.db, log)
	if err := st.params.init(); err != nil {
		st.db.Close()
		return nil, fmt.Errorf("%s: %w", st.dbFilename, err)
	}

	return st, nil
}

// Params returns the repository of bound parameters.
func (s *Store) Params() *ParamsDB {
	return s.params
}

// DB returns the underlying connection pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%s: %w", s.dbFilename, err)
	}
	return nil
}
