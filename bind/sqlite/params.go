package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dekarrin/tosql"
	"github.com/dekarrin/tosql/bind"
	"github.com/dekarrin/tosql/logging"
	"github.com/dekarrin/tosql/value"
)

// Param is a single stored parameter.
type Param struct {
	ID    int64
	Slot  int64
	Value value.Value
}

// ParamsDB stores converted values in the params table. The val column has no
// declared type, so SQLite keeps each value in the storage class it was bound
// with. Booleans are stored as the integers 0 and 1 and read back as
// integers.
type ParamsDB struct {
	DB     *sql.DB
	binder bind.Binder
}

// NewParamsDB returns a ParamsDB that runs its statements on db. It does not
// create the params table.
func NewParamsDB(db *sql.DB, log logging.Logger) *ParamsDB {
	return &ParamsDB{
		DB:     db,
		binder: bind.Binder{DB: db, Log: log},
	}
}

func (repo *ParamsDB) init() error {
	_, err := repo.DB.Exec(`CREATE TABLE IF NOT EXISTS params (
		id INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
		slot INTEGER NOT NULL,
		val
	);`)
	if err != nil {
		return WrapDBError(err)
	}

	return nil
}

// Insert converts v and stores it under slot. It returns the ID of the new
// row. A conversion failure is returned as-is and nothing is stored.
func (repo *ParamsDB) Insert(ctx context.Context, slot int64, v tosql.ToSQL) (int64, error) {
	res, err := repo.binder.Exec(ctx, `INSERT INTO params (slot, val) VALUES (?, ?);`,
		tosql.Int64(slot),
		v,
	)
	if err != nil {
		return 0, WrapDBError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, WrapDBError(err)
	}

	return id, nil
}

// Get returns the parameter with the given ID.
func (repo *ParamsDB) Get(ctx context.Context, id int64) (Param, error) {
	p := Param{ID: id}

	row, err := repo.binder.QueryRow(ctx, `SELECT slot, typeof(val), val FROM params WHERE id = ?;`,
		tosql.Int64(id),
	)
	if err != nil {
		return p, err
	}

	var storageClass string
	var raw any
	err = row.Scan(&p.Slot, &storageClass, &raw)
	if err != nil {
		return p, WrapDBError(err)
	}

	p.Value, err = decodeColumn(storageClass, raw)
	if err != nil {
		return p, fmt.Errorf("param %d: %w", id, err)
	}

	return p, nil
}

// All returns every stored parameter ordered by ID.
func (repo *ParamsDB) All(ctx context.Context) ([]Param, error) {
	rows, err := repo.DB.QueryContext(ctx, `SELECT id, slot, typeof(val), val FROM params ORDER BY id;`)
	if err != nil {
		return nil, WrapDBError(err)
	}
	defer rows.Close()

	var all []Param

	for rows.Next() {
		var p Param
		var storageClass string
		var raw any
		err = rows.Scan(
			&p.ID,
			&p.Slot,
			&storageClass,
			&raw,
		)
		if err != nil {
			return nil, WrapDBError(err)
		}

		p.Value, err = decodeColumn(storageClass, raw)
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", p.ID, err)
		}

		all = append(all, p)
	}

	if err := rows.Err(); err != nil {
		return all, WrapDBError(err)
	}

	return all, nil
}

// Delete removes the parameter with the given ID.
func (repo *ParamsDB) Delete(ctx context.Context, id int64) error {
	res, err := repo.binder.Exec(ctx, `DELETE FROM params WHERE id = ?;`, tosql.Int64(id))
	if err != nil {
		return WrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return WrapDBError(err)
	}
	if rowsAff < 1 {
		return ErrNotFound
	}

	return nil
}

// decodeColumn turns a column read with typeof() alongside it back into a
// value.Value.
func decodeColumn(storageClass string, raw any) (value.Value, error) {
	switch storageClass {
	case "null":
		return value.Null(), nil
	case "integer":
		if i, ok := raw.(int64); ok {
			return value.Int64(i), nil
		}
	case "real":
		if f, ok := raw.(float64); ok {
			return value.Float64(f), nil
		}
	case "text":
		switch s := raw.(type) {
		case string:
			return value.Text(s), nil
		case []byte:
			return value.Text(string(s)), nil
		}
	case "blob":
		switch b := raw.(type) {
		case []byte:
			return value.Blob(b), nil
		case nil:
			return value.Blob(nil), nil
		}
	}

	return value.Value{}, fmt.Errorf("%w: %s column holds a %T", ErrDecodingFailure, storageClass, raw)
}
