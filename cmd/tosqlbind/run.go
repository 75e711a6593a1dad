package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dekarrin/tosql"
	"github.com/dekarrin/tosql/bind/sqlite"
	"github.com/dekarrin/tosql/logging"
	"github.com/dekarrin/tosql/value"
)

// bindAll stores each of vals in st, one row per value with slots numbered
// from 1, and returns the rows as read back from the database. A value that
// fails to convert stops the run; rows stored before it are kept.
func bindAll(ctx context.Context, st *sqlite.Store, vals []tosql.ToSQL, log logging.Logger) ([]sqlite.Param, error) {
	var stored []sqlite.Param

	for i := range vals {
		slot := int64(i + 1)

		id, err := st.Params().Insert(ctx, slot, vals[i])
		if err != nil {
			return stored, fmt.Errorf("slot %d: %w", slot, err)
		}

		p, err := st.Params().Get(ctx, id)
		if err != nil {
			return stored, fmt.Errorf("slot %d: read back: %w", slot, err)
		}
		log.Debugf("slot %d stored as row %d: %s", slot, id, p.Value)

		stored = append(stored, p)
	}

	return stored, nil
}

// printParams writes one line per param: its slot, a tab, and the value as it
// was read back.
func printParams(w io.Writer, params []sqlite.Param) error {
	for _, p := range params {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", p.Slot, p.Value); err != nil {
			return err
		}
	}
	return nil
}

func printValues(w io.Writer, vals []value.Value) error {
	for i, v := range vals {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i+1, v); err != nil {
			return err
		}
	}
	return nil
}

func paramValues(params []sqlite.Param) []value.Value {
	vals := make([]value.Value, len(params))
	for i := range params {
		vals[i] = params[i].Value
	}
	return vals
}
