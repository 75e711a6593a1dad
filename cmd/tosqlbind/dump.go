package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/rezi/v2"
	"github.com/dekarrin/tosql/bind/sqlite"
	"github.com/dekarrin/tosql/value"
)

// writeDump writes vals to w as a REZI-encoded count followed by each value.
func writeDump(w io.Writer, vals []value.Value) error {
	data := rezi.MustEnc(len(vals))
	for i := range vals {
		enc, err := rezi.Enc(vals[i])
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		data = append(data, enc...)
	}

	_, err := w.Write(data)
	return err
}

// readDump reads values written by writeDump.
func readDump(r io.Reader) ([]value.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var count int
	n, err := rezi.Dec(data, &count)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	data = data[n:]
	if count < 0 {
		return nil, fmt.Errorf("count: negative count %d", count)
	}

	var vals []value.Value
	for i := 0; i < count; i++ {
		var v value.Value
		n, err := rezi.Dec(data, &v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		data = data[n:]
		vals = append(vals, v)
	}

	return vals, nil
}

func writeDumpFile(file string, params []sqlite.Param) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	if err := writeDump(f, paramValues(params)); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", file, err)
	}
	return f.Close()
}

func printDumpFile(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	vals, err := readDump(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return printValues(os.Stdout, vals)
}
