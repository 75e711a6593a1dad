//go:build zeroblob

package main

import (
	"strconv"

	"github.com/dekarrin/tosql"
)

func init() {
	argParsers["zeroblob"] = func(lit string) (tosql.ToSQL, error) {
		n, err := strconv.ParseInt(lit, 10, 32)
		if err != nil {
			return nil, err
		}
		return tosql.ZeroFill(n), nil
	}
}
