package main

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dekarrin/tosql"
	"github.com/google/uuid"
)

// argParsers maps each KIND accepted on the command line to the function that
// turns its LITERAL into a convertible value.
var argParsers = map[string]func(lit string) (tosql.ToSQL, error){
	"null": func(lit string) (tosql.ToSQL, error) {
		if lit != "" {
			return nil, fmt.Errorf("null takes no literal")
		}
		return tosql.Null{}, nil
	},
	"none": func(lit string) (tosql.ToSQL, error) {
		if lit != "" {
			return nil, fmt.Errorf("none takes no literal")
		}
		return tosql.None[tosql.Text](), nil
	},
	"bool": func(lit string) (tosql.ToSQL, error) {
		b, err := strconv.ParseBool(lit)
		if err != nil {
			return nil, err
		}
		return tosql.Bool(b), nil
	},
	"int32": func(lit string) (tosql.ToSQL, error) {
		i, err := strconv.ParseInt(lit, 10, 32)
		if err != nil {
			return nil, err
		}
		return tosql.Int32(i), nil
	},
	"int": parseInt64,
	"int64": parseInt64,
	"uint": func(lit string) (tosql.ToSQL, error) {
		u, err := strconv.ParseUint(lit, 10, 64)
		if err != nil {
			return nil, err
		}
		return tosql.Uint64(u), nil
	},
	"real": func(lit string) (tosql.ToSQL, error) {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, err
		}
		return tosql.Float64(f), nil
	},
	"text": func(lit string) (tosql.ToSQL, error) {
		return tosql.Text(lit), nil
	},
	"blob": func(lit string) (tosql.ToSQL, error) {
		b, err := hex.DecodeString(lit)
		if err != nil {
			return nil, err
		}
		return tosql.Blob(b), nil
	},
	"uuid": func(lit string) (tosql.ToSQL, error) {
		id, err := uuid.Parse(lit)
		if err != nil {
			return nil, err
		}
		return tosql.UUID(id), nil
	},
	"time": func(lit string) (tosql.ToSQL, error) {
		t, err := time.Parse(time.RFC3339, lit)
		if err != nil {
			return nil, err
		}
		return tosql.Timestamp(t), nil
	},
}

func parseInt64(lit string) (tosql.ToSQL, error) {
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, err
	}
	return tosql.Int64(i), nil
}

// kindNames returns the KINDs accepted by parseArg in sorted order.
func kindNames() []string {
	names := make([]string, 0, len(argParsers))
	for k := range argParsers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// parseArg parses a command-line argument of the form KIND:LITERAL. KINDs
// that take no literal, such as null, may be given without the colon.
func parseArg(arg string) (tosql.ToSQL, error) {
	kind, lit, _ := strings.Cut(arg, ":")

	parse, ok := argParsers[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%q: unknown kind %q; must be one of %s", arg, kind, strings.Join(kindNames(), ", "))
	}

	v, err := parse(lit)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", arg, err)
	}
	return v, nil
}

// parseArgs parses every argument, stopping at the first that is invalid.
func parseArgs(args []string) ([]tosql.ToSQL, error) {
	parsed := make([]tosql.ToSQL, len(args))
	for i := range args {
		v, err := parseArg(args[i])
		if err != nil {
			return nil, err
		}
		parsed[i] = v
	}
	return parsed, nil
}
