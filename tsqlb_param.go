package tsqlb

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/mitranim/refut"
)

/*
Implemented by enum types whose values are sent to the database by name rather
than by their underlying number. The `.Enum` method is a marker and is never
called. Types such as `time.Duration` implement `fmt.Stringer` but are not
enums, and are passed through unchanged.
*/
type Enum interface {
	fmt.Stringer
	Enum()
}

/*
Coerces a host value into a form acceptable to SQL Server drivers:

  - Nil, including typed nil pointers and interfaces -> nil.
  - `uuid.Nil` -> nil, because the empty identifier stands for "no value".
  - `Enum` -> its name.
  - Everything else, including `bool` and `driver.Valuer`, is passed through.
*/
func ParamValue(val any) any {
	if refut.IsNil(val) {
		return nil
	}

	switch val := val.(type) {
	case uuid.UUID:
		if val == uuid.Nil {
			return nil
		}
		return val
	case *uuid.UUID:
		return ParamValue(*val)
	case bool, driver.Valuer:
		return val
	case Enum:
		return val.String()
	}
	return val
}

// Shortcut for `sql.Named(name, ParamValue(val))`.
func NamedArg(name string, val any) sql.NamedArg {
	return sql.Named(name, ParamValue(val))
}

/*
Converts a map of arguments into a sequence of `sql.NamedArg` sorted by name,
with values coerced via `ParamValue`. The output is suitable for passing to
`database/sql` query methods.
*/
func Args(dict map[string]any) []any {
	if len(dict) == 0 {
		return nil
	}

	keys := make([]string, 0, len(dict))
	for key := range dict {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys))
	for _, key := range keys {
		out = append(out, NamedArg(key, dict[key]))
	}
	return out
}
