package tsqlb

import (
	"fmt"
	r "reflect"

	"github.com/mitranim/refut"
)

// Column of a struct type, see `StructCols`.
type StructCol struct {
	Path   string
	Nested bool
}

/*
Returns the `db`-tagged columns of a struct type, in declaration order. Accepts
structs, struct pointers, struct slices, and struct slice pointers; nil values
are fine as long as they carry a type. Panics with `ErrInvalidInput` on other
inputs. Embedded structs are treated as part of the enclosing struct. Columns
of nested structs are prefixed with the parent column and a dot.
*/
func StructCols(dest any) []StructCol {
	rtype := r.TypeOf(dest)
	if rtype != nil {
		rtype = refut.RtypeDeref(rtype)
		if rtype.Kind() == r.Slice {
			rtype = refut.RtypeDeref(rtype.Elem())
		}
	}

	if rtype == nil || rtype.Kind() != r.Struct {
		panic(errExpectedStruct(rtype))
	}

	return appendStructCols(nil, rtype, ``)
}

func appendStructCols(out []StructCol, rtype r.Type, prefix string) []StructCol {
	err := refut.TraverseStructRtype(rtype, func(sfield r.StructField, _ []int) error {
		col := sfieldColumnName(sfield)
		if col == `` {
			return nil
		}

		path := prefix + col
		fieldRtype := refut.RtypeDeref(sfield.Type)
		if isStructType(fieldRtype) {
			out = appendStructCols(out, fieldRtype, path+`.`)
			return nil
		}

		out = append(out, StructCol{Path: path, Nested: prefix != ``})
		return nil
	})
	try(err)
	return out
}

/*
Scans a struct, accumulating fields tagged with `db` into a map suitable for
`Bind`. The input must be a struct or a struct pointer. A nil pointer is fine
and produces an empty non-nil map. Panics on other inputs. Treats embedded
structs as part of enclosing structs.
*/
func StructMap(input any) map[string]any {
	dict := map[string]any{}
	traverseStructDbFields(input, func(name string, value any) {
		dict[name] = value
	})
	return dict
}

/*
Scans a struct, converting fields tagged with `db` into a sequence of
`sql.NamedArg` in declaration order, with values coerced via `ParamValue`. The
input must be a struct or a struct pointer. A nil pointer is fine and produces
a nil result. Panics on other inputs. Treats embedded structs as part of
enclosing structs.
*/
func StructArgs(input any) []any {
	var args []any
	traverseStructDbFields(input, func(name string, value any) {
		args = append(args, NamedArg(name, value))
	})
	return args
}

func traverseStructDbFields(input any, fun func(string, any)) {
	rval := r.ValueOf(input)
	if !rval.IsValid() {
		panic(errExpectedStruct(nil))
	}

	rtype := refut.RtypeDeref(rval.Type())
	if rtype.Kind() != r.Struct {
		panic(errExpectedStruct(rtype))
	}

	if refut.IsRvalNil(rval) {
		return
	}

	err := refut.TraverseStructRval(rval, func(rval r.Value, sfield r.StructField, _ []int) error {
		col := sfieldColumnName(sfield)
		if col == `` {
			return nil
		}
		fun(col, rval.Interface())
		return nil
	})
	try(err)
}

func errExpectedStruct(rtype r.Type) Err {
	return ErrInvalidInput.while(`traversing struct for DB fields`).because(
		fmt.Errorf(`expected struct, got %v`, rtype),
	)
}
