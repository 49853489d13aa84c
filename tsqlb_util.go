package tsqlb

import (
	"database/sql"
	"fmt"
	r "reflect"
	"time"
	"unsafe"

	"github.com/mitranim/refut"
)

const (
	paramPrefix = '@'
	newline     = "\n"
	tagNameDb   = `db`
)

var (
	typeTime        = r.TypeOf((*time.Time)(nil)).Elem()
	sqlScannerRtype = r.TypeOf((*sql.Scanner)(nil)).Elem()

)

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed from
the standard library. Reasonably safe. Should not be used when the underlying
byte array is volatile.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

/*
Appends an operand of a predicate or a `CASE` result:

  - Nil -> `NULL`.
  - `Expr` -> its own rendering.
  - String -> as-is, because operands are usually column references or
    already-rendered SQL. Use `Text` for quoted string literals, and `Param`
    for parameters.
  - `fmt.Stringer` -> its string representation.
  - Anything else -> its `fmt` default representation.
*/
func appendAny(text []byte, val any) []byte {
	switch val := val.(type) {
	case nil:
		return append(text, `NULL`...)
	case Expr:
		return val.Append(text)
	case string:
		return append(text, val...)
	case fmt.Stringer:
		return append(text, val.String()...)
	default:
		return fmt.Append(text, val)
	}
}

// Deep-copies builder objects that may appear as operands. Everything else is
// treated as immutable.
func cloneAny(val any) any {
	switch val := val.(type) {
	case *Where:
		return val.Clone()
	case *Case:
		return val.Clone()
	case *Select:
		return val.Clone()
	case *With:
		return val.Clone()
	case Compare:
		return val.clone()
	case In:
		return val.clone()
	case Between:
		return val.clone()
	default:
		return val
	}
}

func cloneOp(val Op) Op {
	if val == nil {
		return nil
	}
	out, _ := cloneAny(val).(Op)
	return out
}

func cloneExpr(val Expr) Expr {
	if val == nil {
		return nil
	}
	out, _ := cloneAny(val).(Expr)
	return out
}

func copyStrings(val []string) []string {
	if val == nil {
		return nil
	}
	out := make([]string, len(val))
	copy(out, val)
	return out
}

func isScannableRtype(typ r.Type) bool {
	typ = refut.RtypeDeref(typ)
	return typ != nil && (typ == typeTime || r.PointerTo(typ).Implements(sqlScannerRtype))
}

// WTB more specific name.
func isStructType(typ r.Type) bool {
	return typ != nil && typ.Kind() == r.Struct && !isScannableRtype(typ)
}

func sfieldColumnName(sfield r.StructField) string {
	return refut.TagIdent(sfield.Tag.Get(tagNameDb))
}

func try(err error) {
	if err != nil {
		panic(err)
	}
}

func try1[A any](val A, err error) A {
	try(err)
	return val
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}
