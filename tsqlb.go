package tsqlb

/*
Short for "expression". Every renderable value in this package implements this
interface. Appends its SQL text to the provided buffer and returns the result.
Implementations are allowed to panic with `Err` on invalid state. Use `Render`
to convert such panics into errors.

Most types in this package also implement `fmt.Stringer`. Their `.String`
methods are equivalent to `.Append(nil)` and may also panic.
*/
type Expr interface {
	Append([]byte) []byte
}

/*
Renders an arbitrary expression to a string, converting render panics into
errors. Nil input produces an empty string and no error. This is the intended
entry point for apps that insist on errors-as-values:

	text, err := tsqlb.Render(stmt)
*/
func Render(val Expr) (out string, err error) {
	defer rec(&err)
	if val != nil {
		out = string(val.Append(nil))
	}
	return
}

// Same as `Render` but panics on error.
func MustRender(val Expr) string { return try1(Render(val)) }

/*
Tiny shortcut for encoding an `Expr` to a string by using its `.Append` method,
without paying for a string-to-byte conversion. Used internally by most `Expr`
implementations. Exported because it's handy for defining new types.
*/
func ExprString(val Expr) string {
	if val != nil {
		return bytesToMutableString(val.Append(nil))
	}
	return ``
}
