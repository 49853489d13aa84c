package tsqlb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ha1tch/tsqlparser"
	"github.com/ha1tch/tsqlparser/token"
	"github.com/mitranim/sqlp"
)

/*
If true (default), arguments not referenced by any placeholder cause errors in
`Bind` and `BindStruct`. If false, unused arguments are ok. Turning this off
can be convenient in development, when changing queries rapidly.
*/
var CheckUnused = true

/*
Returns the names of the distinct `@name` placeholders referenced by the given
T-SQL text, without the leading `@`, in order of first appearance. Uses a real
T-SQL lexer, so string literals, comments, bracketed identifiers, and
`@@global` variables are ignored:

	Placeholders(`SELECT '@no' -- @no
	WHERE a = @one AND b = @@ROWCOUNT AND c = @one`)
	// []string{`one`}
*/
func Placeholders(src string) []string {
	var out []string
	var seen map[string]struct{}

	for _, tok := range tsqlparser.Tokenize(src) {
		if tok.Type == token.EOF {
			break
		}
		if tok.Type != token.VARIABLE {
			continue
		}

		name := strings.TrimPrefix(tok.Literal, string(paramPrefix))
		if name == `` {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		if seen == nil {
			seen = map[string]struct{}{}
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

/*
Renders the statement and pairs each of its `@name` placeholders with the
argument of the same name from the given map, returning the text and a
sequence of `sql.NamedArg` in order of first appearance, with values coerced
via `ParamValue`. Example:

	text, args, err := Bind(stmt, map[string]any{`id`: 10})
	rows, err := db.QueryContext(ctx, text, args...)

Fails with `ErrMissingArgument` when a placeholder has no argument. Fails with
`ErrUnusedArgument` when an argument has no placeholder, unless `CheckUnused`
is false. Render panics are also converted into errors.
*/
func Bind(stmt Expr, dict map[string]any) (text string, args []any, err error) {
	defer rec(&err)

	if stmt != nil {
		text = string(stmt.Append(nil))
	}
	names := Placeholders(text)

	if len(names) > 0 {
		args = make([]any, 0, len(names))
	}
	for _, name := range names {
		val, ok := dict[name]
		if !ok {
			panic(ErrMissingArgument.while(`binding arguments`).because(
				fmt.Errorf(`missing named argument %q`, name),
			))
		}
		args = append(args, NamedArg(name, val))
	}

	if CheckUnused {
		checkUnused(names, dict)
	}
	return
}

// Same as `Bind` but with arguments obtained from a struct via `StructMap`.
func BindStruct(stmt Expr, src any) (string, []any, error) {
	dict, err := structMapCatch(src)
	if err != nil {
		return ``, nil, err
	}
	return Bind(stmt, dict)
}

func structMapCatch(src any) (out map[string]any, err error) {
	defer rec(&err)
	out = StructMap(src)
	return
}

func checkUnused(names []string, dict map[string]any) {
	if len(dict) == 0 {
		return
	}

	used := make(map[string]struct{}, len(names))
	for _, name := range names {
		used[name] = struct{}{}
	}

	var unused []string
	for key := range dict {
		if _, ok := used[key]; !ok {
			unused = append(unused, key)
		}
	}
	if len(unused) == 0 {
		return
	}

	sort.Strings(unused)
	panic(ErrUnusedArgument.while(`binding arguments`).because(
		fmt.Errorf(`unused named arguments %q`, unused),
	))
}

/*
Converts a fragment using portable `:name` parameters into the T-SQL `@name`
form. String literals, quoted identifiers, comments, and `::` casts are left
untouched. Useful for sharing hand-written fragments with code targeting other
databases:

	Named(`a = :one AND b = ':not_a_param'`)
	// a = @one AND b = ':not_a_param'

Panics with `ErrUnexpectedParameter` on ordinal parameters such as `$1`, which
have no T-SQL equivalent.
*/
func Named(src string) string {
	tokenizer := sqlp.Tokenizer{Source: src}
	buf := make([]byte, 0, len(src))

	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}

		switch node := node.(type) {
		case sqlp.NodeNamedParam:
			buf = append(buf, paramPrefix)
			buf = append(buf, string(node)...)

		case sqlp.NodeOrdinalParam:
			panic(ErrUnexpectedParameter.while(`converting named parameters`).because(
				fmt.Errorf(`expected only named params, got ordinal param %v`, node),
			))

		default:
			node.Append(&buf)
		}
	}

	return string(buf)
}

// Shortcut for `Raw(Named(src))`.
func RawNamed(src string) Raw { return Raw(Named(src)) }
