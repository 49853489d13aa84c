package tsqlb

import (
	"errors"
)

// Variant tag of a `Field`.
type FieldKind byte

const (
	FieldPlain FieldKind = iota
	FieldSum
	FieldCount
	FieldMax
	FieldMin
	FieldAvg
	FieldCase
)

// Implement `fmt.Stringer` for debug purposes.
func (self FieldKind) String() string {
	switch self {
	case FieldPlain:
		return `Plain`
	case FieldSum:
		return `Sum`
	case FieldCount:
		return `Count`
	case FieldMax:
		return `Max`
	case FieldMin:
		return `Min`
	case FieldAvg:
		return `Avg`
	case FieldCase:
		return `Case`
	default:
		return ``
	}
}

/*
One projected output expression of a `Select`. `.Name` is the source expression
text, usually a column reference. `.Alias` is optional; when empty, the source
expression is also the display name. For `FieldCase`, the source is `.Case` and
`.Name` is ignored.

Rendering by kind:

	FieldPlain -> name
	FieldSum   -> COALESCE(SUM(name), 0)
	FieldCount -> COALESCE(COUNT(name), 0)
	FieldMax   -> MAX(name)
	FieldMin   -> MIN(name)
	FieldAvg   -> AVG(name)
	FieldCase  -> (CASE ... END)

followed by ` [alias]` when the alias is non-empty.
*/
type Field struct {
	Kind  FieldKind
	Name  string
	Alias string
	Case  *Case
}

/*
Key of the field within a statement: alias if present, otherwise name. Adding
another field with the same key replaces this one.
*/
func (self Field) Key() string {
	if self.Alias != `` {
		return self.Alias
	}
	return self.Name
}

/*
True for fields whose own rendering embeds the alias, rather than having it
attached by the projection list. Currently only `FieldCase`.
*/
func (self Field) Calculated() bool { return self.Kind == FieldCase }

// Renders the source expression without the alias.
func (self Field) Source() string { return bytesToMutableString(self.AppendSource(nil)) }

// Appends the source expression without the alias.
func (self Field) AppendSource(text []byte) []byte {
	switch self.Kind {
	case FieldPlain:
		return append(text, self.Name...)
	case FieldSum:
		return appendWrapped(text, `COALESCE(SUM(`, self.Name, `), 0)`)
	case FieldCount:
		return appendWrapped(text, `COALESCE(COUNT(`, self.Name, `), 0)`)
	case FieldMax:
		return appendWrapped(text, `MAX(`, self.Name, `)`)
	case FieldMin:
		return appendWrapped(text, `MIN(`, self.Name, `)`)
	case FieldAvg:
		return appendWrapped(text, `AVG(`, self.Name, `)`)
	case FieldCase:
		if self.Case == nil {
			panic(errMissingElse())
		}
		return self.Case.Append(text)
	default:
		panic(ErrInvalidInput.while(`rendering field`).because(
			errors.New(`unknown field kind`),
		))
	}
}

// Implement the `Expr` interface.
func (self Field) Append(text []byte) []byte {
	bui := Bui{self.AppendSource(text)}
	bui.Alias(self.Alias)
	return bui.Text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Field) String() string { return ExprString(self) }

// Returns a copy with a deep copy of `.Case`.
func (self Field) Clone() Field {
	self.Case = self.Case.Clone()
	return self
}

func appendWrapped(text []byte, prefix, infix, suffix string) []byte {
	text = append(text, prefix...)
	text = append(text, infix...)
	text = append(text, suffix...)
	return text
}

/*
Ordered collection of fields keyed by `Field.Key`. Iteration order is insertion
order. Adding a field with an existing key replaces the prior field in its
original position. The zero value is ready to use. Not safe for concurrent
mutation.
*/
type Fields struct {
	vals  []Field
	index map[string]int
}

// Adds or replaces the field.
func (self *Fields) Set(val Field) {
	key := val.Key()

	ind, ok := self.index[key]
	if ok {
		self.vals[ind] = val
		return
	}

	if self.index == nil {
		self.index = make(map[string]int, 8)
	}
	self.index[key] = len(self.vals)
	self.vals = append(self.vals, val)
}

// Returns the field with the given key, if any.
func (self *Fields) Get(key string) (Field, bool) {
	ind, ok := self.index[key]
	if !ok {
		return Field{}, false
	}
	return self.vals[ind], true
}

// True if a field with the given key exists.
func (self *Fields) Has(key string) bool {
	_, ok := self.index[key]
	return ok
}

// Returns the field count.
func (self *Fields) Len() int { return len(self.vals) }

// Returns the keys in insertion order.
func (self *Fields) Keys() []string {
	if len(self.vals) == 0 {
		return nil
	}
	out := make([]string, len(self.vals))
	for ind, val := range self.vals {
		out[ind] = val.Key()
	}
	return out
}

// Returns a copy of the fields in insertion order.
func (self *Fields) Slice() []Field {
	if len(self.vals) == 0 {
		return nil
	}
	out := make([]Field, len(self.vals))
	copy(out, self.vals)
	return out
}

// Removes all fields.
func (self *Fields) Clear() {
	self.vals = nil
	self.index = nil
}

// Returns a deep copy; see `Field.Clone`.
func (self *Fields) Clone() Fields {
	var out Fields
	for _, val := range self.vals {
		out.Set(val.Clone())
	}
	return out
}

/*
Renders the projection list: fields in insertion order, separated by a comma
and a newline. Renders `*` when empty.
*/
func (self *Fields) Append(text []byte) []byte {
	if len(self.vals) == 0 {
		return append(text, '*')
	}
	for ind, val := range self.vals {
		if ind > 0 {
			text = append(text, ","+newline...)
		}
		text = val.Append(text)
	}
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self *Fields) String() string { return ExprString(self) }

/*
Conditional expression. Renders as:

	(CASE
		WHEN <cond> THEN <result>
		...
		ELSE <default>
	END)

Branches are rendered in insertion order. The `ELSE` result is mandatory:
rendering a `Case` without one panics with `ErrMissingElseBranch`. Results are
rendered according to the operand rules: strings are emitted as-is, `Expr`
values render themselves, nil becomes `NULL`. Use `Text` for string literals.

Also implements `Op`, which allows using it as a predicate.
*/
type Case struct {
	whens   []caseWhen
	els     any
	hasElse bool
}

type caseWhen struct {
	cond Op
	then any
}

// Appends a `WHEN <cond> THEN <then>` branch.
func (self *Case) When(cond Op, then any) *Case {
	self.whens = append(self.whens, caseWhen{cond, then})
	return self
}

// Sets the `ELSE` result, replacing any previous one.
func (self *Case) Else(val any) *Case {
	self.els = val
	self.hasElse = true
	return self
}

// True if the `ELSE` result was set.
func (self *Case) HasElse() bool { return self != nil && self.hasElse }

// Returns the count of `WHEN` branches.
func (self *Case) Len() int {
	if self == nil {
		return 0
	}
	return len(self.whens)
}

// Implement the `Op` interface.
func (*Case) Kind() OpKind { return KindCase }

// Implement the `Expr` interface.
func (self *Case) Append(text []byte) []byte {
	if !self.HasElse() {
		panic(errMissingElse())
	}

	bui := Bui{text}
	bui.Str(`(CASE` + newline)

	for _, val := range self.whens {
		bui.Str("\tWHEN ")
		bui.Expr(val.cond)
		bui.Str(` THEN `)
		bui.Any(val.then)
		bui.Str(newline)
	}

	bui.Str("\tELSE ")
	bui.Any(self.els)
	bui.Str(newline)
	bui.Str(`END)`)
	return bui.Text
}

// Implement the `fmt.Stringer` interface. Panics if the else branch is missing.
func (self *Case) String() string { return ExprString(self) }

// Returns a deep copy. Nil input produces nil.
func (self *Case) Clone() *Case {
	if self == nil {
		return nil
	}
	out := &Case{els: cloneAny(self.els), hasElse: self.hasElse}
	if self.whens != nil {
		out.whens = make([]caseWhen, len(self.whens))
		for ind, val := range self.whens {
			out.whens[ind] = caseWhen{cloneOp(val.cond), cloneAny(val.then)}
		}
	}
	return out
}
