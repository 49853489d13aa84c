package tsqlb

import (
	"errors"
)

/*
Variant tag of an `Op`. Used by `(*Where).OfKind` to introspect previously added
predicates.
*/
type OpKind byte

const (
	KindAnd OpKind = iota + 1
	KindOr
	KindNot
	KindIsNull
	KindIsNotNull
	KindCompare
	KindBetween
	KindIn
	KindContains
	KindWhere
	KindCase
)

// Implement `fmt.Stringer` for debug purposes.
func (self OpKind) String() string {
	switch self {
	case KindAnd:
		return `And`
	case KindOr:
		return `Or`
	case KindNot:
		return `Not`
	case KindIsNull:
		return `IsNull`
	case KindIsNotNull:
		return `IsNotNull`
	case KindCompare:
		return `Compare`
	case KindBetween:
		return `Between`
	case KindIn:
		return `In`
	case KindContains:
		return `Contains`
	case KindWhere:
		return `Where`
	case KindCase:
		return `Case`
	default:
		return ``
	}
}

/*
Short for "operator". One node of a boolean predicate sequence: a connective,
a comparison, a null test, a range test, a membership test, a full-text test,
or a nested expression. The set of implementations is closed; each reports its
variant via `.Kind`.
*/
type Op interface {
	Expr
	Kind() OpKind
}

// Bare `AND` token.
type And struct{}

// Implement the `Op` interface.
func (And) Kind() OpKind { return KindAnd }

// Implement the `Expr` interface.
func (And) Append(text []byte) []byte { return append(text, `AND`...) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (And) String() string { return `AND` }

// Bare `OR` token.
type Or struct{}

// Implement the `Op` interface.
func (Or) Kind() OpKind { return KindOr }

// Implement the `Expr` interface.
func (Or) Append(text []byte) []byte { return append(text, `OR`...) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (Or) String() string { return `OR` }

// Bare `NOT` token.
type Not struct{}

// Implement the `Op` interface.
func (Not) Kind() OpKind { return KindNot }

// Implement the `Expr` interface.
func (Not) Append(text []byte) []byte { return append(text, `NOT`...) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (Not) String() string { return `NOT` }

// Renders `<field> IS NULL`.
type IsNull struct{ Field string }

// Implement the `Op` interface.
func (IsNull) Kind() OpKind { return KindIsNull }

// Implement the `Expr` interface.
func (self IsNull) Append(text []byte) []byte {
	text = append(text, self.Field...)
	return append(text, ` IS NULL`...)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self IsNull) String() string { return ExprString(self) }

// Renders `<field> IS NOT NULL`.
type IsNotNull struct{ Field string }

// Implement the `Op` interface.
func (IsNotNull) Kind() OpKind { return KindIsNotNull }

// Implement the `Expr` interface.
func (self IsNotNull) Append(text []byte) []byte {
	text = append(text, self.Field...)
	return append(text, ` IS NOT NULL`...)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self IsNotNull) String() string { return ExprString(self) }

/*
Comparator kind of a binary `Compare`. The zero value is not a valid
comparator; rendering it panics with `ErrInvalidComparator`.
*/
type Cmp byte

const (
	CmpEqual Cmp = iota + 1
	CmpNotEqual
	CmpLike
	CmpGreaterThan
	CmpLessThan
	CmpGreaterThanOrEqual
	CmpLessThanOrEqual
)

// Returns the SQL token of the comparator. Panics on unknown values.
func (self Cmp) Token() string {
	switch self {
	case CmpEqual:
		return `=`
	case CmpNotEqual:
		return `<>`
	case CmpLike:
		return `LIKE`
	case CmpGreaterThan:
		return `>`
	case CmpLessThan:
		return `<`
	case CmpGreaterThanOrEqual:
		return `>=`
	case CmpLessThanOrEqual:
		return `<=`
	default:
		panic(errInvalidComparator(self))
	}
}

// True if the comparator is one of the known constants.
func (self Cmp) IsValid() bool {
	return self >= CmpEqual && self <= CmpLessThanOrEqual
}

// Implement `fmt.Stringer` for debug purposes. Same as `.Token`, but returns an
// empty string for unknown values instead of panicking.
func (self Cmp) String() string {
	if self.IsValid() {
		return self.Token()
	}
	return ``
}

/*
Comparison. Either a binary comparison `<left> <token> <right>` or a nested
sub-expression rendered in parens, never both. Prefer the constructors
`Comparison` and `Nested`, which can't produce the invalid combination.
`.Right` is rendered according to the operand rules: strings are emitted as-is,
`Expr` values render themselves, nil becomes `NULL`.
*/
type Compare struct {
	Left  string
	Cmp   Cmp
	Right any
	Sub   *Where
}

// Makes a binary comparison.
func Comparison(left string, cmp Cmp, right any) Compare {
	return Compare{Left: left, Cmp: cmp, Right: right}
}

// Makes a comparison wrapping a nested sub-expression.
func Nested(sub *Where) Compare { return Compare{Sub: sub} }

// Implement the `Op` interface.
func (Compare) Kind() OpKind { return KindCompare }

// True if this comparison wraps a nested sub-expression.
func (self Compare) IsNested() bool { return self.Sub != nil }

// Implement the `Expr` interface.
func (self Compare) Append(text []byte) []byte {
	if self.Sub != nil {
		if self.Left != `` || self.Cmp != 0 || self.Right != nil {
			panic(ErrInvalidInput.while(`rendering comparison`).because(
				errors.New(`comparison can't be both binary and nested`),
			))
		}
		text = append(text, '(')
		text = self.Sub.Append(text)
		return append(text, ')')
	}

	bui := Bui{text}
	bui.Str(self.Left)
	bui.Byte(' ')
	bui.Str(self.Cmp.Token())
	bui.Byte(' ')
	bui.Any(self.Right)
	return bui.Text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Compare) String() string { return ExprString(self) }

func (self Compare) clone() Compare {
	self.Sub = self.Sub.Clone()
	self.Right = cloneAny(self.Right)
	return self
}

// Renders `<field> BETWEEN <low> AND <high>`.
type Between struct {
	Field string
	Low   any
	High  any
}

// Implement the `Op` interface.
func (Between) Kind() OpKind { return KindBetween }

// Implement the `Expr` interface.
func (self Between) Append(text []byte) []byte {
	bui := Bui{text}
	bui.Str(self.Field)
	bui.Str(` BETWEEN `)
	bui.Any(self.Low)
	bui.Str(` AND `)
	bui.Any(self.High)
	return bui.Text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Between) String() string { return ExprString(self) }

func (self Between) clone() Between {
	self.Low = cloneAny(self.Low)
	self.High = cloneAny(self.High)
	return self
}

/*
Membership test: `<field> IN (...)` or, when `.Negate` is set,
`<field> NOT IN (...)`. The right-hand side is either `.Values`, comma-joined
according to the operand rules, or `.Raw`, an opaque pre-rendered text such as
a sub-query. Setting both is invalid and panics on render.
*/
type In struct {
	Field  string
	Values []any
	Raw    string
	Negate bool
}

// Implement the `Op` interface.
func (In) Kind() OpKind { return KindIn }

// Implement the `Expr` interface.
func (self In) Append(text []byte) []byte {
	if len(self.Values) > 0 && self.Raw != `` {
		panic(ErrInvalidInput.while(`rendering membership test`).because(
			errors.New(`membership test can't have both values and raw text`),
		))
	}

	bui := Bui{text}
	bui.Str(self.Field)
	if self.Negate {
		bui.Str(` NOT IN (`)
	} else {
		bui.Str(` IN (`)
	}

	if self.Raw != `` {
		bui.Str(self.Raw)
	} else {
		for ind, val := range self.Values {
			if ind > 0 {
				bui.Str(`, `)
			}
			bui.Any(val)
		}
	}

	bui.Byte(')')
	return bui.Text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self In) String() string { return ExprString(self) }

func (self In) clone() In {
	if self.Values != nil {
		vals := make([]any, len(self.Values))
		for ind, val := range self.Values {
			vals[ind] = cloneAny(val)
		}
		self.Values = vals
	}
	return self
}

/*
Full-text test: `CONTAINS(<field>, <phrase>)`. When `.FormsOf` is set, the
phrase is expanded via `FormsOf` and single-quoted. Otherwise the phrase is
emitted as-is, and quoting it is the caller's responsibility.
*/
type Contains struct {
	Field   string
	Phrase  string
	FormsOf bool
}

// Implement the `Op` interface.
func (Contains) Kind() OpKind { return KindContains }

// Implement the `Expr` interface.
func (self Contains) Append(text []byte) []byte {
	bui := Bui{text}
	bui.Str(`CONTAINS(`)
	bui.Str(self.Field)
	bui.Str(`, `)
	if self.FormsOf {
		bui.Byte('\'')
		bui.Str(FormsOf(self.Phrase))
		bui.Byte('\'')
	} else {
		bui.Str(self.Phrase)
	}
	bui.Byte(')')
	return bui.Text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Contains) String() string { return ExprString(self) }
