package tsqlb

/*
Ordered sequence of `Op` nodes rendered as one parenthesized boolean expression.
The order of the sequence is the literal token order of the output. Grows only
by appending via the fluent methods below, which mutate the receiver and return
it to allow chaining. The zero value is ready to use:

	var where Where
	where.EqualsTo(`p.id`, Param(`id`)).And().IsNull(`p.deleted_at`)
	// (p.id = @id AND p.deleted_at IS NULL)

Connectives `AND` and `OR` are inserted only between existing entries, never as
leading tokens. `NOT` is inserted unconditionally. An empty sequence renders as
`()`. Not safe for concurrent mutation.
*/
type Where struct {
	ops []Op
}

// Implement the `Op` interface, allowing the expression to be nested into
// another expression.
func (*Where) Kind() OpKind { return KindWhere }

// Implement the `Expr` interface.
func (self *Where) Append(text []byte) []byte {
	text = append(text, '(')
	if self != nil {
		for ind, op := range self.ops {
			if ind > 0 {
				text = append(text, ' ')
			}
			text = op.Append(text)
		}
	}
	return append(text, ')')
}

// Implement the `fmt.Stringer` interface.
func (self *Where) String() string { return ExprString(self) }

// Returns the count of operators in the sequence.
func (self *Where) Len() int {
	if self == nil {
		return 0
	}
	return len(self.ops)
}

// True if the sequence has no operators.
func (self *Where) IsEmpty() bool { return self.Len() == 0 }

/*
Returns all operators of the given kind, in their original order. Nested
expressions are not searched. The result is a copy.
*/
func (self *Where) OfKind(kind OpKind) []Op {
	if self == nil {
		return nil
	}
	var out []Op
	for _, op := range self.ops {
		if op.Kind() == kind {
			out = append(out, op)
		}
	}
	return out
}

// Returns a copy of all operators in the sequence.
func (self *Where) Ops() []Op {
	if self == nil || self.ops == nil {
		return nil
	}
	out := make([]Op, len(self.ops))
	copy(out, self.ops)
	return out
}

/*
Returns a deep copy. Nested expressions, `CASE` expressions, and statements used
as operands are copied as well, so mutating the copy never affects the
original. Nil input produces nil.
*/
func (self *Where) Clone() *Where {
	if self == nil {
		return nil
	}
	out := &Where{ops: make([]Op, 0, len(self.ops))}
	for _, op := range self.ops {
		out.ops = append(out.ops, cloneOp(op))
	}
	return out
}

// Appends the given operators as-is. Nil operators are skipped.
func (self *Where) Add(ops ...Op) *Where {
	for _, op := range ops {
		if op != nil {
			self.ops = append(self.ops, op)
		}
	}
	return self
}

/*
Without arguments, appends `AND` if the sequence is non-empty. With arguments,
applies the same rule before each operator:

	new(Where).And(IsNull{`a`})                // (a IS NULL)
	new(Where).And(IsNull{`a`}, IsNull{`b`})   // (a IS NULL AND b IS NULL)
	new(Where).IsNull(`a`).And().IsNull(`b`)   // (a IS NULL AND b IS NULL)
*/
func (self *Where) And(ops ...Op) *Where { return self.connect(And{}, ops) }

// Same as `(*Where).And` but with `OR`.
func (self *Where) Or(ops ...Op) *Where { return self.connect(Or{}, ops) }

/*
Always appends `NOT`, even when the sequence is empty, then appends the given
operators as-is. Usually called with at most one operator.
*/
func (self *Where) Not(ops ...Op) *Where {
	self.ops = append(self.ops, Not{})
	return self.Add(ops...)
}

func (self *Where) connect(conn Op, ops []Op) *Where {
	if len(ops) == 0 {
		self.maybeConnect(conn)
		return self
	}
	for _, op := range ops {
		if op != nil {
			self.maybeConnect(conn)
			self.ops = append(self.ops, op)
		}
	}
	return self
}

func (self *Where) maybeConnect(conn Op) {
	if len(self.ops) > 0 {
		self.ops = append(self.ops, conn)
	}
}

// Appends `<field> BETWEEN <low> AND <high>`.
func (self *Where) Between(field string, low, high any) *Where {
	return self.Add(Between{field, low, high})
}

// Appends `<field> IN (<values>)`.
func (self *Where) In(field string, vals ...any) *Where {
	return self.Add(In{Field: field, Values: vals})
}

// Appends `<field> IN (<raw>)`, where the raw text is usually a sub-query.
func (self *Where) InRaw(field string, raw string) *Where {
	return self.Add(In{Field: field, Raw: raw})
}

// Appends `<field> NOT IN (<values>)`.
func (self *Where) NotIn(field string, vals ...any) *Where {
	return self.Add(In{Field: field, Values: vals, Negate: true})
}

// Appends `<field> NOT IN (<raw>)`, where the raw text is usually a sub-query.
func (self *Where) NotInRaw(field string, raw string) *Where {
	return self.Add(In{Field: field, Raw: raw, Negate: true})
}

// Appends `<field> IS NULL`.
func (self *Where) IsNull(field string) *Where { return self.Add(IsNull{field}) }

// Appends `<field> IS NOT NULL`.
func (self *Where) IsNotNull(field string) *Where { return self.Add(IsNotNull{field}) }

// Appends a binary comparison with an arbitrary comparator.
func (self *Where) Compare(left string, cmp Cmp, right any) *Where {
	return self.Add(Comparison(left, cmp, right))
}

// Appends the given expression wrapped into an additional pair of parens.
func (self *Where) Sub(sub *Where) *Where { return self.Add(Nested(sub)) }

// Appends `<left> LIKE <right>`.
func (self *Where) Like(left string, right any) *Where {
	return self.Compare(left, CmpLike, right)
}

// Appends `<left> = <right>`.
func (self *Where) EqualsTo(left string, right any) *Where {
	return self.Compare(left, CmpEqual, right)
}

// Appends `<left> <> <right>`.
func (self *Where) NotEqualsTo(left string, right any) *Where {
	return self.Compare(left, CmpNotEqual, right)
}

// Appends `<left> > <right>`.
func (self *Where) GreaterThan(left string, right any) *Where {
	return self.Compare(left, CmpGreaterThan, right)
}

// Appends `<left> < <right>`.
func (self *Where) LessThan(left string, right any) *Where {
	return self.Compare(left, CmpLessThan, right)
}

// Appends `<left> >= <right>`.
func (self *Where) GreaterThanOrEqual(left string, right any) *Where {
	return self.Compare(left, CmpGreaterThanOrEqual, right)
}

// Appends `<left> <= <right>`.
func (self *Where) LessThanOrEqual(left string, right any) *Where {
	return self.Compare(left, CmpLessThanOrEqual, right)
}

/*
Appends `CONTAINS(<field>, <phrase>)` with the phrase passed through as-is.
The phrase must already be a valid full-text condition, usually a parameter.
*/
func (self *Where) Contains(field string, phrase string) *Where {
	return self.Add(Contains{Field: field, Phrase: phrase})
}

/*
Appends `CONTAINS(<field>, '<expansion>')`, where the expansion is produced by
`FormsOf` from a free-text phrase.
*/
func (self *Where) ContainsFormsOf(field string, phrase string) *Where {
	return self.Add(Contains{Field: field, Phrase: phrase, FormsOf: true})
}
