package tsqlb

import (
	"errors"
	"strconv"
)

// Set operation combining a statement with another one.
type SetOp byte

const (
	SetUnion SetOp = iota
	SetUnionAll
)

// Returns the SQL keyword.
func (self SetOp) String() string {
	if self == SetUnionAll {
		return `UNION ALL`
	}
	return `UNION`
}

// One `UNION` or `UNION ALL` block attached to a `Select`.
type Union struct {
	Op   SetOp
	Stmt *Select
}

/*
Paging clause: `OFFSET <offset> ROWS FETCH NEXT <fetch> ROWS ONLY`. Only valid
in statements with at least one `ORDER BY` field.
*/
type Paging struct {
	Offset int
	Fetch  int
}

// Implement the `Expr` interface.
func (self Paging) Append(text []byte) []byte {
	text = append(text, `OFFSET `...)
	text = strconv.AppendInt(text, int64(self.Offset), 10)
	text = append(text, ` ROWS FETCH NEXT `...)
	text = strconv.AppendInt(text, int64(self.Fetch), 10)
	text = append(text, ` ROWS ONLY`...)
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Paging) String() string { return ExprString(self) }

/*
Builder of `SELECT` statements. Methods mutate the receiver and return it to
allow chaining. The zero value is ready to use. Renders the non-empty sections
in this fixed order, one per line:

	SELECT [DISTINCT] [TOP(n)]
	<fields>
	FROM <entity> [<alias>]
	<joins>
	WHERE <expr>
	GROUP BY <cols>
	HAVING <expr>
	ORDER BY <ords>
	OFFSET <o> ROWS FETCH NEXT <n> ROWS ONLY
	UNION [ALL]
	<statement>

Fields are rendered in insertion order, one per line, and `*` is rendered when
there are no fields. `WHERE` and `HAVING` are rendered only for non-empty
expressions. Rendering a statement with paging but without ordering panics
with `ErrIncompletePagingClause`. Not safe for concurrent mutation.
*/
type Select struct {
	from     string
	fromAs   string
	fields   Fields
	distinct bool
	top      string
	joins    []Join
	where    *Where
	having   *Where
	groupBy  []string
	orderBy  Ords
	paging   *Paging
	unions   []Union
}

// Sets the `FROM` entity without an alias.
func (self *Select) From(entity string) *Select { return self.FromAs(entity, ``) }

// Sets the `FROM` entity with an optional alias.
func (self *Select) FromAs(entity, alias string) *Select {
	self.from = entity
	self.fromAs = alias
	return self
}

// Adds or replaces a field. See `Fields`.
func (self *Select) AddField(val Field) *Select {
	self.fields.Set(val)
	return self
}

// Adds a plain field with an optional alias.
func (self *Select) Field(name, alias string) *Select {
	return self.AddField(Field{Kind: FieldPlain, Name: name, Alias: alias})
}

// Adds `COALESCE(SUM(<name>), 0)` with an optional alias.
func (self *Select) Sum(name, alias string) *Select {
	return self.AddField(Field{Kind: FieldSum, Name: name, Alias: alias})
}

// Adds `COALESCE(COUNT(<name>), 0)` with an optional alias.
func (self *Select) Count(name, alias string) *Select {
	return self.AddField(Field{Kind: FieldCount, Name: name, Alias: alias})
}

// Adds `MAX(<name>)` with an optional alias.
func (self *Select) Max(name, alias string) *Select {
	return self.AddField(Field{Kind: FieldMax, Name: name, Alias: alias})
}

// Adds `MIN(<name>)` with an optional alias.
func (self *Select) Min(name, alias string) *Select {
	return self.AddField(Field{Kind: FieldMin, Name: name, Alias: alias})
}

// Adds `AVG(<name>)` with an optional alias.
func (self *Select) Avg(name, alias string) *Select {
	return self.AddField(Field{Kind: FieldAvg, Name: name, Alias: alias})
}

// Adds a `CASE` field under the given alias. Panics if the alias is empty.
func (self *Select) Case(alias string, val *Case) *Select {
	if alias == `` {
		panic(ErrInvalidInput.while(`adding case field`).because(
			errors.New(`case field requires an alias`),
		))
	}
	return self.AddField(Field{Kind: FieldCase, Alias: alias, Case: val})
}

// Adds an empty unique identifier under the given alias.
func (self *Select) AsEmpty(alias string) *Select {
	return self.Field(`CAST(CAST(0 AS BINARY) AS UNIQUEIDENTIFIER)`, alias)
}

// Adds `CAST(<name> AS VARCHAR(MAX))` with an optional alias.
func (self *Select) AsVarchar(name, alias string) *Select {
	return self.Field(`CAST(`+name+` AS VARCHAR(MAX))`, alias)
}

/*
Adds a constant string literal `'<value>'` under the given alias. A constant
without an alias has no usable name, so an empty alias makes this a nop.
*/
func (self *Select) Const(value, alias string) *Select {
	if alias == `` {
		return self
	}
	return self.Field(ExprString(Text(value)), alias)
}

/*
Adds one plain field per `db`-tagged field of the given struct type. Also
accepts struct pointers, slices, and slice pointers, which are used only as
type carriers. Fields of nested structs are added as `<parent>.<child>` and
aliased by the same path. Embedded structs are treated as part of the
enclosing struct.
*/
func (self *Select) FieldsOf(dest any) *Select {
	for _, col := range StructCols(dest) {
		if col.Nested {
			self.Field(col.Path, col.Path)
		} else {
			self.Field(col.Path, ``)
		}
	}
	return self
}

// Removes all fields, `GROUP BY` columns, and `ORDER BY` fields.
func (self *Select) ClearFields() *Select {
	self.fields.Clear()
	self.groupBy = nil
	self.orderBy = nil
	return self
}

// Returns the fields in insertion order.
func (self *Select) Fields() []Field { return self.fields.Slice() }

// Returns the field with the given key, if any.
func (self *Select) GetField(key string) (Field, bool) { return self.fields.Get(key) }

// Enables `SELECT DISTINCT`.
func (self *Select) Distinct() *Select {
	self.distinct = true
	return self
}

// Sets `TOP(<count>)`.
func (self *Select) Top(count int) *Select {
	return self.TopExpr(strconv.Itoa(count))
}

// Sets `TOP(<expr>)` with an arbitrary expression, such as a parameter.
// Empty input removes the limit.
func (self *Select) TopExpr(expr string) *Select {
	self.top = expr
	return self
}

// Appends a join.
func (self *Select) AddJoin(val Join) *Select {
	self.joins = append(self.joins, val)
	return self
}

// Appends `INNER JOIN <entity> ON <on>`.
func (self *Select) Join(entity string, on Op) *Select {
	return self.JoinAs(entity, ``, on)
}

// Appends `INNER JOIN <entity> [<alias>] ON <on>`.
func (self *Select) JoinAs(entity, alias string, on Op) *Select {
	return self.AddJoin(Join{JoinInner, entity, alias, on})
}

// Appends `LEFT JOIN <entity> ON <on>`.
func (self *Select) LeftJoin(entity string, on Op) *Select {
	return self.LeftJoinAs(entity, ``, on)
}

// Appends `LEFT JOIN <entity> [<alias>] ON <on>`.
func (self *Select) LeftJoinAs(entity, alias string, on Op) *Select {
	return self.AddJoin(Join{JoinLeft, entity, alias, on})
}

// Appends `RIGHT JOIN <entity> ON <on>`.
func (self *Select) RightJoin(entity string, on Op) *Select {
	return self.RightJoinAs(entity, ``, on)
}

// Appends `RIGHT JOIN <entity> [<alias>] ON <on>`.
func (self *Select) RightJoinAs(entity, alias string, on Op) *Select {
	return self.AddJoin(Join{JoinRight, entity, alias, on})
}

// Appends `CROSS JOIN <entity>`.
func (self *Select) CrossJoin(entity string) *Select {
	return self.CrossJoinAs(entity, ``)
}

// Appends `CROSS JOIN <entity> [<alias>]`.
func (self *Select) CrossJoinAs(entity, alias string) *Select {
	return self.AddJoin(Join{Kind: JoinCross, Entity: entity, Alias: alias})
}

// Returns a copy of the joins in declaration order.
func (self *Select) Joins() []Join {
	if len(self.joins) == 0 {
		return nil
	}
	out := make([]Join, len(self.joins))
	copy(out, self.joins)
	return out
}

/*
Sets the `WHERE` expression, replacing the previous one. The expression is
stored by reference; further mutations of it are reflected in the statement.
*/
func (self *Select) Where(val *Where) *Select {
	self.where = val
	return self
}

// Returns the current `WHERE` expression, which may be nil.
func (self *Select) GetWhere() *Where { return self.where }

// Removes the `WHERE` expression.
func (self *Select) ClearWhere() *Select {
	self.where = nil
	return self
}

// Sets the `HAVING` expression, replacing the previous one.
func (self *Select) Having(val *Where) *Select {
	self.having = val
	return self
}

// Appends `GROUP BY` columns.
func (self *Select) GroupBy(cols ...string) *Select {
	self.groupBy = append(self.groupBy, cols...)
	return self
}

// Appends `ORDER BY` fields. Empty orderings are skipped.
func (self *Select) OrderBy(vals ...Ord) *Select {
	for _, val := range vals {
		if !val.IsEmpty() {
			self.orderBy = append(self.orderBy, val)
		}
	}
	return self
}

// Appends `ORDER BY` fields without direction.
func (self *Select) OrderByNone(fields ...string) *Select {
	return self.orderByDir(DirNone, fields)
}

// Appends `ORDER BY` fields with `ASC`.
func (self *Select) OrderByAsc(fields ...string) *Select {
	return self.orderByDir(DirAsc, fields)
}

// Appends `ORDER BY` fields with `DESC`.
func (self *Select) OrderByDesc(fields ...string) *Select {
	return self.orderByDir(DirDesc, fields)
}

func (self *Select) orderByDir(dir Dir, fields []string) *Select {
	for _, field := range fields {
		self.OrderBy(Ord{field, dir})
	}
	return self
}

/*
Sets the paging clause `OFFSET <offset> ROWS FETCH NEXT <fetch> ROWS ONLY`,
replacing the previous one. The statement must have at least one `ORDER BY`
field at render time, otherwise rendering panics with
`ErrIncompletePagingClause`.
*/
func (self *Select) Offset(offset, fetch int) *Select {
	self.paging = &Paging{offset, fetch}
	return self
}

// Removes the paging clause.
func (self *Select) ClearOffset() *Select {
	self.paging = nil
	return self
}

// Appends a `UNION` block with the given statement.
func (self *Select) Union(val *Select) *Select {
	return self.setOp(SetUnion, val)
}

// Appends a `UNION ALL` block with the given statement.
func (self *Select) UnionAll(val *Select) *Select {
	return self.setOp(SetUnionAll, val)
}

func (self *Select) setOp(op SetOp, val *Select) *Select {
	if val != nil {
		self.unions = append(self.unions, Union{op, val})
	}
	return self
}

// Implement the `Expr` interface. See `Select` for the layout.
func (self *Select) Append(text []byte) []byte {
	bui := Bui{text}
	bui.Str(`SELECT`)

	if self.distinct {
		bui.Str(` DISTINCT`)
	}
	if self.top != `` {
		bui.Str(` TOP(`)
		bui.Str(self.top)
		bui.Byte(')')
	}

	bui.Str(newline)
	bui.Expr(&self.fields)

	if self.from != `` {
		bui.Str(newline + `FROM `)
		bui.Str(self.from)
		bui.Alias(self.fromAs)
	}

	for _, val := range self.joins {
		bui.Str(newline)
		bui.Expr(val)
	}

	if !self.where.IsEmpty() {
		bui.Str(newline + `WHERE `)
		bui.Expr(self.where)
	}

	if len(self.groupBy) > 0 {
		bui.Str(newline + `GROUP BY `)
		bui.Strs(`, `, self.groupBy...)
	}

	if !self.having.IsEmpty() {
		bui.Str(newline + `HAVING `)
		bui.Expr(self.having)
	}

	if len(self.orderBy) > 0 {
		bui.Str(newline + `ORDER BY `)
		bui.Expr(self.orderBy)
	}

	if self.paging != nil {
		if len(self.orderBy) == 0 {
			panic(errIncompletePaging())
		}
		bui.Str(newline)
		bui.Expr(*self.paging)
	}

	for _, val := range self.unions {
		bui.Str(newline)
		bui.Str(val.Op.String())
		bui.Str(newline)
		bui.Expr(val.Stmt)
	}

	return bui.Text
}

// Implement the `fmt.Stringer` interface. Panics on render errors; use
// `.Render` or `Render` for errors-as-values.
func (self *Select) String() string { return ExprString(self) }

// Renders the statement, converting render panics into errors.
func (self *Select) Render() (string, error) { return Render(self) }

/*
Returns a deep copy. Every collection is copied by value, including `WHERE` and
`HAVING` expressions, join conditions, `CASE` fields, and nested `UNION`
statements, so mutating the copy never affects the original. Nil input
produces nil.
*/
func (self *Select) Clone() *Select {
	if self == nil {
		return nil
	}

	out := *self
	out.fields = self.fields.Clone()
	out.where = self.where.Clone()
	out.having = self.having.Clone()
	out.groupBy = copyStrings(self.groupBy)

	if self.orderBy != nil {
		out.orderBy = make(Ords, len(self.orderBy))
		copy(out.orderBy, self.orderBy)
	}

	if self.paging != nil {
		paging := *self.paging
		out.paging = &paging
	}

	if self.joins != nil {
		out.joins = make([]Join, len(self.joins))
		for ind, val := range self.joins {
			out.joins[ind] = val.Clone()
		}
	}

	if self.unions != nil {
		out.unions = make([]Union, len(self.unions))
		for ind, val := range self.unions {
			out.unions[ind] = Union{val.Op, val.Stmt.Clone()}
		}
	}

	return &out
}
