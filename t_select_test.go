package tsqlb

import (
	"errors"
	"testing"
)

func Test_Select_empty(t *testing.T) {
	testExpr(t, "SELECT\n*", new(Select))
	testExpr(t, "SELECT\n*\nFROM people", new(Select).From(`people`))
	testExpr(t, "SELECT\n*\nFROM people [p]", new(Select).FromAs(`people`, `p`))
}

func Test_Select_full(t *testing.T) {
	stmt := new(Select).
		FromAs(`orders`, `o`).
		Field(`o.id`, `Id`).
		Sum(`o.total`, `Total`).
		LeftJoinAs(`customers`, `c`, Comparison(`c.id`, CmpEqual, `o.customer_id`)).
		Where(new(Where).GreaterThan(`o.total`, 0).And().IsNull(`o.deleted_at`)).
		GroupBy(`o.id`).
		OrderByDesc(`o.id`).
		Offset(10, 20)

	testExpr(t, `SELECT
o.id [Id],
COALESCE(SUM(o.total), 0) [Total]
FROM orders [o]
LEFT JOIN customers [c] ON c.id = o.customer_id
WHERE (o.total > 0 AND o.deleted_at IS NULL)
GROUP BY o.id
ORDER BY o.id DESC
OFFSET 10 ROWS FETCH NEXT 20 ROWS ONLY`, stmt)

	testRender(t, stmt.String(), stmt)
	eq(t, stmt.String(), try1(stmt.Render()))
}

func Test_Select_fields(t *testing.T) {
	testExpr(
		t,
		"SELECT\np.id,\np.name [Name],\nCOALESCE(COUNT(p.id), 0) [Total],\nMAX(p.age) [Oldest],\nMIN(p.age),\nAVG(p.age) [Mean]\nFROM people [p]",
		new(Select).
			FromAs(`people`, `p`).
			Field(`p.id`, ``).
			Field(`p.name`, `Name`).
			Count(`p.id`, `Total`).
			Max(`p.age`, `Oldest`).
			Min(`p.age`, ``).
			Avg(`p.age`, `Mean`),
	)

	t.Run(`overwrite_by_key`, func(t *testing.T) {
		stmt := new(Select).From(`t`).Field(`a`, `X`).Field(`b`, ``).Field(`c`, `X`)
		testExpr(t, "SELECT\nc [X],\nb\nFROM t", stmt)
		eq(t, 2, len(stmt.Fields()))

		val, ok := stmt.GetField(`X`)
		eq(t, true, ok)
		eq(t, `c`, val.Name)
	})

	t.Run(`case`, func(t *testing.T) {
		stmt := new(Select).
			From(`people`).
			Field(`id`, ``).
			Case(`Adult`, new(Case).When(Comparison(`age`, CmpGreaterThanOrEqual, 18), Bool(true)).Else(Bool(false)))

		testExpr(t, "SELECT\nid,\n(CASE\n\tWHEN age >= 18 THEN 'Sim'\n\tELSE 'Não'\nEND) [Adult]\nFROM people", stmt)
	})

	t.Run(`case_requires_alias`, func(t *testing.T) {
		stmt := new(Select).From(`people`).Case(`Adult`, new(Case).When(IsNull{`age`}, 1).Else(0))
		cond := new(Case).When(IsNull{`name`}, 1).Else(0)

		err := catchAny(func() { stmt.Case(``, cond) })
		eq(t, true, errors.Is(err.(error), ErrInvalidInput))
		panics(t, `case field requires an alias`, func() { stmt.Case(``, cond) })

		testExpr(t, "SELECT\n(CASE\n\tWHEN age IS NULL THEN 1\n\tELSE 0\nEND) [Adult]\nFROM people", stmt)
	})

	t.Run(`case_without_else`, func(t *testing.T) {
		stmt := new(Select).From(`people`).Case(`Adult`, new(Case).When(IsNull{`age`}, 1))
		_, err := stmt.Render()
		eq(t, true, errors.Is(err, ErrMissingElseBranch))
	})
}

func Test_Select_field_helpers(t *testing.T) {
	testExpr(
		t,
		"SELECT\nCAST(CAST(0 AS BINARY) AS UNIQUEIDENTIFIER) [ParentId],\nCAST(p.code AS VARCHAR(MAX)) [Code],\n'person' [Kind]\nFROM people [p]",
		new(Select).
			FromAs(`people`, `p`).
			AsEmpty(`ParentId`).
			AsVarchar(`p.code`, `Code`).
			Const(`person`, `Kind`).
			Const(`ignored`, ``),
	)
}

func Test_Select_FieldsOf(t *testing.T) {
	testExpr(
		t,
		"SELECT\nembed_id,\nembed_name,\nouter_id,\nouter_name,\ncreated\nFROM outer",
		new(Select).From(`outer`).FieldsOf((*Outer)(nil)),
	)

	testExpr(
		t,
		"SELECT\nid,\nname,\ninternal.id [internal.id],\ninternal.name [internal.name]\nFROM external",
		new(Select).From(`external`).FieldsOf([]External{}),
	)

	panics(t, `expected struct, got int`, func() { new(Select).FieldsOf(10) })
}

func Test_StructCols(t *testing.T) {
	exp := []StructCol{
		{`id`, false},
		{`name`, false},
		{`internal.id`, true},
		{`internal.name`, true},
	}

	eq(t, exp, StructCols(External{}))
	eq(t, exp, StructCols(&External{}))
	eq(t, exp, StructCols([]External{}))
	eq(t, exp, StructCols([]*External{}))
	eq(t, exp, StructCols(&[]External{}))
	eq(t, exp, StructCols(&[]*External{}))

	panics(t, `expected struct`, func() { StructCols(nil) })
	panics(t, `expected struct`, func() { StructCols(`str`) })
}

func Test_Select_modifiers(t *testing.T) {
	testExpr(t, "SELECT DISTINCT\n*\nFROM t", new(Select).From(`t`).Distinct())
	testExpr(t, "SELECT TOP(10)\n*\nFROM t", new(Select).From(`t`).Top(10))
	testExpr(t, "SELECT DISTINCT TOP(10)\n*\nFROM t", new(Select).From(`t`).Top(10).Distinct())
	testExpr(t, "SELECT TOP(@limit)\n*\nFROM t", new(Select).From(`t`).TopExpr(`@limit`))
	testExpr(t, "SELECT\n*\nFROM t", new(Select).From(`t`).Top(10).TopExpr(``))
}

func Test_Select_joins(t *testing.T) {
	on := Comparison(`b.a_id`, CmpEqual, `a.id`)

	stmt := new(Select).
		FromAs(`a`, `a`).
		Join(`b`, on).
		JoinAs(`b`, `b2`, on).
		LeftJoin(`b`, on).
		RightJoinAs(`b`, `b3`, on).
		CrossJoin(`c`).
		CrossJoinAs(`d`, `d`)

	testExpr(t, `SELECT
*
FROM a [a]
INNER JOIN b ON b.a_id = a.id
INNER JOIN b [b2] ON b.a_id = a.id
LEFT JOIN b ON b.a_id = a.id
RIGHT JOIN b [b3] ON b.a_id = a.id
CROSS JOIN c
CROSS JOIN d [d]`, stmt)

	eq(t, 6, len(stmt.Joins()))
	eq(t, Join{JoinRight, `b`, `b3`, on}, stmt.Joins()[3])
	eq(t, []Join(nil), new(Select).Joins())
}

func Test_Select_where(t *testing.T) {
	t.Run(`empty_is_skipped`, func(t *testing.T) {
		testExpr(t, "SELECT\n*\nFROM t", new(Select).From(`t`).Where(nil))
		testExpr(t, "SELECT\n*\nFROM t", new(Select).From(`t`).Where(new(Where)))
		testExpr(t, "SELECT\n*\nFROM t", new(Select).From(`t`).Where(new(Where).And().Or()))
	})

	t.Run(`by_reference`, func(t *testing.T) {
		where := new(Where).EqualsTo(`id`, Param(`id`))
		stmt := new(Select).From(`t`).Where(where)
		where.And().IsNull(`deleted_at`)

		testExpr(t, "SELECT\n*\nFROM t\nWHERE (id = @id AND deleted_at IS NULL)", stmt)
		eq(t, where, stmt.GetWhere())
	})

	t.Run(`replace_and_clear`, func(t *testing.T) {
		stmt := new(Select).From(`t`).Where(new(Where).IsNull(`a`)).Where(new(Where).IsNull(`b`))
		testExpr(t, "SELECT\n*\nFROM t\nWHERE (b IS NULL)", stmt)

		stmt.ClearWhere()
		testExpr(t, "SELECT\n*\nFROM t", stmt)
		eq(t, (*Where)(nil), stmt.GetWhere())
	})
}

func Test_Select_group_by_having(t *testing.T) {
	stmt := new(Select).
		From(`orders`).
		Field(`customer_id`, ``).
		Count(`id`, `Total`).
		GroupBy(`customer_id`, `region`).
		Having(new(Where).GreaterThan(`COUNT(id)`, 1))

	testExpr(t, `SELECT
customer_id,
COALESCE(COUNT(id), 0) [Total]
FROM orders
GROUP BY customer_id, region
HAVING (COUNT(id) > 1)`, stmt)

	stmt.Having(new(Where))
	testExpr(t, "SELECT\ncustomer_id,\nCOALESCE(COUNT(id), 0) [Total]\nFROM orders\nGROUP BY customer_id, region", stmt)
}

func Test_Select_order_by(t *testing.T) {
	testExpr(
		t,
		"SELECT\n*\nFROM t\nORDER BY a, b ASC, c DESC, d",
		new(Select).From(`t`).OrderByNone(`a`).OrderByAsc(`b`).OrderByDesc(`c`).OrderBy(Ord{}, Ord{`d`, DirNone}),
	)

	testExpr(
		t,
		"SELECT\n*\nFROM t\nORDER BY name ASC, p.id DESC",
		new(Select).From(`t`).OrderBy(try1(ParseOrds(`name asc`, `p.id desc`))...),
	)

	testExpr(t, "SELECT\n*\nFROM t", new(Select).From(`t`).OrderBy())
}

func Test_Select_paging(t *testing.T) {
	testExpr(
		t,
		"SELECT\n*\nFROM t\nORDER BY id\nOFFSET 0 ROWS FETCH NEXT 50 ROWS ONLY",
		new(Select).From(`t`).OrderByNone(`id`).Offset(0, 50),
	)

	testExpr(
		t,
		"SELECT\n*\nFROM t\nORDER BY id\nOFFSET 20 ROWS FETCH NEXT 10 ROWS ONLY",
		new(Select).From(`t`).Offset(0, 50).OrderByNone(`id`).Offset(20, 10),
	)

	testExpr(t, "SELECT\n*\nFROM t\nORDER BY id", new(Select).From(`t`).OrderByNone(`id`).Offset(0, 50).ClearOffset())

	testExpr(t, `OFFSET 5 ROWS FETCH NEXT 15 ROWS ONLY`, Paging{5, 15})

	t.Run(`requires_ordering`, func(t *testing.T) {
		stmt := new(Select).From(`t`).Offset(0, 10)

		panics(t, `IncompletePagingClause`, func() { _ = stmt.String() })

		_, err := stmt.Render()
		eq(t, true, errors.Is(err, ErrIncompletePagingClause))
		eq(t, false, errors.Is(err, ErrInvalidInput))

		_, err = Render(stmt)
		eq(t, true, errors.Is(err, ErrIncompletePagingClause))
	})
}

func Test_Select_unions(t *testing.T) {
	stmt := new(Select).
		From(`a`).
		Field(`id`, ``).
		Union(new(Select).From(`b`).Field(`id`, ``)).
		UnionAll(new(Select).From(`c`).Field(`id`, ``)).
		Union(nil)

	testExpr(t, `SELECT
id
FROM a
UNION
SELECT
id
FROM b
UNION ALL
SELECT
id
FROM c`, stmt)

	eq(t, `UNION`, SetUnion.String())
	eq(t, `UNION ALL`, SetUnionAll.String())

	t.Run(`paging_error_in_union`, func(t *testing.T) {
		stmt := new(Select).From(`a`).Union(new(Select).From(`b`).Offset(0, 1))
		_, err := stmt.Render()
		eq(t, true, errors.Is(err, ErrIncompletePagingClause))
	})
}

func Test_Select_ClearFields(t *testing.T) {
	stmt := new(Select).
		From(`t`).
		Field(`a`, ``).
		GroupBy(`a`).
		OrderByAsc(`a`).
		Where(new(Where).IsNull(`b`))

	stmt.ClearFields().Field(`c`, ``)

	testExpr(t, "SELECT\nc\nFROM t\nWHERE (b IS NULL)", stmt)
	eq(t, 1, len(stmt.Fields()))
}

func Test_Select_Clone(t *testing.T) {
	where := new(Where).IsNull(`a`)
	cond := new(Case).When(IsNull{`x`}, 1).Else(0)
	union := new(Select).From(`u`)
	join := new(Where).EqualsTo(`j.id`, `t.j_id`)

	src := new(Select).
		From(`t`).
		Field(`id`, ``).
		Case(`Flag`, cond).
		JoinAs(`j`, `j`, join).
		Where(where).
		Having(new(Where).GreaterThan(`COUNT(1)`, 0)).
		GroupBy(`id`).
		OrderByAsc(`id`).
		Offset(0, 10).
		Union(union)

	out := src.Clone()
	exp := src.String()
	eq(t, exp, out.String())

	where.And().IsNull(`b`)
	cond.When(IsNull{`y`}, 2)
	union.Field(`extra`, ``)
	join.And().IsNull(`j.deleted_at`)

	eq(t, exp, out.String())
	notEq(t, exp, src.String())

	mutated := src.String()
	out.Field(`name`, ``).GroupBy(`name`).OrderByDesc(`name`).Offset(10, 10)
	eq(t, mutated, src.String())

	eq(t, (*Select)(nil), (*Select)(nil).Clone())

	t.Run(`preserves_case_fields`, func(t *testing.T) {
		src := new(Select).From(`t`).Case(`Flag`, new(Case).When(IsNull{`x`}, 1).Else(0))
		out := src.Clone()
		val, _ := out.GetField(`Flag`)
		eq(t, FieldCase, val.Kind)
		eq(t, src.String(), out.String())
	})
}

func Test_Select_idempotent(t *testing.T) {
	stmt := new(Select).
		From(`t`).
		Field(`id`, ``).
		Where(new(Where).ContainsFormsOf(`name`, `"new york" city`)).
		OrderByAsc(`id`).
		Offset(0, 10)

	first := stmt.String()
	eq(t, first, stmt.String())
	eq(t, first, stmt.Clone().String())
}
