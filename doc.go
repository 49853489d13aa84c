/*
T-SQL Builder: programmatic builder for SQL Server `SELECT` statements and CTEs.
Callers compose filter predicates, joins, aggregates, ordering, paging, and set
operations as in-memory objects, and render them into one canonical SQL text
with symbolic `@name` parameters.

# Key Features

  - Ordered boolean expressions (`Where`) with fluent connective rules: `AND`
    and `OR` are never emitted as leading tokens.
  - Full-text search phrases expanded into `FORMSOF(THESAURUS, ...)`
    conditions. See `FormsOf`.
  - Projection lists with deterministic insertion order, aggregates that
    default nulls to zero, and `CASE` expressions.
  - Joins, grouping, `HAVING`, ordering, `OFFSET ... FETCH NEXT` paging, `TOP`,
    `UNION` / `UNION ALL`, and `WITH` CTEs.
  - Deep cloning of statements.
  - Small parameter adapter: coercing host values into driver-friendly forms,
    discovering the `@name` placeholders referenced by a statement, and
    pairing them with arguments. See `Bind`.

# Rendering

Every renderable type implements `Expr`. Rendering errors are reported via
panics of type `Err`. For errors-as-values, use `Render` or `Bind`.

# Examples

	var where Where
	where.EqualsTo(`p.status`, Param(`status`)).And().IsNotNull(`p.deleted_at`)

	stmt := new(Select).
		FromAs(`persons`, `p`).
		Field(`p.id`, ``).
		Field(`p.name`, `name`).
		Where(&where).
		OrderByAsc(`p.name`)

	text, err := Render(stmt)
*/
package tsqlb
