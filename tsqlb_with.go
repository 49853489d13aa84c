package tsqlb

import (
	"errors"
)

// One named block of a `With`.
type Cte struct {
	Name string
	Stmt Expr
}

/*
Common table expression: one or more named sub-statements followed by one main
statement. Renders as:

	WITH <name> AS (
	<stmt>
	),
	<name> AS (
	<stmt>
	)
	<main>

Rendering without any named block or without the main statement panics with
`ErrMissingStatement`. Methods mutate the receiver and return it to allow
chaining.
*/
type With struct {
	ctes []Cte
	main Expr
}

// Appends a named block.
func (self *With) As(name string, stmt Expr) *With {
	self.ctes = append(self.ctes, Cte{name, stmt})
	return self
}

// Sets the main statement, replacing the previous one.
func (self *With) Select(main Expr) *With {
	self.main = main
	return self
}

// Returns a copy of the named blocks in declaration order.
func (self *With) Ctes() []Cte {
	if len(self.ctes) == 0 {
		return nil
	}
	out := make([]Cte, len(self.ctes))
	copy(out, self.ctes)
	return out
}

// Implement the `Expr` interface.
func (self *With) Append(text []byte) []byte {
	if len(self.ctes) == 0 {
		panic(ErrMissingStatement.while(`rendering common table expression`).because(
			errors.New(`at least one named statement is required`),
		))
	}
	if self.main == nil {
		panic(ErrMissingStatement.while(`rendering common table expression`).because(
			errors.New(`main statement is required`),
		))
	}

	bui := Bui{text}
	bui.Str(`WITH `)

	for ind, val := range self.ctes {
		if ind > 0 {
			bui.Str(`,` + newline)
		}
		bui.Str(val.Name)
		bui.Str(` AS (` + newline)
		bui.Expr(val.Stmt)
		bui.Str(newline + `)`)
	}

	bui.Str(newline)
	bui.Expr(self.main)
	return bui.Text
}

// Implement the `fmt.Stringer` interface. Panics on render errors.
func (self *With) String() string { return ExprString(self) }

// Renders the statement, converting render panics into errors.
func (self *With) Render() (string, error) { return Render(self) }

// Returns a deep copy. Nil input produces nil.
func (self *With) Clone() *With {
	if self == nil {
		return nil
	}
	out := &With{main: cloneExpr(self.main)}
	if self.ctes != nil {
		out.ctes = make([]Cte, len(self.ctes))
		for ind, val := range self.ctes {
			out.ctes[ind] = Cte{val.Name, cloneExpr(val.Stmt)}
		}
	}
	return out
}
