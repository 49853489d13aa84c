package tsqlb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

/*
Layout of instant-in-time literals. Matches the round-trip ("o") timestamp
format understood by SQL Server: seven fractional digits, followed by `Z` for
UTC or by the numeric zone offset.
*/
const TimeLayout = `2006-01-02T15:04:05.0000000Z07:00`

/*
Raw SQL text, already escaped by the caller. Emitted verbatim. Useful for
column references, function calls, and anything else this package has no
dedicated type for.
*/
type Raw string

// Implement the `Expr` interface.
func (self Raw) Append(text []byte) []byte { return append(text, self...) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Raw) String() string { return string(self) }

/*
String literal: renders as `'value'`. Performs no escaping. Doubling single
quotes, if needed, is the caller's responsibility.
*/
type Text string

// Implement the `Expr` interface.
func (self Text) Append(text []byte) []byte {
	text = append(text, '\'')
	text = append(text, self...)
	text = append(text, '\'')
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Text) String() string { return ExprString(self) }

// Instant-in-time literal: renders as `'<timestamp>'`, see `TimeLayout`.
type Time time.Time

// Implement the `Expr` interface.
func (self Time) Append(text []byte) []byte {
	text = append(text, '\'')
	text = time.Time(self).AppendFormat(text, TimeLayout)
	text = append(text, '\'')
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Time) String() string { return ExprString(self) }

/*
Boolean literal. Renders the localized yes/no text stored by the databases this
package targets: `'Sim'` for true and `'Não'` for false.
*/
type Bool bool

// Implement the `Expr` interface.
func (self Bool) Append(text []byte) []byte {
	if self {
		return append(text, `'Sim'`...)
	}
	return append(text, `'Não'`...)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Bool) String() string { return ExprString(self) }

// Unique-identifier literal: renders as `'xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx'`.
type Uuid uuid.UUID

// Implement the `Expr` interface.
func (self Uuid) Append(text []byte) []byte {
	text = append(text, '\'')
	text = append(text, uuid.UUID(self).String()...)
	text = append(text, '\'')
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Uuid) String() string { return ExprString(self) }

/*
Converts an arbitrary host value to the matching literal:

  - Nil -> `NULL`.
  - `Expr` -> unchanged.
  - `time.Time` -> `Time`.
  - `bool` -> `Bool`.
  - `uuid.UUID` -> `Uuid`.
  - Anything else -> `Text` of its string representation.
*/
func Literal(val any) Expr {
	switch val := val.(type) {
	case nil:
		return Raw(`NULL`)
	case Expr:
		return val
	case time.Time:
		return Time(val)
	case bool:
		return Bool(val)
	case uuid.UUID:
		return Uuid(val)
	case string:
		return Text(val)
	case fmt.Stringer:
		return Text(val.String())
	default:
		return Text(fmt.Sprint(val))
	}
}

/*
Named parameter: renders as `@name`. The corresponding argument is supplied to
the database driver separately; see `Bind`.
*/
type Param string

// Implement the `Expr` interface.
func (self Param) Append(text []byte) []byte {
	text = append(text, paramPrefix)
	text = append(text, self...)
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Param) String() string { return ExprString(self) }

// Shortcut for `ParamCast{self, typ}`.
func (self Param) Cast(typ string) ParamCast { return ParamCast{self, typ} }

// Renders as `CAST(@name AS <type>)`.
type ParamCast struct {
	Param Param
	Type  string
}

// Implement the `Expr` interface.
func (self ParamCast) Append(text []byte) []byte {
	text = append(text, `CAST(`...)
	text = self.Param.Append(text)
	text = append(text, ` AS `...)
	text = append(text, self.Type...)
	text = append(text, ')')
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self ParamCast) String() string { return ExprString(self) }
