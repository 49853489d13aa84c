package tsqlb

// Kind of a `Join`.
type JoinKind byte

const (
	JoinInner JoinKind = iota
	JoinLeft
	JoinRight
	JoinCross
)

// Returns the SQL keyword preceding `JOIN`.
func (self JoinKind) String() string {
	switch self {
	case JoinLeft:
		return `LEFT`
	case JoinRight:
		return `RIGHT`
	case JoinCross:
		return `CROSS`
	default:
		return `INNER`
	}
}

/*
Table reference joined to a `Select`. Renders as:

	<KIND> JOIN <entity> [<alias>] ON <condition>

The alias segment is omitted when `.Alias` is empty, and the condition segment
is omitted when `.On` is nil. Cross joins never render a condition.
*/
type Join struct {
	Kind   JoinKind
	Entity string
	Alias  string
	On     Op
}

// Implement the `Expr` interface.
func (self Join) Append(text []byte) []byte {
	bui := Bui{text}
	bui.Str(self.Kind.String())
	bui.Str(` JOIN `)
	bui.Str(self.Entity)
	bui.Alias(self.Alias)

	if self.On != nil && self.Kind != JoinCross {
		bui.Str(` ON `)
		bui.Expr(self.On)
	}
	return bui.Text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Join) String() string { return ExprString(self) }

// Returns a copy with a deep copy of the condition.
func (self Join) Clone() Join {
	self.On = cloneOp(self.On)
	return self
}
