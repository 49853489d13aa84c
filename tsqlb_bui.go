package tsqlb

// Prealloc tool. Makes a `Bui` with the specified capacity of the text buffer.
func MakeBui(textCap int) Bui {
	return Bui{make([]byte, 0, textCap)}
}

/*
Short for "builder". Tiny shortcut for building SQL text. Used internally by
most composite `Expr` implementations in this package. Unlike string
concatenation, appends everything into one growing buffer.

Methods never insert separators implicitly. The exact layout of T-SQL
produced by this package is part of its contract.
*/
type Bui struct {
	Text []byte
}

// Returns inner text as a string, performing a free cast.
func (self Bui) String() string {
	return bytesToMutableString(self.Text)
}

// Appends the provided string as-is.
func (self *Bui) Str(val string) {
	self.Text = append(self.Text, val...)
}

// Appends the provided byte as-is.
func (self *Bui) Byte(val byte) {
	self.Text = append(self.Text, val)
}

// Appends an expression. Nil input is a nop.
func (self *Bui) Expr(val Expr) {
	if val != nil {
		self.Text = val.Append(self.Text)
	}
}

/*
Appends an arbitrary operand. See `appendAny` for the rules. Used for the
right-hand sides of comparisons, `BETWEEN` bounds, `IN` lists, and `CASE`
results.
*/
func (self *Bui) Any(val any) {
	self.Text = appendAny(self.Text, val)
}

// Appends each expr, separated by the given delimiter. Nil exprs are skipped.
func (self *Bui) Exprs(sep string, vals ...Expr) {
	var found bool
	for _, val := range vals {
		if val == nil {
			continue
		}
		if found {
			self.Str(sep)
		}
		found = true
		self.Expr(val)
	}
}

// Appends each string, separated by the given delimiter.
func (self *Bui) Strs(sep string, vals ...string) {
	for ind, val := range vals {
		if ind > 0 {
			self.Str(sep)
		}
		self.Str(val)
	}
}

// Same as `(*Bui).Exprs` but catches panics. Since many functions in this
// package use panics, this should be used for final rendering by apps that
// insist on errors-as-values.
func (self *Bui) CatchExprs(sep string, vals ...Expr) (err error) {
	defer rec(&err)
	self.Exprs(sep, vals...)
	return
}

// Appends ` [alias]` when the alias is non-empty.
func (self *Bui) Alias(val string) {
	if val != `` {
		self.Str(` [`)
		self.Str(val)
		self.Byte(']')
	}
}
