package tsqlb

import (
	"errors"
	"fmt"
)

/*
Error codes. You probably shouldn't use this directly; instead, use the `Err`
variables with `errors.Is`.
*/
type ErrCode string

const (
	ErrCodeUnknown                ErrCode = ""
	ErrCodeInvalidInput           ErrCode = "InvalidInput"
	ErrCodeInvalidComparator      ErrCode = "InvalidComparator"
	ErrCodeMissingElseBranch      ErrCode = "MissingElseBranch"
	ErrCodeIncompletePagingClause ErrCode = "IncompletePagingClause"
	ErrCodeMissingStatement       ErrCode = "MissingStatement"
	ErrCodeMissingArgument        ErrCode = "MissingArgument"
	ErrCodeUnusedArgument         ErrCode = "UnusedArgument"
	ErrCodeUnexpectedParameter    ErrCode = "UnexpectedParameter"
	ErrCodeInternal               ErrCode = "Internal"
)

/*
Use blank error variables to detect error types:

	if errors.Is(err, tsqlb.ErrIncompletePagingClause) {
		// Handle specific error.
	}

Note that errors returned by this package can't be compared via `==` because
they may include additional details about the circumstances. When compared by
`errors.Is`, they compare `.Cause` and fall back on `.Code`.
*/
var (
	ErrInvalidInput           Err = Err{Code: ErrCodeInvalidInput, Cause: errors.New(`invalid input`)}
	ErrInvalidComparator      Err = Err{Code: ErrCodeInvalidComparator, Cause: errors.New(`invalid comparator`)}
	ErrMissingElseBranch      Err = Err{Code: ErrCodeMissingElseBranch, Cause: errors.New(`missing else branch`)}
	ErrIncompletePagingClause Err = Err{Code: ErrCodeIncompletePagingClause, Cause: errors.New(`paging requires an order by clause`)}
	ErrMissingStatement       Err = Err{Code: ErrCodeMissingStatement, Cause: errors.New(`missing statement`)}
	ErrMissingArgument        Err = Err{Code: ErrCodeMissingArgument, Cause: errors.New(`missing argument`)}
	ErrUnusedArgument         Err = Err{Code: ErrCodeUnusedArgument, Cause: errors.New(`unused argument`)}
	ErrUnexpectedParameter    Err = Err{Code: ErrCodeUnexpectedParameter, Cause: errors.New(`unexpected parameter`)}
	ErrInternal               Err = Err{Code: ErrCodeInternal, Cause: errors.New(`internal error`)}
)

// Type of errors returned by this package.
type Err struct {
	Code  ErrCode
	While string
	Cause error
}

// Implement `error`.
func (self Err) Error() string {
	if self == (Err{}) {
		return ``
	}
	msg := `[tsqlb]`
	if self.Code != ErrCodeUnknown {
		msg += fmt.Sprintf(` %s`, self.Code)
	}
	if self.While != `` {
		msg += fmt.Sprintf(` while %v`, self.While)
	}
	if self.Cause != nil {
		msg += `: ` + self.Cause.Error()
	}
	return msg
}

// Implement a hidden interface in "errors".
func (self Err) Is(other error) bool {
	if self.Cause != nil && errors.Is(self.Cause, other) {
		return true
	}
	err, ok := other.(Err)
	return ok && err.Code == self.Code
}

// Implement a hidden interface in "errors".
func (self Err) Unwrap() error {
	return self.Cause
}

func (self Err) while(while string) Err {
	self.While = while
	return self
}

func (self Err) because(cause error) Err {
	self.Cause = cause
	return self
}

func errInvalidComparator(val Cmp) Err {
	return ErrInvalidComparator.while(`rendering comparison`).because(
		fmt.Errorf(`unknown comparator %d`, val),
	)
}

func errMissingElse() Err {
	return ErrMissingElseBranch.while(`rendering case expression`).because(
		errors.New(`case expression requires an else result`),
	)
}

func errIncompletePaging() Err {
	return ErrIncompletePagingClause.while(`rendering select statement`).because(
		errors.New(`offset and fetch require at least one order by field`),
	)
}
