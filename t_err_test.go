package tsqlb

import (
	"errors"
	"fmt"
	"testing"
)

func TestErr_formatting(t *testing.T) {
	test := func(src Err, exp string) {
		t.Helper()
		eq(t, exp, src.Error())
		eq(t, exp, fmt.Sprintf(`%v`, src))
	}

	test(Err{}, ``)
	test(Err{While: `doing some operation`}, `[tsqlb] while doing some operation`)
	test(Err{Code: ErrCodeInvalidInput}, `[tsqlb] InvalidInput`)
	test(Err{Cause: errors.New(`some cause`)}, `[tsqlb]: some cause`)

	test(
		Err{Code: ErrCodeMissingArgument, While: `binding arguments`, Cause: errors.New(`missing named argument "id"`)},
		`[tsqlb] MissingArgument while binding arguments: missing named argument "id"`,
	)

	test(
		errInvalidComparator(Cmp(42)),
		`[tsqlb] InvalidComparator while rendering comparison: unknown comparator 42`,
	)
}

func TestErr_Is(t *testing.T) {
	test := func(err error, target Err) {
		t.Helper()
		eq(t, true, errors.Is(err, target))
		notEq(t, target, err)

		for _, other := range []Err{ErrInvalidInput, ErrInternal, ErrUnexpectedParameter} {
			if other.Code != target.Code {
				eq(t, false, errors.Is(err, other))
			}
		}
	}

	test(errInvalidComparator(0), ErrInvalidComparator)
	test(errMissingElse(), ErrMissingElseBranch)
	test(errIncompletePaging(), ErrIncompletePagingClause)
	test(errExpectedStruct(nil), ErrInvalidInput)
	test(fmt.Errorf(`wrapped: %w`, errIncompletePaging()), ErrIncompletePagingClause)
}

func TestErr_Unwrap(t *testing.T) {
	cause := errors.New(`cause`)
	err := ErrInternal.while(`testing`).because(cause)

	eq(t, cause, errors.Unwrap(err))
	eq(t, true, errors.Is(err, cause))
	eq(t, true, errors.Is(err, ErrInternal))
}

func TestRender(t *testing.T) {
	text, err := Render(nil)
	eq(t, ``, text)
	eq(t, nil, err)

	testRender(t, `a IS NULL`, IsNull{`a`})

	_, err = Render(new(Case))
	eq(t, true, errors.Is(err, ErrMissingElseBranch))

	eq(t, `a IS NULL`, MustRender(IsNull{`a`}))
	panics(t, `MissingElseBranch`, func() { MustRender(new(Case)) })
}

func TestBui(t *testing.T) {
	bui := MakeBui(64)
	bui.Str(`SELECT `)
	bui.Exprs(`, `, Raw(`a`), nil, Raw(`b`))
	bui.Alias(`x`)
	bui.Alias(``)
	bui.Byte(' ')
	bui.Any(nil)
	bui.Byte(' ')
	bui.Any(10)
	bui.Byte(' ')
	bui.Strs(`|`, `c`, `d`)
	eq(t, `SELECT a, b [x] NULL 10 c|d`, bui.String())

	var other Bui
	other.Str(`(`)
	eq(t, `(`, other.String())

	err := other.CatchExprs(` `, Raw(`ok`), new(Case))
	eq(t, true, errors.Is(err, ErrMissingElseBranch))
}
