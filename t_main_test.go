package tsqlb

import (
	"fmt"
	r "reflect"
	"runtime"
	"strings"
	"testing"
	"time"
)

type Internal struct {
	Id   string `json:"internalId"   db:"id"`
	Name string `json:"internalName" db:"name"`
}

type External struct {
	Id       string   `json:"externalId"       db:"id"`
	Name     string   `json:"externalName"     db:"name"`
	Internal Internal `json:"externalInternal" db:"internal"`
}

type Embed struct {
	Id        string `json:"embedId"   db:"embed_id"`
	Name      string `json:"embedName" db:"embed_name"`
	Untagged0 string ``
	Untagged1 string `db:"-"`
}

type Outer struct {
	Embed
	Id       string     `json:"outerId"   db:"outer_id"`
	Name     string     `json:"outerName" db:"outer_name"`
	OnlyJson string     `json:"onlyJson"`
	Created  *time.Time `db:"created"`
}

var testOuter = Outer{
	Id:   `outer id`,
	Name: `outer name`,
	Embed: Embed{
		Id:        `embed id`,
		Name:      `embed name`,
		Untagged0: `untagged 0`,
		Untagged1: `untagged 1`,
	},
}

type Status byte

const (
	StatusDraft Status = iota
	StatusPublished
)

func (self Status) Enum() {}

func (self Status) String() string {
	switch self {
	case StatusPublished:
		return `Published`
	default:
		return `Draft`
	}
}

type Encoder interface {
	fmt.Stringer
	Expr
}

/*
Verifies the three ways of rendering an expression: `.String`, `.Append` into
an empty buffer, and `.Append` into a non-empty buffer, which must preserve the
existing contents.
*/
func testExpr(t testing.TB, exp string, val Encoder) {
	t.Helper()
	eq(t, exp, val.String())
	eq(t, exp, string(val.Append(nil)))
	eq(t, `prefix `+exp, string(val.Append([]byte(`prefix `))))
}

func testRender(t testing.TB, exp string, val Expr) {
	t.Helper()
	text, err := Render(val)
	if err != nil {
		t.Fatalf(`unexpected render error: %+v`, err)
	}
	eq(t, exp, text)
}

func eq(t testing.TB, exp, act any) {
	t.Helper()
	if !r.DeepEqual(exp, act) {
		t.Fatalf(`
expected (detailed):
	%#[1]v
actual (detailed):
	%#[2]v
expected (simple):
	%[1]v
actual (simple):
	%[2]v
`, exp, act)
	}
}

func notEq(t testing.TB, exp, act any) {
	t.Helper()
	if r.DeepEqual(exp, act) {
		t.Fatalf(`
unexpected equality (detailed):
	%#[1]v
unexpected equality (simple):
	%[1]v
`, exp, act)
	}
}

func panics(t testing.TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(
			`expected %v to panic with a message containing %q, found %q`,
			funcName(fun), msg, str,
		)
	}
}

func funcName(val any) string {
	return runtime.FuncForPC(r.ValueOf(val).Pointer()).Name()
}

func catchAny(fun func()) (val any) {
	defer recAny(&val)
	fun()
	return
}

func recAny(ptr *any) { *ptr = recover() }

func parseTime(str string) time.Time {
	val, err := time.Parse(time.RFC3339Nano, str)
	try(err)
	return val
}
