package tsqlb

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const (
	DirNone Dir = 0
	DirAsc  Dir = 1
	DirDesc Dir = 2
)

// Short for "direction". Enum for ordering direction: none, "ASC", "DESC".
type Dir byte

// Implement `fmt.Stringer`.
func (self Dir) String() string {
	switch self {
	default:
		return ``
	case DirAsc:
		return `ASC`
	case DirDesc:
		return `DESC`
	}
}

// Implement `Enum`, so that `ParamValue` sends directions by name.
func (self Dir) Enum() {}

// Parses from a string, which may be empty, "asc", or "desc". Ignores case.
func (self *Dir) Parse(src string) error {
	switch strings.ToLower(src) {
	case ``:
		*self = DirNone
		return nil
	case `asc`:
		*self = DirAsc
		return nil
	case `desc`:
		*self = DirDesc
		return nil
	default:
		return ErrInvalidInput.while(`parsing order direction`).because(
			fmt.Errorf(`unrecognized direction %q`, src),
		)
	}
}

// Implement `encoding.TextMarshaler`.
func (self Dir) MarshalText() ([]byte, error) {
	return []byte(self.String()), nil
}

// Implement `encoding.TextUnmarshaler`.
func (self *Dir) UnmarshalText(src []byte) error {
	return self.Parse(string(src))
}

// Implement `fmt.GoStringer` for debug purposes.
func (self Dir) GoString() string {
	switch self {
	default:
		return `tsqlb.DirNone`
	case DirAsc:
		return `tsqlb.DirAsc`
	case DirDesc:
		return `tsqlb.DirDesc`
	}
}

/*
Short for "ordering". One element of an `ORDER BY` clause: an arbitrary field
expression and an optional direction. Renders as `<field> ASC`, `<field> DESC`,
or just `<field>`.
*/
type Ord struct {
	Field string
	Dir   Dir
}

// Implement the `Expr` interface.
func (self Ord) Append(text []byte) []byte {
	text = append(text, self.Field...)
	if self.Dir != DirNone {
		text = append(text, ' ')
		text = append(text, self.Dir.String()...)
	}
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Ord) String() string { return ExprString(self) }

// True if the field is empty.
func (self Ord) IsEmpty() bool { return self.Field == `` }

var ordReg = regexp.MustCompile(`^\s*((?:\w+\.)*\w+)(?i)(?:\s+(asc|desc))?\s*$`)

/*
Parses an ordering from a string such as "col", "tab.col asc", or
"tab.col DESC". Intended for client-supplied sort options, such as URL
queries. Only word characters and dots are allowed in the field path, which
prevents the input from smuggling arbitrary SQL.
*/
func ParseOrd(src string) (Ord, error) {
	match := ordReg.FindStringSubmatch(src)
	if match == nil {
		return Ord{}, ErrInvalidInput.while(`parsing ordering`).because(
			fmt.Errorf(`unsupported ordering %q; expected "<path> <asc|desc>?"`, src),
		)
	}

	var out Ord
	out.Field = match[1]
	err := out.Dir.Parse(match[2])
	return out, err
}

/*
Sequence of orderings. Implements `json.Unmarshaler`, decoding an array of
strings via `ParseOrd`. Empty strings are skipped:

	var ords Ords
	err := json.Unmarshal([]byte(`["name asc", "p.id desc"]`), &ords)
*/
type Ords []Ord

// Parses each string via `ParseOrd`, ignoring empty strings.
func ParseOrds(srcs ...string) (Ords, error) {
	var out Ords
	for _, src := range srcs {
		if strings.TrimSpace(src) == `` {
			continue
		}
		val, err := ParseOrd(src)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}

// Implement `json.Unmarshaler`.
func (self *Ords) UnmarshalJSON(src []byte) error {
	var vals []string
	err := json.Unmarshal(src, &vals)
	if err != nil {
		return err
	}

	out, err := ParseOrds(vals...)
	if err != nil {
		return err
	}
	*self = out
	return nil
}

// Implement the `Expr` interface. Renders the elements separated by `, `.
func (self Ords) Append(text []byte) []byte {
	for ind, val := range self {
		if ind > 0 {
			text = append(text, `, `...)
		}
		text = val.Append(text)
	}
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Ords) String() string { return ExprString(self) }
