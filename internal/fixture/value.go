// Package fixture turns API test-data files into concrete request values.
// A cell is either a literal or a placeholder: "nominal" for the field's
// known-good default, "<empty>" for an empty string, or "repeat(c,n)" for a
// run of n copies of c, used in boundary tests.
package fixture

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind tells which variant a Value holds
type Kind int

const (
	Literal Kind = iota
	Nominal
	Empty
	Repeated
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Nominal:
		return "nominal"
	case Empty:
		return "empty"
	case Repeated:
		return "repeated"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MaxRepeat bounds the length of a repeated value
const MaxRepeat = 1 << 20

// Value is one parsed test-data cell
type Value struct {
	Kind  Kind
	Text  string // Literal
	JSON  bool   // Literal holds raw JSON (number, boolean, null, object or array)
	Char  rune   // Repeated
	Count int    // Repeated
}

var repeatPattern = regexp.MustCompile(`^repeat\((.+),\s*(\d+)\)$`)

// Parse classifies a cell. A leading backslash escapes a placeholder, so
// `\nominal` is the literal "nominal".
func Parse(cell string) (Value, error) {
	if strings.HasPrefix(cell, `\`) {
		return Value{Kind: Literal, Text: cell[1:]}, nil
	}
	token := strings.TrimSpace(cell)
	switch strings.ToLower(token) {
	case "nominal":
		return Value{Kind: Nominal}, nil
	case "", "<empty>":
		return Value{Kind: Empty}, nil
	}

	m := repeatPattern.FindStringSubmatch(token)
	if m == nil {
		return Value{Kind: Literal, Text: cell}, nil
	}
	char := strings.Trim(m[1], `'"`)
	if utf8.RuneCountInString(char) != 1 {
		return Value{}, fmt.Errorf("repeat: %q is not a single character", m[1])
	}
	count, err := strconv.Atoi(m[2])
	if err != nil || count < 1 || count > MaxRepeat {
		return Value{}, fmt.Errorf("repeat: count %s outside [1, %d]", m[2], MaxRepeat)
	}
	r, _ := utf8.DecodeRuneInString(char)
	return Value{Kind: Repeated, Char: r, Count: count}, nil
}

// MustParse is Parse for values known to be valid
func MustParse(cell string) Value {
	v, err := Parse(cell)
	if err != nil {
		panic(err)
	}
	return v
}

// Resolve returns the concrete text of v for the named field
func Resolve(field string, v Value) (string, error) {
	switch v.Kind {
	case Literal:
		return v.Text, nil
	case Empty:
		return "", nil
	case Repeated:
		return strings.Repeat(string(v.Char), v.Count), nil
	case Nominal:
		nominal, ok := NominalValue(field)
		if !ok {
			return "", fmt.Errorf("field %s: no nominal value", field)
		}
		return nominal, nil
	default:
		return "", fmt.Errorf("field %s: unknown value kind %s", field, v.Kind)
	}
}
