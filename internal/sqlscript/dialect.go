package sqlscript

import (
	"fmt"
	"strings"
)

// Dialect holds the syntax differences between the supported databases
type Dialect struct {
	Name      string
	quote     string
	begin     string
	commit    string
	boolTrue  string
	boolFalse string
	upsert    bool
	backslash bool // backslashes escape inside string literals
}

var dialects = map[string]Dialect{
	"mysql": {
		Name:      "mysql",
		quote:     "`",
		begin:     "START TRANSACTION;",
		commit:    "COMMIT;",
		boolTrue:  "1",
		boolFalse: "0",
		upsert:    true,
		backslash: true,
	},
	"postgresql": {
		Name:      "postgresql",
		quote:     `"`,
		begin:     "BEGIN;",
		commit:    "COMMIT;",
		boolTrue:  "TRUE",
		boolFalse: "FALSE",
	},
	"sqlite": {
		Name:      "sqlite",
		quote:     "`",
		begin:     "BEGIN TRANSACTION;",
		commit:    "COMMIT;",
		boolTrue:  "1",
		boolFalse: "0",
	},
}

// LookupDialect returns the dialect called name. "postgres" is accepted as
// an alias of "postgresql".
func LookupDialect(name string) (Dialect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "postgres" {
		key = "postgresql"
	}
	d, ok := dialects[key]
	if !ok {
		return Dialect{}, fmt.Errorf("unsupported SQL dialect: %s", name)
	}
	return d, nil
}

// Ident quotes a table or column name
func (d Dialect) Ident(name string) string {
	return d.quote + name + d.quote
}

// String quotes a string literal
func (d Dialect) String(s string) string {
	if d.backslash {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Bool renders a boolean literal
func (d Dialect) Bool(b bool) string {
	if b {
		return d.boolTrue
	}
	return d.boolFalse
}
