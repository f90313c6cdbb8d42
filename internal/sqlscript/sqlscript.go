// Package sqlscript renders a dataset as batched INSERT scripts, one file
// per table, for MySQL, PostgreSQL or SQLite.
package sqlscript

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/amoylab/toolshop-datagen/internal/common/config"
	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/export"
	"github.com/amoylab/toolshop-datagen/internal/model"
	"github.com/amoylab/toolshop-datagen/pkg/version"
)

// DefaultBatchSize is the number of rows per INSERT statement
const DefaultBatchSize = 100

// Generator renders INSERT scripts in one dialect
type Generator struct {
	dialect Dialect
	cfg     config.SQLConfig
}

// New creates a generator for cfg
func New(cfg config.SQLConfig) (*Generator, error) {
	d, err := LookupDialect(cfg.Dialect)
	if err != nil {
		return nil, errorx.NewConfigurationError("sql.dialect", "%v", err)
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	return &Generator{dialect: d, cfg: cfg}, nil
}

// Dialect returns the generator's dialect
func (g *Generator) Dialect() Dialect {
	return g.dialect
}

// Script renders the INSERT script of table for the given CSV records
func (g *Generator) Script(t export.Table, records [][]string) (string, error) {
	var b strings.Builder
	if g.cfg.Comments {
		g.header(&b, t.Name, len(records))
	}
	if g.cfg.Transactions {
		b.WriteString(g.dialect.begin + "\n\n")
	}
	for start := 0; start < len(records); start += g.cfg.BatchSize {
		end := min(start+g.cfg.BatchSize, len(records))
		if err := g.insert(&b, t, records[start:end], start); err != nil {
			return "", err
		}
	}
	if g.cfg.Transactions {
		b.WriteString(g.dialect.commit + "\n")
	}
	if g.cfg.Comments {
		fmt.Fprintf(&b, "\n-- Total records inserted: %d\n", len(records))
	}
	return b.String(), nil
}

func (g *Generator) header(b *strings.Builder, table string, rows int) {
	rule := "-- " + strings.Repeat("=", 60) + "\n"
	b.WriteString(rule)
	fmt.Fprintf(b, "-- INSERT script for %s\n", table)
	fmt.Fprintf(b, "-- Database: %s\n", strings.ToUpper(g.dialect.Name))
	fmt.Fprintf(b, "-- Records: %d\n", rows)
	fmt.Fprintf(b, "-- Generator: toolshop-datagen %s\n", version.Get())
	b.WriteString(rule + "\n")
}

func (g *Generator) insert(b *strings.Builder, t export.Table, batch [][]string, offset int) error {
	d := g.dialect
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = d.Ident(c.Name)
	}
	fmt.Fprintf(b, "INSERT INTO %s (%s)\nVALUES\n", d.Ident(t.Name), strings.Join(cols, ", "))

	values := make([]string, len(t.Columns))
	for i, rec := range batch {
		if len(rec) != len(t.Columns) {
			return fmt.Errorf("%s row %d: %d values for %d columns", t.Name, offset+i+1, len(rec), len(t.Columns))
		}
		for j, c := range t.Columns {
			v, err := g.value(c, rec[j])
			if err != nil {
				return fmt.Errorf("%s row %d: %w", t.Name, offset+i+1, err)
			}
			values[j] = v
		}
		b.WriteString("  (" + strings.Join(values, ", ") + ")")
		if i < len(batch)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	if g.cfg.OnDuplicateUpdate && d.upsert {
		var updates []string
		for _, c := range t.Columns {
			if c.Name == "id" || c.Name == "created_at" {
				continue
			}
			updates = append(updates, fmt.Sprintf("%s = VALUES(%s)", d.Ident(c.Name), d.Ident(c.Name)))
		}
		b.WriteString("ON DUPLICATE KEY UPDATE\n  " + strings.Join(updates, ",\n  ") + "\n")
	}
	b.WriteString(";\n\n")
	return nil
}

// value renders one CSV cell as a SQL literal according to its column kind
func (g *Generator) value(c export.Column, v string) (string, error) {
	if v == "" && c.Nullable {
		return "NULL", nil
	}
	switch c.Kind {
	case export.KindInt, export.KindMoney:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return "", fmt.Errorf("column %s: invalid number %q", c.Name, v)
		}
		return v, nil
	case export.KindBool:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return "", fmt.Errorf("column %s: invalid boolean %q", c.Name, v)
		}
		return g.dialect.Bool(b), nil
	default:
		return g.dialect.String(v), nil
	}
}

// WriteDir writes <table>.sql for every table of ds into dir, in
// dependency order
func (g *Generator) WriteDir(dir string, ds *model.Dataset) ([]export.Written, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errorx.NewIOError("create directory", dir, err)
	}
	written := make([]export.Written, 0, len(export.Schema))
	for _, t := range export.Schema {
		records := t.Records(ds)
		script, err := g.Script(t, records)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, t.Name+".sql")
		if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
			return written, errorx.NewIOError("write", path, err)
		}
		written = append(written, export.Written{Table: t.Name, Path: path, Rows: len(records)})
	}
	return written, nil
}
