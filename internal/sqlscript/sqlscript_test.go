package sqlscript

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amoylab/toolshop-datagen/internal/common/config"
	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/export"
	"github.com/amoylab/toolshop-datagen/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(t *testing.T, name string) export.Table {
	t.Helper()
	tbl, ok := export.Lookup(name)
	require.True(t, ok)
	return tbl
}

func newGenerator(t *testing.T, cfg config.SQLConfig) *Generator {
	t.Helper()
	g, err := New(cfg)
	require.NoError(t, err)
	return g
}

func TestLookupDialect(t *testing.T) {
	for _, name := range []string{"mysql", "postgresql", "postgres", "SQLite"} {
		_, err := LookupDialect(name)
		assert.NoError(t, err, name)
	}
	_, err := LookupDialect("oracle")
	assert.Error(t, err)

	_, err = New(config.SQLConfig{Dialect: "oracle"})
	var cfgErr *errorx.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestDialect_Literals(t *testing.T) {
	my, _ := LookupDialect("mysql")
	pg, _ := LookupDialect("postgresql")

	assert.Equal(t, "'O''Brien'", pg.String("O'Brien"))
	assert.Equal(t, `'C:\\tools'`, my.String(`C:\tools`))
	assert.Equal(t, `'C:\tools'`, pg.String(`C:\tools`))
	assert.Equal(t, "TRUE", pg.Bool(true))
	assert.Equal(t, "0", my.Bool(false))
	assert.Equal(t, "`users`", my.Ident("users"))
	assert.Equal(t, `"users"`, pg.Ident("users"))
}

func TestScript_ValuesByKind(t *testing.T) {
	g := newGenerator(t, config.SQLConfig{Dialect: "postgresql"})
	records := [][]string{
		{"ID1", "INV-2024-000001", "2024-05-01 10:00:00", "1 O'Neil Road", "Austin", "", "US", "", "U1", "34.50", "2024-05-01 10:00:00", "2024-05-02 10:00:00"},
	}
	script, err := g.Script(table(t, model.TableInvoices), records)
	require.NoError(t, err)

	assert.Contains(t, script, `INSERT INTO "invoices" ("id", "invoice_number", "invoice_date"`)
	assert.Contains(t, script, "('ID1', 'INV-2024-000001', '2024-05-01 10:00:00', '1 O''Neil Road', 'Austin', NULL, 'US', NULL, 'U1', 34.50, ")
	assert.NotContains(t, script, "BEGIN")
	assert.NotContains(t, script, "--")
	assert.True(t, strings.HasSuffix(script, ";\n\n"))
}

func TestScript_Booleans(t *testing.T) {
	rec := []string{"P1", "Hammer", "", "9.99", "true", "false", "C1", "B1", "I1", "true", "3", "2024-01-01 00:00:00", "2024-01-01 00:00:00"}

	pg := newGenerator(t, config.SQLConfig{Dialect: "postgresql"})
	script, err := pg.Script(table(t, model.TableProducts), [][]string{rec})
	require.NoError(t, err)
	assert.Contains(t, script, "('P1', 'Hammer', '', 9.99, TRUE, FALSE, 'C1', 'B1', 'I1', TRUE, 3, ")

	lite := newGenerator(t, config.SQLConfig{Dialect: "sqlite"})
	script, err = lite.Script(table(t, model.TableProducts), [][]string{rec})
	require.NoError(t, err)
	assert.Contains(t, script, "('P1', 'Hammer', '', 9.99, 1, 0, 'C1', 'B1', 'I1', 1, 3, ")
}

func TestScript_BatchesAndTransaction(t *testing.T) {
	g := newGenerator(t, config.SQLConfig{Dialect: "mysql", BatchSize: 2, Transactions: true, Comments: true})
	records := make([][]string, 5)
	for i := range records {
		records[i] = []string{"B" + string(rune('0'+i)), "Brand", "brand", "2024-01-01 00:00:00", "2024-01-01 00:00:00"}
	}
	script, err := g.Script(table(t, model.TableBrands), records)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(script, "INSERT INTO `brands`"))
	assert.True(t, strings.Index(script, "START TRANSACTION;") < strings.Index(script, "INSERT INTO"))
	assert.True(t, strings.LastIndex(script, "COMMIT;") > strings.LastIndex(script, "INSERT INTO"))
	assert.Contains(t, script, "-- Records: 5")
	assert.Contains(t, script, "-- Database: MYSQL")
	assert.Contains(t, script, "-- Total records inserted: 5")
	assert.NotContains(t, script, "ON DUPLICATE KEY UPDATE")
}

func TestScript_OnDuplicateUpdate(t *testing.T) {
	rec := [][]string{{"C1", "Hand Tools", "hand-tools", "", "2024-01-01 00:00:00", "2024-01-01 00:00:00"}}

	my := newGenerator(t, config.SQLConfig{Dialect: "mysql", OnDuplicateUpdate: true})
	script, err := my.Script(table(t, model.TableCategories), rec)
	require.NoError(t, err)
	assert.Contains(t, script, "ON DUPLICATE KEY UPDATE\n  `name` = VALUES(`name`),\n  `slug` = VALUES(`slug`),\n  `parent_id` = VALUES(`parent_id`),\n  `updated_at` = VALUES(`updated_at`)\n;")
	assert.NotContains(t, script, "`id` = VALUES")
	assert.NotContains(t, script, "`created_at` = VALUES")

	pg := newGenerator(t, config.SQLConfig{Dialect: "postgresql", OnDuplicateUpdate: true})
	script, err = pg.Script(table(t, model.TableCategories), rec)
	require.NoError(t, err)
	assert.NotContains(t, script, "ON DUPLICATE")
}

func TestScript_InvalidValues(t *testing.T) {
	g := newGenerator(t, config.SQLConfig{Dialect: "mysql"})
	_, err := g.Script(table(t, model.TableInvoiceItems), [][]string{{"I1", "V1", "P1", "two", "1.00", "", ""}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column quantity")

	_, err = g.Script(table(t, model.TableBrands), [][]string{{"B1", "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brands row 1")
}

func TestScript_Empty(t *testing.T) {
	g := newGenerator(t, config.SQLConfig{Dialect: "sqlite", Transactions: true})
	script, err := g.Script(table(t, model.TableFavorites), nil)
	require.NoError(t, err)
	assert.Equal(t, "BEGIN TRANSACTION;\n\nCOMMIT;\n", script)
}

func TestWriteDir(t *testing.T) {
	stamp := model.Timestamps{CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), UpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	ds := &model.Dataset{
		Brands: []model.Brand{{ID: "B1", Name: "Stanley", Slug: "stanley", Timestamps: stamp}},
		Products: []model.Product{{
			ID: "P1", Name: "Stanley Claw Hammer", Price: decimal.RequireFromString("19.9"),
			CategoryID: "C1", BrandID: "B1", ProductImageID: "I1", InStock: true, Stock: 4, Timestamps: stamp,
		}},
	}
	dir := filepath.Join(t.TempDir(), "sql")
	g := newGenerator(t, config.SQLConfig{Dialect: "mysql"})
	written, err := g.WriteDir(dir, ds)
	require.NoError(t, err)
	require.Len(t, written, len(export.Schema))
	assert.Equal(t, filepath.Join(dir, "users.sql"), written[0].Path)

	data, err := os.ReadFile(filepath.Join(dir, "products.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "('P1', 'Stanley Claw Hammer', '', 19.90, 0, 0, 'C1', 'B1', 'I1', 1, 4, '2024-01-02 03:04:05', '2024-01-02 03:04:05')")
}
