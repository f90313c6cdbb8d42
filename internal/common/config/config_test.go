package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnv(t *testing.T) {
	t.Setenv("X_A", "va")
	in := []byte("a: ${X_A:da}\nb: ${X_B:db}")
	out := resolveEnv(in)
	assert.Contains(t, string(out), "a: va")
	assert.Contains(t, string(out), "b: db")
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	old, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(old) })
	require.NoError(t, os.Chdir(tmp))
	return tmp
}

func TestLoadConfig_YAML(t *testing.T) {
	tmp := chdirTemp(t)
	t.Setenv("DATAGEN_SEED", "7")

	yaml := `
generator:
  num_users: 10
  num_products: 20
  random_seed: ${DATAGEN_SEED:42}
  output_directory: ${DATAGEN_OUT:fixtures}
  min_price: 5.5
logger:
  level: debug
sql:
  dialect: postgresql
`
	file := filepath.Join(tmp, "datagen.yaml")
	require.NoError(t, os.WriteFile(file, []byte(yaml), 0o644))

	cfg, path, err := LoadConfig("datagen.yaml")
	require.NoError(t, err)
	realFile, _ := filepath.EvalSymlinks(file)
	realPath, _ := filepath.EvalSymlinks(path)
	assert.Equal(t, realFile, realPath)

	assert.Equal(t, 10, cfg.Generator.NumUsers)
	assert.Equal(t, 20, cfg.Generator.NumProducts)
	assert.Equal(t, int64(7), cfg.Generator.RandomSeed)
	assert.Equal(t, "fixtures", cfg.Generator.OutputDirectory)
	assert.Equal(t, 5.5, cfg.Generator.MinPrice)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "postgresql", cfg.SQL.Dialect)

	// untouched keys keep defaults
	assert.Equal(t, 500, cfg.Generator.NumBrands)
	assert.Equal(t, 0.10, cfg.Generator.PriceVariation)
	assert.Equal(t, 100, cfg.SQL.BatchSize)
}

func TestLoadConfig_TOML(t *testing.T) {
	tmp := chdirTemp(t)
	content := `
[generator]
num_users = 3
max_price = 50.0
reference_time = "2025-03-01 12:00:00"

[database]
type = "sqlite"
dbname = ":memory:"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "datagen.toml"), []byte(content), 0o644))

	cfg, _, err := LoadConfig("datagen.toml")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Generator.NumUsers)
	assert.Equal(t, 50.0, cfg.Generator.MaxPrice)
	assert.Equal(t, ":memory:", cfg.Database.DBName)

	anchor, err := cfg.Generator.Anchor(time.Now())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), anchor)
}

func TestLoadConfig_Missing(t *testing.T) {
	chdirTemp(t)
	_, _, err := LoadConfig("nope.yaml")
	assert.Error(t, err)
}

func TestGeneratorConfig_DefaultsAreValid(t *testing.T) {
	cfg := DefaultGenerator()
	assert.NoError(t, cfg.Validate())
}

func TestGeneratorConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratorConfig)
		field  string
	}{
		{"zero users", func(c *GeneratorConfig) { c.NumUsers = 0 }, "num_users"},
		{"negative payments", func(c *GeneratorConfig) { c.NumPayments = -1 }, "num_payments"},
		{"price range", func(c *GeneratorConfig) { c.MinPrice, c.MaxPrice = 10, 5 }, "min_price"},
		{"no cent in range", func(c *GeneratorConfig) { c.MinPrice, c.MaxPrice = 1.001, 1.009 }, "max_price"},
		{"stock range", func(c *GeneratorConfig) { c.MinStock, c.MaxStock = 10, 1 }, "min_stock"},
		{"item range", func(c *GeneratorConfig) { c.MinInvoiceItems, c.MaxInvoiceItems = 4, 2 }, "min_invoice_items"},
		{"quantity range", func(c *GeneratorConfig) { c.MinQuantityPerItem = 0 }, "min_quantity_per_item"},
		{"probability high", func(c *GeneratorConfig) { c.AdminTOTPProbability = 1.5 }, "admin_totp_probability"},
		{"probability low", func(c *GeneratorConfig) { c.ProductRentalProbability = -0.1 }, "product_rental_probability"},
		{"variation", func(c *GeneratorConfig) { c.PriceVariation = 1 }, "price_variation"},
		{"zero roots", func(c *GeneratorConfig) { c.NumRootCategories = 0 }, "num_root_categories"},
		{"item budget", func(c *GeneratorConfig) { c.NumInvoices, c.NumInvoiceItems, c.MinInvoiceItems = 10, 15, 2 }, "num_invoice_items"},
		{"password hash", func(c *GeneratorConfig) { c.PasswordHash = "plain" }, "password_hash"},
		{"output dir", func(c *GeneratorConfig) { c.OutputDirectory = "" }, "output_directory"},
		{"reference time", func(c *GeneratorConfig) { c.ReferenceTime = "yesterday" }, "reference_time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGenerator()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)

			var cfgErr *errorx.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			fields := make([]string, 0, len(cfgErr.Fields))
			for _, f := range cfgErr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestGeneratorConfig_RootsAboveCategoriesAllowed(t *testing.T) {
	cfg := DefaultGenerator()
	cfg.NumCategories = 4
	assert.Greater(t, cfg.NumRootCategories, cfg.NumCategories)
	assert.NoError(t, cfg.Validate())
}

func TestGeneratorConfig_AnchorDefault(t *testing.T) {
	cfg := DefaultGenerator()
	now := time.Date(2025, 10, 17, 15, 4, 5, 0, time.UTC)
	anchor, err := cfg.Anchor(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC), anchor)
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	pg := DatabaseConfig{Type: "postgres", User: "u", Password: "p", Host: "h", Port: 5432, DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", pg.GetDSN())

	my := DatabaseConfig{Type: "mysql", User: "u", Password: "p", Host: "h", Port: 3306, DBName: "d"}
	assert.Equal(t, "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=Local", my.GetDSN())

	lite := DatabaseConfig{Type: "sqlite", DBName: "/tmp/x.db"}
	assert.Equal(t, "/tmp/x.db", lite.GetDSN())

	assert.Equal(t, "", (&DatabaseConfig{Type: "oracle"}).GetDSN())
}
