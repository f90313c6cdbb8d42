package orchestrator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amoylab/toolshop-datagen/internal/common/config"
	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/integrity"
	"github.com/amoylab/toolshop-datagen/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig(dir string) *config.Config {
	cfg := config.Default()
	g := &cfg.Generator
	g.NumUsers = 10
	g.NumCategories = 4
	g.NumBrands = 5
	g.NumProductImages = 5
	g.NumProducts = 20
	g.NumFavorites = 15
	g.NumInvoices = 6
	g.NumInvoiceItems = 20
	g.NumPayments = 6
	g.RandomSeed = 42
	g.ReferenceTime = "2025-06-01 00:00:00"
	g.OutputDirectory = dir
	return cfg
}

func TestRun_Deterministic(t *testing.T) {
	dirA := filepath.Join(t.TempDir(), "a")
	dirB := filepath.Join(t.TempDir(), "b")

	resA, err := New(smallConfig(dirA)).Run(context.Background())
	require.NoError(t, err)
	_, err = New(smallConfig(dirB)).Run(context.Background())
	require.NoError(t, err)

	for _, name := range []string{"users.csv", "favorites.csv", "products.csv", "invoices.csv", "payments.csv"} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), name)
	}

	favorites, err := os.ReadFile(filepath.Join(dirA, "favorites.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(favorites), "\n"), "\n")
	require.Len(t, lines, 16)
	pairs := map[string]bool{}
	for _, line := range lines[1:] {
		f := strings.Split(line, ",")
		pair := f[1] + "/" + f[2]
		assert.False(t, pairs[pair], "duplicate favorite %s", pair)
		pairs[pair] = true
	}

	assert.Len(t, resA.Files, len(model.Tables))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), resA.Anchor)
	assert.Empty(t, integrity.Check(resA.Dataset))
}

func TestRun_SeedChangesOutput(t *testing.T) {
	cfgA := smallConfig(t.TempDir())
	cfgB := smallConfig(t.TempDir())
	cfgB.Generator.RandomSeed = 43

	a, err := New(cfgA).Generate(context.Background())
	require.NoError(t, err)
	b, err := New(cfgB).Generate(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, a.Dataset.Users[0].Email+a.Dataset.Users[0].ID, b.Dataset.Users[0].Email+b.Dataset.Users[0].ID)
}

func TestGenerate_Counts(t *testing.T) {
	cfg := smallConfig(filepath.Join(t.TempDir(), "never"))
	res, err := New(cfg).Generate(context.Background())
	require.NoError(t, err)

	counts := res.Dataset.Counts()
	assert.Equal(t, 10, counts[model.TableUsers])
	assert.Equal(t, 4, counts[model.TableCategories])
	assert.Equal(t, 20, counts[model.TableProducts])
	assert.Equal(t, 15, counts[model.TableFavorites])
	assert.Equal(t, 6, counts[model.TableInvoices])
	assert.LessOrEqual(t, counts[model.TableInvoiceItems], 20)
	assert.GreaterOrEqual(t, counts[model.TableInvoiceItems], 6)
	assert.Equal(t, 6, counts[model.TablePayments])

	_, err = os.Stat(cfg.Generator.OutputDirectory)
	assert.True(t, os.IsNotExist(err), "Generate must not write")
}

func TestGenerate_DefaultsWithFewCategories(t *testing.T) {
	cfg := config.Default()
	g := &cfg.Generator
	g.NumUsers = 10
	g.NumCategories = 4
	g.NumProducts = 20
	g.NumFavorites = 15
	g.RandomSeed = 42
	g.OutputDirectory = t.TempDir()
	require.Greater(t, g.NumRootCategories, g.NumCategories)

	res, err := New(cfg).Generate(context.Background())
	require.NoError(t, err)

	ds := res.Dataset
	require.Len(t, ds.Categories, 4)
	for _, c := range ds.Categories {
		assert.Nil(t, c.ParentID, "%s has a parent", c.Name)
	}
	require.Len(t, ds.Favorites, 15)
	pairs := map[string]bool{}
	for _, f := range ds.Favorites {
		pair := f.UserID + "/" + f.ProductID
		assert.False(t, pairs[pair], "duplicate favorite %s", pair)
		pairs[pair] = true
	}
	assert.Empty(t, integrity.Check(ds))
}

func TestRun_TooManyFavorites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := smallConfig(dir)
	cfg.Generator.NumFavorites = 201

	var phases []Phase
	_, err := New(cfg, WithPhaseHook(func(p Phase) { phases = append(phases, p) })).Run(context.Background())
	require.Error(t, err)

	var constraint *errorx.GenerationConstraintError
	require.True(t, errors.As(err, &constraint))
	assert.Equal(t, model.TableFavorites, constraint.Entity)
	assert.Contains(t, err.Error(), "phase dependent")
	assert.Equal(t, []Phase{PhaseValidate, PhaseIndependent}, phases)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "no files may be written after a failure")
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := smallConfig(t.TempDir())
	cfg.Generator.MinPrice = 100
	cfg.Generator.MaxPrice = 10

	called := false
	_, err := New(cfg, WithPhaseHook(func(Phase) { called = true })).Run(context.Background())
	var cfgErr *errorx.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "phase validate")
	assert.False(t, called)

	category, ok := errorx.CategoryOf(err)
	assert.True(t, ok)
	assert.Equal(t, errorx.CategoryConfiguration, category)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(smallConfig(t.TempDir())).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_AllWriters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := smallConfig(dir)
	cfg.SQL.Enabled = true
	cfg.SQL.Dialect = "postgresql"
	cfg.Report.Enabled = true
	cfg.Metrics.Enabled = true

	var phases []Phase
	o := New(cfg, WithPhaseHook(func(p Phase) { phases = append(phases, p) }))
	res, err := o.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunPhases, phases)

	require.Len(t, res.Scripts, len(model.Tables))
	script, err := os.ReadFile(filepath.Join(dir, "sql", "users.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(script), `INSERT INTO "users"`)

	assert.Equal(t, filepath.Join(dir, "REPORT.md"), res.Report)
	rep, err := os.ReadFile(res.Report)
	require.NoError(t, err)
	assert.Contains(t, string(rep), "- Seed: 42")
	assert.Contains(t, string(rep), "| users.csv | 10 |")

	prom, err := os.ReadFile(filepath.Join(dir, "metrics.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), `toolshop_datagen_rows_generated_total{table="users"} 10`)
	assert.NotNil(t, o.Metrics())
}
