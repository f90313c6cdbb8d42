// Package orchestrator runs a generation end to end: configuration
// validation, the generator phases in dependency order, the integrity check
// and finally the writers. Nothing is written unless every earlier phase
// succeeded.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/amoylab/toolshop-datagen/internal/common/config"
	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/export"
	"github.com/amoylab/toolshop-datagen/internal/generator"
	"github.com/amoylab/toolshop-datagen/internal/integrity"
	"github.com/amoylab/toolshop-datagen/internal/model"
	"github.com/amoylab/toolshop-datagen/internal/report"
	"github.com/amoylab/toolshop-datagen/internal/sqlscript"
	"github.com/amoylab/toolshop-datagen/pkg/helper"
	"github.com/amoylab/toolshop-datagen/pkg/metrics"

	"go.uber.org/zap"
)

// Phase names one step of a run
type Phase string

const (
	PhaseValidate    Phase = "validate"
	PhaseIndependent Phase = "independent"
	PhaseDependent   Phase = "dependent"
	PhaseAggregation Phase = "aggregation"
	PhaseIntegrity   Phase = "integrity"
	PhaseExport      Phase = "export"
)

// GeneratePhases are the phases of Generate, in order
var GeneratePhases = []Phase{PhaseValidate, PhaseIndependent, PhaseDependent, PhaseAggregation, PhaseIntegrity}

// RunPhases are the phases of Run, in order
var RunPhases = append(append([]Phase{}, GeneratePhases...), PhaseExport)

// Result is the outcome of a successful run
type Result struct {
	Dataset *model.Dataset
	Anchor  time.Time
	Files   []export.Written
	Scripts []export.Written
	Report  string
	Elapsed time.Duration
}

// Orchestrator runs generations for one configuration
type Orchestrator struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	onPhase func(Phase)
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithMetrics sets the metrics sink. Without it metrics are collected only
// when the configuration enables them.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) { o.metrics = m }
}

// WithClock replaces time.Now, used for the default reference time
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// WithPhaseHook registers fn to be called after each successful phase
func WithPhaseHook(fn func(Phase)) Option {
	return func(o *Orchestrator) { o.onPhase = fn }
}

// New creates an orchestrator for cfg
func New(cfg *config.Config, opts ...Option) *Orchestrator {
	o := &Orchestrator{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.metrics == nil && cfg.Metrics.Enabled {
		o.metrics = metrics.New(cfg.Metrics)
	}
	return o
}

// Metrics returns the metrics sink, nil when metrics are disabled
func (o *Orchestrator) Metrics() *metrics.Metrics {
	return o.metrics
}

// Generate builds and checks the dataset without writing anything
func (o *Orchestrator) Generate(ctx context.Context) (*Result, error) {
	start := time.Now()
	res, err := o.generate(ctx)
	if err != nil {
		o.fail(err)
		return nil, err
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

// Run generates the dataset and writes the CSV files, plus the SQL scripts,
// report and metrics textfile when enabled
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res, err := o.generate(ctx)
	if err == nil {
		err = o.phase(ctx, PhaseExport, func() error { return o.write(res) })
	}
	if err != nil {
		o.fail(err)
		return nil, err
	}
	res.Elapsed = time.Since(start)
	o.metrics.RunCompleted(o.now())
	if err := o.writeMetrics(); err != nil {
		return nil, err
	}
	o.logger.Info("generation completed",
		zap.String("output", o.cfg.Generator.OutputDirectory),
		zap.Int("files", len(res.Files)),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

func (o *Orchestrator) generate(ctx context.Context) (*Result, error) {
	gen := &o.cfg.Generator
	res := &Result{Dataset: &model.Dataset{}}
	ds := res.Dataset
	var (
		env      *generator.Env
		leaves   []generator.CategoryRef
		brands   []generator.BrandRef
		imageIDs []string
		products []generator.ProductRef
	)

	err := o.phase(ctx, PhaseValidate, func() error {
		if err := gen.Validate(); err != nil {
			return err
		}
		anchor, err := gen.Anchor(o.now())
		if err != nil {
			return errorx.NewConfigurationError("reference_time", "%v", err)
		}
		res.Anchor = anchor
		env = generator.NewEnv(gen, anchor, o.logger)
		o.logger.Info("starting generation",
			zap.Int64("seed", gen.RandomSeed),
			zap.Time("anchor", anchor))
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = o.phase(ctx, PhaseIndependent, func() error {
		var err error
		if ds.Users, err = generator.Users(env, gen.NumUsers); err != nil {
			return err
		}
		o.rows(model.TableUsers, len(ds.Users))
		if ds.Categories, leaves, err = generator.Categories(env, gen.NumCategories); err != nil {
			return err
		}
		o.rows(model.TableCategories, len(ds.Categories))
		ds.Brands, brands = generator.Brands(env, gen.NumBrands)
		o.rows(model.TableBrands, len(ds.Brands))
		ds.ProductImages, imageIDs = generator.ProductImages(env, gen.NumProductImages)
		o.rows(model.TableProductImages, len(ds.ProductImages))
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = o.phase(ctx, PhaseDependent, func() error {
		var err error
		if ds.Products, products, err = generator.Products(env, gen.NumProducts, leaves, brands, imageIDs); err != nil {
			return err
		}
		o.rows(model.TableProducts, len(ds.Products))

		userIDs := make([]string, len(ds.Users))
		for i, u := range ds.Users {
			userIDs[i] = u.ID
		}
		productIDs := make([]string, len(products))
		for i, p := range products {
			productIDs[i] = p.ID
		}
		if ds.Favorites, err = generator.Favorites(env, gen.NumFavorites, userIDs, productIDs); err != nil {
			return err
		}
		o.rows(model.TableFavorites, len(ds.Favorites))
		if ds.Invoices, err = generator.Invoices(env, gen.NumInvoices, userIDs); err != nil {
			return err
		}
		o.rows(model.TableInvoices, len(ds.Invoices))
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = o.phase(ctx, PhaseAggregation, func() error {
		var err error
		if ds.InvoiceItems, err = generator.InvoiceItems(env, ds.Invoices, products); err != nil {
			return err
		}
		o.rows(model.TableInvoiceItems, len(ds.InvoiceItems))
		if ds.Payments, err = generator.Payments(env, gen.NumPayments, ds.Invoices); err != nil {
			return err
		}
		o.rows(model.TablePayments, len(ds.Payments))
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = o.phase(ctx, PhaseIntegrity, func() error {
		violations := integrity.Check(ds)
		o.metrics.IntegrityViolations(len(violations))
		for _, v := range violations {
			o.logger.Debug("integrity violation", zap.String("violation", v.String()))
		}
		return integrity.AsError(violations)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// write runs the writers of the export phase
func (o *Orchestrator) write(res *Result) error {
	dir := o.cfg.Generator.OutputDirectory
	files, err := export.WriteCSV(dir, res.Dataset)
	if err != nil {
		return err
	}
	res.Files = files
	for _, f := range files {
		o.logger.Debug("wrote file", zap.String("path", f.Path), zap.Int("rows", f.Rows))
	}

	if o.cfg.SQL.Enabled {
		g, err := sqlscript.New(o.cfg.SQL)
		if err != nil {
			return err
		}
		sqlDir := helper.ResolveUnder(dir, o.cfg.SQL.Directory)
		if res.Scripts, err = g.WriteDir(sqlDir, res.Dataset); err != nil {
			return err
		}
		o.logger.Info("wrote SQL scripts", zap.String("dialect", g.Dialect().Name), zap.String("dir", sqlDir))
	}

	if o.cfg.Report.Enabled {
		seed := o.cfg.Generator.RandomSeed
		summary := report.Summarize(res.Dataset, report.RunInfo{
			Seed:      &seed,
			Anchor:    export.FormatTimestamp(res.Anchor),
			OutputDir: dir,
		})
		if err := summary.AddFiles(res.Files); err != nil {
			return err
		}
		res.Report = helper.ResolveUnder(dir, o.cfg.Report.FileName)
		if err := report.Write(res.Report, summary); err != nil {
			return err
		}
		o.logger.Info("wrote report", zap.String("path", res.Report))
	}
	return nil
}

func (o *Orchestrator) writeMetrics() error {
	if o.metrics == nil || !o.cfg.Metrics.Enabled || o.cfg.Metrics.Textfile == "" {
		return nil
	}
	path := helper.ResolveUnder(o.cfg.Generator.OutputDirectory, o.cfg.Metrics.Textfile)
	if err := o.metrics.WriteTextfile(path); err != nil {
		return errorx.NewIOError("write metrics", path, err)
	}
	o.logger.Debug("wrote metrics", zap.String("path", path))
	return nil
}

// phase runs fn as the named phase, timing it and wrapping its error with
// the phase name
func (o *Orchestrator) phase(ctx context.Context, name Phase, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("phase %s: %w", name, err)
	}
	start := time.Now()
	o.metrics.PhaseStart(string(name))
	o.logger.Debug("phase started", zap.String("phase", string(name)))

	err := fn()
	o.metrics.PhaseDone(string(name), start, err)
	if err != nil {
		return fmt.Errorf("phase %s: %w", name, err)
	}
	o.logger.Info("phase completed",
		zap.String("phase", string(name)),
		zap.Duration("elapsed", time.Since(start)))
	if o.onPhase != nil {
		o.onPhase(name)
	}
	return nil
}

func (o *Orchestrator) rows(table string, n int) {
	o.metrics.RowsGenerated(table, n)
	o.logger.Debug("generated table", zap.String("table", table), zap.Int("rows", n))
}

func (o *Orchestrator) fail(err error) {
	category := "unknown"
	if c, ok := errorx.CategoryOf(err); ok {
		category = string(c)
	}
	o.metrics.RunFailed(category)
	o.logger.Error("generation failed", zap.String("category", category), zap.Error(err))
}
