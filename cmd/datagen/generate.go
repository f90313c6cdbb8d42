package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/amoylab/toolshop-datagen/internal/common/config"
	"github.com/amoylab/toolshop-datagen/internal/orchestrator"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// countFlags map generate's count flags onto generator options
var countFlags = []struct {
	name  string
	usage string
	field func(*config.GeneratorConfig) *int
}{
	{"users", "number of users", func(g *config.GeneratorConfig) *int { return &g.NumUsers }},
	{"categories", "number of categories", func(g *config.GeneratorConfig) *int { return &g.NumCategories }},
	{"root-categories", "number of root categories", func(g *config.GeneratorConfig) *int { return &g.NumRootCategories }},
	{"brands", "number of brands", func(g *config.GeneratorConfig) *int { return &g.NumBrands }},
	{"images", "number of product images", func(g *config.GeneratorConfig) *int { return &g.NumProductImages }},
	{"products", "number of products", func(g *config.GeneratorConfig) *int { return &g.NumProducts }},
	{"favorites", "number of favorites", func(g *config.GeneratorConfig) *int { return &g.NumFavorites }},
	{"invoices", "number of invoices", func(g *config.GeneratorConfig) *int { return &g.NumInvoices }},
	{"invoice-items", "maximum number of invoice items", func(g *config.GeneratorConfig) *int { return &g.NumInvoiceItems }},
	{"payments", "number of payments", func(g *config.GeneratorConfig) *int { return &g.NumPayments }},
}

var (
	genSeed          int64
	genOutput        string
	genReferenceTime string
	genSQL           string
	genReport        bool
	genMetrics       bool
	genNoProgress    bool

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate the dataset and write one CSV file per table",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
)

func init() {
	f := generateCmd.Flags()
	for _, c := range countFlags {
		f.Int(c.name, 0, c.usage)
	}
	f.Int64Var(&genSeed, "seed", 0, "random seed")
	f.StringVarP(&genOutput, "output", "o", "", "output directory")
	f.StringVar(&genReferenceTime, "reference-time", "", `reference "now" for relative dates, e.g. "2025-06-01 00:00:00"`)
	f.StringVar(&genSQL, "sql", "", "also write INSERT scripts in this dialect (mysql, postgresql, sqlite)")
	f.BoolVar(&genReport, "report", false, "also write the Markdown report")
	f.BoolVar(&genMetrics, "metrics", false, "also write the Prometheus metrics textfile")
	f.BoolVar(&genNoProgress, "no-progress", false, "do not draw the progress bar")
	rootCmd.AddCommand(generateCmd)
}

// applyGenerateFlags copies every flag set on the command line over cfg
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	for _, c := range countFlags {
		if !f.Changed(c.name) {
			continue
		}
		v, err := f.GetInt(c.name)
		if err != nil {
			return err
		}
		*c.field(&cfg.Generator) = v
	}
	if f.Changed("seed") {
		cfg.Generator.RandomSeed = genSeed
	}
	if f.Changed("output") {
		cfg.Generator.OutputDirectory = genOutput
	}
	if f.Changed("reference-time") {
		cfg.Generator.ReferenceTime = genReferenceTime
	}
	if f.Changed("sql") {
		cfg.SQL.Enabled = true
		cfg.SQL.Dialect = genSQL
	}
	if f.Changed("report") {
		cfg.Report.Enabled = genReport
	}
	if f.Changed("metrics") {
		cfg.Metrics.Enabled = genMetrics
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := applyGenerateFlags(cmd, cfg); err != nil {
		return err
	}

	opts := []orchestrator.Option{orchestrator.WithLogger(log)}
	var bar *progressbar.ProgressBar
	if !genNoProgress && !quiet {
		bar = newProgressBar(cmd.ErrOrStderr(), len(orchestrator.RunPhases))
		opts = append(opts, orchestrator.WithPhaseHook(func(p orchestrator.Phase) {
			bar.Describe(string(p))
			_ = bar.Add(1)
		}))
	}

	res, err := orchestrator.New(cfg, opts...).Run(cmd.Context())
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s rows into %s in %s\n",
		humanize.Comma(int64(totalRows(res.Dataset.Counts()))), cfg.Generator.OutputDirectory, res.Elapsed.Round(time.Millisecond))
	for _, f := range res.Files {
		fmt.Fprintf(out, "  %-20s %10s rows %10s\n", f.Table, humanize.Comma(int64(f.Rows)), fileSize(f.Path))
	}
	if len(res.Scripts) > 0 {
		fmt.Fprintf(out, "SQL scripts (%s) in %s\n", cfg.SQL.Dialect, cfg.SQL.Directory)
	}
	if res.Report != "" {
		fmt.Fprintf(out, "Report written to %s\n", res.Report)
	}
	return nil
}

func newProgressBar(w io.Writer, phases int) *progressbar.ProgressBar {
	return progressbar.NewOptions(phases,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func totalRows(counts map[string]int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "?"
	}
	return humanize.Bytes(uint64(info.Size()))
}
