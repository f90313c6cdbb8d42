package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amoylab/toolshop-datagen/internal/database"
	"github.com/amoylab/toolshop-datagen/internal/export"
	"github.com/amoylab/toolshop-datagen/internal/integrity"
	"github.com/amoylab/toolshop-datagen/internal/model"
	"github.com/amoylab/toolshop-datagen/internal/report"
	"github.com/amoylab/toolshop-datagen/internal/sqlscript"
	"github.com/amoylab/toolshop-datagen/pkg/helper"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Commands working on a directory written by generate

var (
	sqlDialect string
	sqlOut     string
	sqlBatch   int
	sqlUpsert  bool

	importReset bool

	reportOut string

	validateCmd = &cobra.Command{
		Use:   "validate <dir>",
		Short: "Check the referential integrity of a generated CSV directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	sqlCmd = &cobra.Command{
		Use:   "sql <dir>",
		Short: "Write INSERT scripts for a generated CSV directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runSQL,
	}

	importCmd = &cobra.Command{
		Use:   "import <dir>",
		Short: "Load a generated CSV directory into the configured database",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}

	reportCmd = &cobra.Command{
		Use:   "report <dir>",
		Short: "Render the Markdown report of a generated CSV directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runReport,
	}
)

func init() {
	sqlCmd.Flags().StringVar(&sqlDialect, "dialect", "", "SQL dialect (mysql, postgresql, sqlite)")
	sqlCmd.Flags().StringVarP(&sqlOut, "output", "o", "", "script directory (default <dir>/sql)")
	sqlCmd.Flags().IntVar(&sqlBatch, "batch-size", 0, "rows per INSERT statement")
	sqlCmd.Flags().BoolVar(&sqlUpsert, "on-duplicate-update", false, "add ON DUPLICATE KEY UPDATE (mysql)")

	importCmd.Flags().BoolVar(&importReset, "reset", false, "delete existing rows before importing")

	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "report file (default stdout)")

	rootCmd.AddCommand(validateCmd, sqlCmd, importCmd, reportCmd)
}

// readChecked reads dir and fails on the first integrity violation
func readChecked(dir string, log *zap.Logger) (*model.Dataset, error) {
	ds, err := export.ReadCSV(dir)
	if err != nil {
		return nil, err
	}
	if err := integrity.Validate(ds); err != nil {
		return nil, err
	}
	log.Debug("dataset loaded", zap.String("dir", dir), zap.Any("counts", ds.Counts()))
	return ds, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	_, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	ds, err := export.ReadCSV(args[0])
	if err != nil {
		return err
	}
	violations := integrity.Check(ds)
	out := cmd.OutOrStdout()
	for _, v := range violations {
		fmt.Fprintln(out, v.String())
	}
	if err := integrity.AsError(violations); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %s rows, no violations\n", args[0], humanize.Comma(int64(totalRows(ds.Counts()))))
	return nil
}

func runSQL(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	f := cmd.Flags()
	if f.Changed("dialect") {
		cfg.SQL.Dialect = sqlDialect
	}
	if f.Changed("batch-size") {
		cfg.SQL.BatchSize = sqlBatch
	}
	if f.Changed("on-duplicate-update") {
		cfg.SQL.OnDuplicateUpdate = sqlUpsert
	}
	g, err := sqlscript.New(cfg.SQL)
	if err != nil {
		return err
	}
	ds, err := readChecked(args[0], log)
	if err != nil {
		return err
	}
	dir := sqlOut
	if dir == "" {
		dir = helper.ResolveUnder(args[0], cfg.SQL.Directory)
	}
	written, err := g.WriteDir(dir, ds)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, w := range written {
		fmt.Fprintf(out, "  %-20s %10s rows %10s\n", filepath.Base(w.Path), humanize.Comma(int64(w.Rows)), fileSize(w.Path))
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if cmd.Flags().Changed("reset") {
		cfg.Database.Reset = importReset
	}
	ds, err := readChecked(args[0], log)
	if err != nil {
		return err
	}

	store, err := database.Open(&cfg.Database, log)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if err := store.Migrate(ctx); err != nil {
		return err
	}
	inserted, err := store.Import(ctx, ds)
	if err != nil {
		return err
	}
	log.Info("import completed", zap.String("database", cfg.Database.Type), zap.Any("rows", inserted))

	out := cmd.OutOrStdout()
	for _, table := range model.Tables {
		fmt.Fprintf(out, "  %-20s %10s rows\n", table, humanize.Comma(int64(inserted[table])))
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	_, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	ds, err := export.ReadCSV(args[0])
	if err != nil {
		return err
	}
	summary := report.Summarize(ds, report.RunInfo{OutputDir: args[0]})
	if err := summary.AddFiles(csvFiles(args[0], ds)); err != nil {
		return err
	}
	if reportOut != "" {
		return report.Write(reportOut, summary)
	}
	md, err := report.Render(summary)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), md)
	return err
}

// csvFiles lists the CSV files of a generated directory
func csvFiles(dir string, ds *model.Dataset) []export.Written {
	counts := ds.Counts()
	files := make([]export.Written, 0, len(export.Schema))
	for _, t := range export.Schema {
		path := filepath.Join(dir, t.FileName())
		if _, err := os.Stat(path); err != nil {
			continue
		}
		files = append(files, export.Written{Table: t.Name, Path: path, Rows: counts[t.Name]})
	}
	return files
}
