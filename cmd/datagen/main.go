package main

import (
	"fmt"
	"os"

	"github.com/amoylab/toolshop-datagen/internal/common/config"
	"github.com/amoylab/toolshop-datagen/pkg/helper"
	"github.com/amoylab/toolshop-datagen/pkg/logger"
	"github.com/amoylab/toolshop-datagen/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultConfigName = "datagen.yaml"

var (
	configPath string
	quiet      bool

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of datagen",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Banner("datagen"))
		},
	}

	rootCmd = &cobra.Command{
		Use:   "datagen",
		Short: "Toolshop synthetic data generator",
		Long: `datagen generates a referentially consistent synthetic dataset for the
Toolshop e-commerce schema: users, categories, brands, product images,
products, favorites, invoices, invoice items and payments. The same seed and
configuration always produce the same CSV files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "conf", "c", "", "path to configuration file (default "+defaultConfigName+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration file. Without --conf a missing
// default file is not an error and the built-in defaults are used.
func loadConfig() (*config.Config, error) {
	name := configPath
	if name == "" {
		if _, err := os.Stat(helper.GetCfgPath(defaultConfigName)); err != nil {
			return config.Default(), nil
		}
		name = defaultConfigName
	}
	cfg, path, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration %s: %w", path, err)
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if quiet {
		logger.Quiet(&cfg.Logger)
	}
	log, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
