package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mintkit/mintlint/internal/app"
	"github.com/mintkit/mintlint/internal/config"
	"github.com/mintkit/mintlint/internal/output"
	"github.com/mintkit/mintlint/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	verbose    bool
	formatFlag string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mintlint",
	Short: "Validate documentation navigation manifests",
	Long: `mintlint is a build-time gate for documentation sites. It loads a
mint.json navigation manifest, validates its schema and navigation tree
(duplicate pages, empty groups), and checks that every page path resolves
to a document on disk.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.mintlint/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "pretty", "Report format (pretty, json, yaml)")

	// Audit flags
	rootCmd.PersistentFlags().StringP("docs-dir", "d", ".", "Documentation root directory")
	rootCmd.PersistentFlags().Bool("strict", false, "Treat missing pages as fatal")

	// Cache flags
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable the report cache")
	rootCmd.PersistentFlags().Duration("cache-ttl", 24*time.Hour, "Report cache TTL")

	// Bind flags to viper
	_ = viper.BindPFlag("docs.dir", rootCmd.PersistentFlags().Lookup("docs-dir"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	_ = viper.BindPFlag("cache.ttl", rootCmd.PersistentFlags().Lookup("cache-ttl"))

	// Add subcommands
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate <mint.json>",
	Short: "Validate a manifest's schema and navigation tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		auditor, err := newAuditor(true, false)
		if err != nil {
			return err
		}
		defer auditor.Close()

		report, err := auditor.Validate(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeReport(report)
	},
}

var pathsCmd = &cobra.Command{
	Use:   "paths <mint.json>",
	Short: "List every leaf page path in navigation order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		auditor, err := newAuditor(true, false)
		if err != nil {
			return err
		}
		defer auditor.Close()

		report, err := auditor.Validate(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, path := range report.Pages {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <mint.json>",
	Short: "Validate and check every page path against the docs directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		noCache, _ := cmd.Flags().GetBool("no-cache")

		auditor, err := newAuditor(noCache, true)
		if err != nil {
			return err
		}
		defer auditor.Close()

		report, err := auditor.Audit(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := writeReport(report); err != nil {
			return err
		}

		if report.HasMissing() && viper.GetBool("strict") {
			return fmt.Errorf("%d pages did not resolve", len(report.Missing))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

func newAuditor(disableCache, progress bool) (*app.Auditor, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if disableCache {
		cfg.Cache.Enabled = false
	}

	return app.New(app.Options{
		Config:   cfg,
		Verbose:  verbose,
		Progress: progress,
	})
}

func writeReport(report *output.Report) error {
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	return output.NewWriter(os.Stdout, format).Write(report)
}
