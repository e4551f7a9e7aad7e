package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	static "github.com/goliatone/go-static"
	"github.com/goliatone/go-static/internal/config"
	"github.com/goliatone/go-static/internal/logging/gologger"
)

var (
	cfgPath   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:           "static",
	Short:         "Markdown driven static site builder",
	Long:          "static turns a tree of markdown files with TOML metadata sidecars into a complete site: pages, indexes, sitemap, feed, and redirects.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site into the configured output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		includeDrafts, _ := cmd.Flags().GetBool("drafts")

		provider, err := gologger.NewProvider(gologger.Config{
			Level:  logLevel,
			Format: logFormat,
		})
		if err != nil {
			return wrapConfigError(err)
		}

		module, err := static.NewFromFile(cfgPath, static.WithLogger(provider))
		if err != nil {
			return wrapConfigError(err)
		}

		start := time.Now()
		result, err := module.Build(cmd.Context(), static.BuildOptions{
			IncludeDrafts: includeDrafts,
		})
		if err != nil {
			return wrapBuildError(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(),
			"built %d pages, %d indexes, %d artifacts (%d items, %d drafts) in %s -> %s\n",
			result.Pages, result.Indexes, result.Artifacts,
			result.Items, result.Drafts,
			time.Since(start).Round(time.Millisecond), result.OutputDir,
		)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration without building",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := static.LoadConfig(cfgPath)
		if err != nil {
			return wrapConfigError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "configuration ok: %d content types, output %s\n",
			len(cfg.Content), cfg.Site.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "path to the site configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (json, console, pretty)")

	buildCmd.Flags().Bool("drafts", false, "include draft items in the build")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
