package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dgallion1/sitefx/internal/config"
)

var (
	cfgFile string
	cfg     = config.Default()
	log     = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

var rootCmd = &cobra.Command{
	Use:   "sitefx",
	Short: "Preview portfolio page effects offline",
	Long: `sitefx loads an HTML or Markdown page, lays it out, and replays the
page's scroll effects against a simulated viewport: which cards reveal,
which nav link is active, when lazy images load.

It also exposes the geospatial helpers used by the site (distance, NDVI,
land-cover classes) as subcommands.

Configuration comes from ./sitefx.yaml (or --config), then SITEFX_*
environment variables. A .env file in the working directory is loaded
first if present.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional.
		_ = godotenv.Load()

		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c
		log = newLogger(c.Log)
		return nil
	},
}

func newLogger(lc config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./sitefx.yaml)")
}
