// Package main provides the brewmatch CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/denisok6893-rgb/brew-matching/internal/catalog"
	"github.com/denisok6893-rgb/brew-matching/internal/config"
	"github.com/denisok6893-rgb/brew-matching/internal/logging"
	"github.com/denisok6893-rgb/brew-matching/internal/matching"
)

var (
	configPath string
	asJSON     bool
	noColor    bool

	cfg    config.Config
	logger = zap.NewNop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "brewmatch",
		Short: "Coffee equipment and bean recommendations",
		Long: `brewmatch recommends espresso machines and grinders for a budget and
ranks coffee beans for a brewing setup.

Examples:
  brewmatch equipment --budget starter --purpose quick-espresso
  brewmatch beans --machine gaggia-classic-pro --grinder baratza-sette-270
  brewmatch beans --machine-type pour-over --grinder-type manual --limit 3
  brewmatch import --db brew.db
  brewmatch serve`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			v := config.New()
			if err := v.BindPFlag("catalog.path", cmd.Root().PersistentFlags().Lookup("catalog")); err != nil {
				return err
			}
			if err := v.BindPFlag("log.level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
				return err
			}
			if configPath == "" {
				configPath = os.Getenv("BREW_CONFIG")
			}

			var err error
			if cfg, err = config.Load(v, configPath); err != nil {
				return err
			}
			if logger, err = logging.New(cfg.Log.Level, cfg.Log.Development); err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (YAML, JSON or TOML)")
	rootCmd.PersistentFlags().String("catalog", "", "Catalog file; the built-in catalog when empty")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		equipmentCmd(),
		beansCmd(),
		importCmd(),
		serveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newEngine loads the configured catalog into an engine.
func newEngine() (*matching.Engine, error) {
	cat, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return matching.NewEngine(cat, matching.WithLogger(logger.Named("engine"))), nil
}
