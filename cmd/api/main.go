// Package main is the nutriguide command: the web server plus a few
// maintenance commands that share its configuration.
package main

import (
	"fmt"
	"os"

	"nutriguide/internal/config"
	"nutriguide/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configDirs []string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nutriguide",
	Short: "NutriGuide - BMI wellness form and dashboard",
	Long: `NutriGuide collects a short health profile (name, age, gender, height,
weight), stores it in SQLite and shows a dashboard with BMI, category, daily
water target and diet/exercise advice.

Settings come from .env, config.yml and the environment (see "serve --help").`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configDirs...)
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(cfg.Env, level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringSliceVar(&configDirs, "config-dir", nil, "Directories searched for config.yml (default: . and ..)")

	rootCmd.AddCommand(serveCmd, profilesCmd, bmiCmd)
}

// @title                      NutriGuide API
// @version                    1.0
// @description                Wellness form service: store a profile, compute BMI and serve the matching advice.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Session token: "Bearer {token}"
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
