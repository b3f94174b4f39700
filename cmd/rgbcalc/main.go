package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rgehrsitz/rgbcalc/internal/config"
	"github.com/rgehrsitz/rgbcalc/internal/guidelines"
	"github.com/rgehrsitz/rgbcalc/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// formatKeyAnnotation names the settings key a command's --format flag is bound to,
// when it is not "format"
const formatKeyAnnotation = "rgbcalc/format-key"

// exitError carries a process exit code other than the generic failure code
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// app is the state shared by every command of one invocation
type app struct {
	v        *viper.Viper
	settings config.Settings
	log      *zap.SugaredLogger
}

// table returns the configured guideline table, or the bundled one
func (a *app) table() (*guidelines.Table, error) {
	if a.settings.Guidelines == "" {
		return guidelines.Default(), nil
	}
	table, err := guidelines.Load(a.settings.Guidelines)
	if err != nil {
		return nil, err
	}
	a.log.Debugf("loaded %d guideline orders from %s", table.Len(), a.settings.Guidelines)
	return table, nil
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(), log: zap.NewNop().Sugar()}

	root := &cobra.Command{
		Use:   "rgbcalc",
		Short: "NYC rent-stabilized lease renewal calculator",
		Long: "Looks up the Rent Guidelines Board order governing a renewal lease and " +
			"computes the new legal rent, preferential rent and monthly schedule.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			formatKey := "format"
			if key, ok := cmd.Annotations[formatKeyAnnotation]; ok {
				formatKey = key
			}
			if err := config.BindFlags(a.v, cmd.Flags(), map[string]string{
				"guidelines":     "guidelines",
				formatKey:        "format",
				"logging.format": "log-format",
			}); err != nil {
				return err
			}

			configFile, _ := cmd.Flags().GetString("config")
			settings, err := config.LoadSettings(a.v, configFile)
			if err != nil {
				return err
			}
			a.settings = settings

			levelOverride, _ := cmd.Flags().GetString("log-level")
			logger, err := logging.NewSugared(settings.Logging, levelOverride)
			if err != nil {
				return err
			}
			a.log = logger
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "Path to settings file (default: rgbcalc.yaml if it exists)")
	root.PersistentFlags().String("guidelines", "", "Path to a guideline table replacing the bundled one")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "Log format (console, json)")

	root.AddCommand(newCalculateCmd(a), newCompareCmd(a), newGuidelinesCmd(a), versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rgbcalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
