package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/rgehrsitz/rgbcalc/internal/calculation"
	"github.com/rgehrsitz/rgbcalc/internal/config"
	"github.com/rgehrsitz/rgbcalc/internal/guidelines"
	"github.com/rgehrsitz/rgbcalc/internal/logging"
	"github.com/rgehrsitz/rgbcalc/internal/tui"
)

func main() {
	flags := pflag.NewFlagSet("rgbcalc-tui", pflag.ExitOnError)
	configFile := flags.String("config", "", "Path to settings file (default: rgbcalc.yaml if it exists)")
	flags.String("guidelines", "", "Path to a guideline table replacing the bundled one")
	_ = flags.Parse(os.Args[1:])

	v := config.NewViper()
	if err := config.BindFlags(v, flags, map[string]string{"guidelines": "guidelines"}); err != nil {
		fail(err)
	}
	settings, err := config.LoadSettings(v, *configFile)
	if err != nil {
		fail(err)
	}

	table := guidelines.Default()
	if settings.Guidelines != "" {
		if table, err = guidelines.Load(settings.Guidelines); err != nil {
			fail(err)
		}
	}

	calc := calculation.NewCalculator(table)
	// the terminal belongs to the UI, so logs are only kept when they go to a file
	if settings.Logging.OutputFile != "" {
		logger, err := logging.NewSugared(settings.Logging, "")
		if err != nil {
			fail(err)
		}
		defer func() { _ = logger.Sync() }()
		calc.SetLogger(logger)
	}

	p := tea.NewProgram(tui.NewModel(calc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fail(fmt.Errorf("error running TUI: %w", err))
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
