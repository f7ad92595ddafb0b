package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	logLevel = "info"
)

var (
	gProject      = "Project:"
	gReference    = "Reference:"
	commandGroups = []string{
		gProject,
		gReference,
	}
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ashcalc",
		Short: "ashcalc estimates construction costs for raceway algae farms",
		Long: `ashcalc estimates construction costs for raceway algae farms:
blockwork, sand fill, concrete, land preparation, manpower and plant.

Projects are plain JSON files; estimates can be printed to the
terminal or exported as text or PDF reports.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewInitCommand(),
		NewComputeCommand(),
		NewExportCommand(),
		NewPricesCommand(),
		NewBlocksCommand(),
		NewVersionCommand(),
	)

	return cmd
}
