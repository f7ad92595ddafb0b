package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/project"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/report"
)

func NewInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "init [file]",
		Short:   "Create a new project file with reference defaults",
		GroupID: gProject,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}

			state := project.DefaultState()
			if name != "" {
				state.ProjectName = name
			}
			state.SavedUTC = time.Now().UTC().Format(time.RFC3339)

			if err := project.Save(path, state); err != nil {
				return err
			}
			logrus.Infof("created project %q at %s", state.ProjectName, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "project name")

	return cmd
}

func NewComputeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "compute [file]",
		Short:   "Compute a project and print the estimate",
		GroupID: gProject,
		Long: `Compute every domain of a project file and print the cost
overview to the terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(args[0])
			if err != nil {
				return err
			}
			report.WriteTerminal(cmd.OutOrStdout(), e.Summary())
			return nil
		},
	}
}

func NewExportCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:     "export [file]",
		Short:   "Export a project estimate as a text or PDF report",
		GroupID: gProject,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			e, err := loadEngine(args[0])
			if err != nil {
				return err
			}

			exporter, err := report.ByFormat(format)
			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], ".json") + "." + defaultExt(format)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()

			if err := exporter.Export(f, e.Summary()); err != nil {
				return err
			}
			logrus.Infof("wrote %s report to %s", format, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: project file with the report extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "report format (text, pdf)")

	return cmd
}

func defaultExt(format string) string {
	if format == "pdf" {
		return "pdf"
	}
	return "txt"
}
