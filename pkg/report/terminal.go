package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/calc"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/engine"
)

// WriteTerminal prints a compact colored overview of the estimate,
// meant for interactive use rather than files.
func WriteTerminal(w io.Writer, s *engine.SummaryReport) {
	fmt.Fprintln(w, bold("Project: ")+s.ProjectName)
	if s.Notes != "" {
		fmt.Fprintln(w, bold("Notes:   ")+s.Notes)
	}
	fmt.Fprintln(w)

	for _, d := range calc.Domains() {
		total, ok := s.PerDomain[d]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-32s %s\n", d.Title(), moneyColored(total))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-32s %s\n", bold("Materials"), money(s.Materials))
	fmt.Fprintf(w, "  %-32s %s\n", bold("Labour"), money(s.Labour))
	fmt.Fprintf(w, "  %-32s %s\n", bold("Equipment"), money(s.Equipment))
	fmt.Fprintf(w, "  %-32s %s\n", bold("Land preparation"), money(s.Land))
	fmt.Fprintf(w, "  %-32s %s\n", bold("GRAND TOTAL"), color.New(color.Bold, color.FgGreen).Sprint(money(s.GrandTotal)))
}

func moneyColored(v float64) string {
	if v == 0 {
		return color.New(color.Faint).Sprint(money(v))
	}
	return money(v)
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
