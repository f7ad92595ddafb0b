package report

import (
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/calc"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/engine"
)

// TextExporter writes the full estimate as sectioned plain text, one
// block per domain plus the category rollup.
type TextExporter struct{}

func (e *TextExporter) Format() string { return "text" }

func (e *TextExporter) Export(w io.Writer, s *engine.SummaryReport) error {
	if s == nil {
		return pkgerrors.Wrap(ErrExportFailure, "text: nil summary")
	}
	if _, err := io.WriteString(w, renderText(s)); err != nil {
		return pkgerrors.Wrapf(ErrExportFailure, "text: %v", err)
	}
	return nil
}

func renderText(s *engine.SummaryReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Construction cost estimate\n")
	fmt.Fprintf(&b, "Project: %s\n", s.ProjectName)
	if s.SavedUTC != "" {
		fmt.Fprintf(&b, "Saved:   %s\n", s.SavedUTC)
	}
	if s.Notes != "" {
		fmt.Fprintf(&b, "Notes:   %s\n", s.Notes)
	}
	b.WriteString("\n")

	for _, d := range calc.Domains() {
		res, ok := s.Results[d]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "== %s ==\n", d.Title())
		for _, q := range res.Quantities {
			fmt.Fprintf(&b, "  %-28s %12.2f %s\n", q.Name, q.Value, q.Unit)
		}
		for _, it := range res.Items {
			fmt.Fprintf(&b, "  %-28s %12.2f %-7s @ %10.2f = %s\n",
				it.Description, it.Quantity, it.Unit, it.UnitPrice, money(it.Amount))
		}
		fmt.Fprintf(&b, "  Subtotal: %s\n\n", money(res.Total))
	}

	b.WriteString("== Summary ==\n")
	fmt.Fprintf(&b, "  %-28s %s\n", "Materials", money(s.Materials))
	fmt.Fprintf(&b, "  %-28s %s\n", "Labour", money(s.Labour))
	fmt.Fprintf(&b, "  %-28s %s\n", "Equipment", money(s.Equipment))
	fmt.Fprintf(&b, "  %-28s %s\n", "Land preparation", money(s.Land))
	fmt.Fprintf(&b, "  %-28s %s\n", "GRAND TOTAL", money(s.GrandTotal))

	return b.String()
}
