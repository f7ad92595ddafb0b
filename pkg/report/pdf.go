package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	pkgerrors "github.com/pkg/errors"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/calc"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/engine"
)

// PDFExporter renders the estimate as a single A4 document: a header,
// one table per domain, and the category rollup.
type PDFExporter struct{}

func (e *PDFExporter) Format() string { return "pdf" }

func (e *PDFExporter) Export(w io.Writer, s *engine.SummaryReport) error {
	if s == nil {
		return pkgerrors.Wrap(ErrExportFailure, "pdf: nil summary")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Construction cost estimate", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Project: "+s.ProjectName, "", 1, "L", false, 0, "")
	if s.SavedUTC != "" {
		pdf.CellFormat(0, 6, "Saved: "+s.SavedUTC, "", 1, "L", false, 0, "")
	}
	if s.Notes != "" {
		pdf.CellFormat(0, 6, "Notes: "+s.Notes, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for _, d := range calc.Domains() {
		res, ok := s.Results[d]
		if !ok {
			continue
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, d.Title(), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, q := range res.Quantities {
			pdf.CellFormat(90, 5, q.Name, "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 5, fmt.Sprintf("%.2f %s", q.Value, q.Unit), "", 1, "R", false, 0, "")
		}
		for _, it := range res.Items {
			pdf.CellFormat(90, 5, it.Description, "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 5, fmt.Sprintf("%.2f %s", it.Quantity, it.Unit), "", 0, "R", false, 0, "")
			pdf.CellFormat(30, 5, fmt.Sprintf("@ %.2f", it.UnitPrice), "", 0, "R", false, 0, "")
			pdf.CellFormat(30, 5, money(it.Amount), "", 1, "R", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(90, 6, "Subtotal", "T", 0, "L", false, 0, "")
		pdf.CellFormat(100, 6, money(res.Total), "T", 1, "R", false, 0, "")
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range []struct {
		name  string
		value float64
	}{
		{"Materials", s.Materials},
		{"Labour", s.Labour},
		{"Equipment", s.Equipment},
		{"Land preparation", s.Land},
	} {
		pdf.CellFormat(90, 6, row.name, "", 0, "L", false, 0, "")
		pdf.CellFormat(100, 6, money(row.value), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "GRAND TOTAL", "T", 0, "L", false, 0, "")
	pdf.CellFormat(100, 8, money(s.GrandTotal), "T", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return pkgerrors.Wrapf(ErrExportFailure, "pdf: %v", err)
	}
	return nil
}
