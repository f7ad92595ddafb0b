package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/calc"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/engine"
)

func sampleSummary(t *testing.T) *engine.SummaryReport {
	t.Helper()
	e := engine.New()
	e.SetProjectName("Report fixture")
	e.SetNotes("fixture notes")
	if err := e.SetBreezeBlockInput(calc.BreezeBlockInput{
		BlockName:  "40 x 20 x 20 cm (hollow)",
		WallLength: 10,
		WallHeight: 2,
		WallCount:  1,
	}); err != nil {
		t.Fatalf("fixture input rejected: %v", err)
	}
	return e.Summary()
}

func TestTextExport(t *testing.T) {
	s := sampleSummary(t)

	var buf bytes.Buffer
	if err := (&TextExporter{}).Export(&buf, s); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Project: Report fixture",
		"fixture notes",
		calc.DomainBreezeBlock.Title(),
		"Blocks required",
		"GRAND TOTAL",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("text report missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, money(s.GrandTotal)) {
		t.Fatalf("text report missing grand total %s", money(s.GrandTotal))
	}
}

func TestPDFExport(t *testing.T) {
	s := sampleSummary(t)

	var buf bytes.Buffer
	if err := (&PDFExporter{}).Export(&buf, s); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", buf.Bytes()[:8])
	}
}

func TestByFormat(t *testing.T) {
	for _, format := range []string{"text", "pdf"} {
		exp, err := ByFormat(format)
		if err != nil {
			t.Fatalf("ByFormat(%q) returned error: %v", format, err)
		}
		if exp.Format() != format {
			t.Fatalf("exporter reports format %q, want %q", exp.Format(), format)
		}
	}
	if _, err := ByFormat("docx"); !errors.Is(err, ErrExportFailure) {
		t.Fatalf("expected ErrExportFailure, got %v", err)
	}
}
