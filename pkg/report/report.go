// Package report renders a summary snapshot into the supported output
// formats: plain text, PDF, and a colored terminal view.
package report

import (
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/engine"
)

// ErrExportFailure is returned when a report cannot be rendered or
// written. The wrapped message names the failing format and cause.
var ErrExportFailure = pkgerrors.New("export failure")

// Exporter renders one summary snapshot to a writer.
type Exporter interface {
	// Format is the short format name used on the command line.
	Format() string
	Export(w io.Writer, s *engine.SummaryReport) error
}

// ByFormat returns the exporter for a format name.
func ByFormat(format string) (Exporter, error) {
	switch format {
	case "text":
		return &TextExporter{}, nil
	case "pdf":
		return &PDFExporter{}, nil
	}
	return nil, pkgerrors.Wrapf(ErrExportFailure, "unsupported format %q", format)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f USD", v)
}
