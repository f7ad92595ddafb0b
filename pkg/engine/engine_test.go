package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/calc"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/project"
)

func populatedEngine(t *testing.T) *Engine {
	t.Helper()
	e := New()

	if err := e.SetBreezeBlockInput(calc.BreezeBlockInput{
		BlockName:  "40 x 20 x 20 cm (hollow)",
		WallLength: 10,
		WallHeight: 2,
		WallCount:  2,
	}); err != nil {
		t.Fatalf("blockwork input rejected: %v", err)
	}
	if err := e.SetSweetSandInput(calc.SweetSandInput{
		LengthTotal:  11,
		Width:        3,
		FillHeightCm: 20,
		BulkDensity:  1600,
		CostPerTon:   45,
	}); err != nil {
		t.Fatalf("sand input rejected: %v", err)
	}
	if err := e.SetManpowerInput(calc.ManpowerInput{
		Workforce: []calc.TradeLine{
			{Trade: "General Labourer", Workers: 6, Rate: 5},
		},
		Days:        10,
		HoursNormal: 8,
		OTFactor:    1.5,
	}); err != nil {
		t.Fatalf("manpower input rejected: %v", err)
	}
	return e
}

func TestSummaryCategoriesSumToGrandTotal(t *testing.T) {
	e := populatedEngine(t)

	s := e.Summary()
	var perDomain float64
	for _, total := range s.PerDomain {
		perDomain += total
	}
	if math.Abs(s.GrandTotal-perDomain) > 1e-9 {
		t.Fatalf("grand total %g != per-domain sum %g", s.GrandTotal, perDomain)
	}
	cats := s.Materials + s.Labour + s.Equipment + s.Land
	if math.Abs(s.GrandTotal-cats) > 1e-9 {
		t.Fatalf("grand total %g != category sum %g", s.GrandTotal, cats)
	}
	if s.GrandTotal <= 0 {
		t.Fatal("populated engine should cost something")
	}
}

func TestSummaryIsDetached(t *testing.T) {
	e := populatedEngine(t)

	s := e.Summary()
	before := e.Summary().GrandTotal
	s.Results[calc.DomainManpower].Total = -1
	s.PerDomain[calc.DomainManpower] = -1
	if got := e.Summary().GrandTotal; got != before {
		t.Fatalf("mutating a summary leaked into the engine: %g vs %g", got, before)
	}
}

func TestRejectedInputKeepsPreviousResult(t *testing.T) {
	e := populatedEngine(t)
	before, ok := e.Result(calc.DomainSweetSand)
	if !ok {
		t.Fatal("expected a sand result")
	}

	err := e.SetSweetSandInput(calc.SweetSandInput{
		LengthTotal:  3, // length must exceed width
		Width:        3,
		FillHeightCm: 20,
		BulkDensity:  1600,
	})
	if !errors.Is(err, calc.ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}

	after, ok := e.Result(calc.DomainSweetSand)
	if !ok || after.Total != before.Total {
		t.Fatalf("failed input disturbed the stored result: %+v", after)
	}
	// The previous input must survive too, so recomputing still works.
	if err := e.ComputeAll(); err != nil {
		t.Fatalf("ComputeAll after rejected input returned error: %v", err)
	}
}

func TestPriceOverrideRecomputes(t *testing.T) {
	e := populatedEngine(t)
	before, _ := e.Result(calc.DomainSweetSand)

	if err := e.ApplyPriceOverride(calc.DomainSweetSand, "cost_per_ton", 90); err != nil {
		t.Fatalf("ApplyPriceOverride returned error: %v", err)
	}
	after, _ := e.Result(calc.DomainSweetSand)
	if math.Abs(after.Total-2*before.Total) > 1e-9 {
		t.Fatalf("doubling the rate should double the cost: %g vs %g", after.Total, before.Total)
	}

	if err := e.ApplyPriceOverride(calc.DomainSweetSand, "bogus", 1); !errors.Is(err, calc.ErrUnknownPriceKey) {
		t.Fatalf("expected ErrUnknownPriceKey, got %v", err)
	}
	if err := e.ApplyPriceOverride("nope", "cost_per_ton", 1); !errors.Is(err, calc.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown domain, got %v", err)
	}
}

func TestExportLoadRoundTrip(t *testing.T) {
	e := populatedEngine(t)
	e.SetProjectName("Raceway farm")
	e.SetNotes("phase 1")

	state := e.ExportState()
	b, err := project.Serialize(state)
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	loaded, err := project.Deserialize(b)
	if err != nil {
		t.Fatalf("Deserialize returned error: %v", err)
	}

	other := New()
	if err := other.LoadState(loaded); err != nil {
		t.Fatalf("LoadState returned error: %v", err)
	}
	if other.ProjectName() != "Raceway farm" {
		t.Fatalf("project name lost: %q", other.ProjectName())
	}
	if got, want := other.Summary().GrandTotal, e.Summary().GrandTotal; math.Abs(got-want) > 1e-9 {
		t.Fatalf("round trip changed the estimate: %g vs %g", got, want)
	}
}

func TestLoadStateIsIdempotent(t *testing.T) {
	e := populatedEngine(t)
	state := e.ExportState()

	other := New()
	if err := other.LoadState(state); err != nil {
		t.Fatalf("first load returned error: %v", err)
	}
	first := other.Summary().GrandTotal
	if err := other.LoadState(state); err != nil {
		t.Fatalf("second load returned error: %v", err)
	}
	if got := other.Summary().GrandTotal; got != first {
		t.Fatalf("double load changed the estimate: %g vs %g", got, first)
	}
}

func TestLoadStateIsAtomic(t *testing.T) {
	e := populatedEngine(t)
	goodName := e.ProjectName()
	goodTotal := e.Summary().GrandTotal

	bad := e.ExportState()
	bad.ProjectName = "half-broken"
	bad.Manpower.Days = -3

	if err := e.LoadState(bad); err == nil {
		t.Fatal("expected an error loading an invalid project")
	}

	// Nothing may have been committed, not even the header.
	if e.ProjectName() != goodName {
		t.Fatalf("failed load replaced the project name: %q", e.ProjectName())
	}
	if got := e.Summary().GrandTotal; got != goodTotal {
		t.Fatalf("failed load disturbed the estimate: %g vs %g", got, goodTotal)
	}
}
