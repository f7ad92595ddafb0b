package engine

import (
	"github.com/ashpursglove/ashs-construction-calculator/pkg/calc"
)

// SummaryReport is a self-contained snapshot of the whole estimate.
// Every result inside is a deep copy, so a report never aliases live
// engine state.
type SummaryReport struct {
	ProjectName string
	Notes       string
	SavedUTC    string

	PerDomain map[calc.Domain]float64
	Results   map[calc.Domain]*calc.Result

	// Category rollups. Materials covers blockwork, sand and concrete;
	// the four categories always sum to GrandTotal.
	Materials  float64
	Labour     float64
	Equipment  float64
	Land       float64
	GrandTotal float64
}

// Summary aggregates the last computed results. Domains that have
// never computed successfully are simply absent from the maps.
func (e *Engine) Summary() *SummaryReport {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := &SummaryReport{
		ProjectName: e.projectName,
		Notes:       e.notes,
		SavedUTC:    e.savedUTC,
		PerDomain:   map[calc.Domain]float64{},
		Results:     map[calc.Domain]*calc.Result{},
	}

	for _, d := range calc.Domains() {
		res, ok := e.results[d]
		if !ok {
			continue
		}
		s.PerDomain[d] = res.Total
		s.Results[d] = res.Clone()
		s.GrandTotal += res.Total

		switch d {
		case calc.DomainBreezeBlock, calc.DomainSweetSand, calc.DomainConcrete:
			s.Materials += res.Total
		case calc.DomainManpower:
			s.Labour += res.Total
		case calc.DomainEquipment:
			s.Equipment += res.Total
		case calc.DomainLandPrep:
			s.Land += res.Total
		}
	}
	return s
}
