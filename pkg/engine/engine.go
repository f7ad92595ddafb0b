// Package engine ties the six domain calculators together behind one
// mutex-guarded facade: per-domain recompute, the aggregated summary,
// and atomic project load/export.
package engine

import (
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/calc"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/project"
)

// Engine owns the calculator set and the last good result per domain.
// A failed recompute never disturbs the previous result or the
// summary, so the UI and reports always see a consistent snapshot.
type Engine struct {
	mu sync.RWMutex

	projectName string
	notes       string
	savedUTC    string

	calcs   calculatorSet
	results map[calc.Domain]*calc.Result
}

// calculatorSet groups the six concrete calculators so a staged load
// can be built on the side and committed in one assignment.
type calculatorSet struct {
	blocks    *calc.BreezeBlockCalculator
	sand      *calc.SweetSandCalculator
	concrete  *calc.ConcreteCalculator
	landPrep  *calc.LandPrepCalculator
	manpower  *calc.ManpowerCalculator
	equipment *calc.EquipmentCalculator
}

func newCalculatorSet() calculatorSet {
	return calculatorSet{
		blocks:    calc.NewBreezeBlockCalculator(),
		sand:      calc.NewSweetSandCalculator(),
		concrete:  calc.NewConcreteCalculator(),
		landPrep:  calc.NewLandPrepCalculator(),
		manpower:  calc.NewManpowerCalculator(),
		equipment: calc.NewEquipmentCalculator(),
	}
}

func (s calculatorSet) byDomain(d calc.Domain) calc.Calculator {
	switch d {
	case calc.DomainBreezeBlock:
		return s.blocks
	case calc.DomainSweetSand:
		return s.sand
	case calc.DomainConcrete:
		return s.concrete
	case calc.DomainLandPrep:
		return s.landPrep
	case calc.DomainManpower:
		return s.manpower
	case calc.DomainEquipment:
		return s.equipment
	}
	return nil
}

// New returns an engine on reference defaults with every domain
// already computed.
func New() *Engine {
	e := &Engine{
		projectName: "Untitled project",
		calcs:       newCalculatorSet(),
		results:     map[calc.Domain]*calc.Result{},
	}
	// Defaults always compute; an error here is a programming bug.
	if err := e.ComputeAll(); err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) ProjectName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.projectName
}

func (e *Engine) SetProjectName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.projectName = name
}

func (e *Engine) Notes() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.notes
}

func (e *Engine) SetNotes(notes string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notes = notes
}

// The Set*Input methods replace one tab's state, recompute it and
// store the fresh result. A rejected or uncomputable input is rolled
// back, so the previous input and result both survive.

func (e *Engine) SetBreezeBlockInput(in calc.BreezeBlockInput) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.calcs.blocks.Input()
	if err := e.calcs.blocks.SetInput(in); err != nil {
		return err
	}
	res, err := e.calcs.blocks.Compute()
	if err != nil {
		_ = e.calcs.blocks.SetInput(prev)
		return pkgerrors.Wrap(err, "breeze block")
	}
	e.results[calc.DomainBreezeBlock] = res
	return nil
}

func (e *Engine) SetSweetSandInput(in calc.SweetSandInput) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.calcs.sand.Input()
	if err := e.calcs.sand.SetInput(in); err != nil {
		return err
	}
	res, err := e.calcs.sand.Compute()
	if err != nil {
		_ = e.calcs.sand.SetInput(prev)
		return pkgerrors.Wrap(err, "sweet sand")
	}
	e.results[calc.DomainSweetSand] = res
	return nil
}

func (e *Engine) SetConcreteInput(in calc.ConcreteInput) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.calcs.concrete.Input()
	if err := e.calcs.concrete.SetInput(in); err != nil {
		return err
	}
	res, err := e.calcs.concrete.Compute()
	if err != nil {
		_ = e.calcs.concrete.SetInput(prev)
		return pkgerrors.Wrap(err, "concrete")
	}
	e.results[calc.DomainConcrete] = res
	return nil
}

func (e *Engine) SetLandPrepInput(in calc.LandPrepInput) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.calcs.landPrep.Input()
	if err := e.calcs.landPrep.SetInput(in); err != nil {
		return err
	}
	res, err := e.calcs.landPrep.Compute()
	if err != nil {
		_ = e.calcs.landPrep.SetInput(prev)
		return pkgerrors.Wrap(err, "land preparation")
	}
	e.results[calc.DomainLandPrep] = res
	return nil
}

func (e *Engine) SetManpowerInput(in calc.ManpowerInput) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.calcs.manpower.Input()
	if err := e.calcs.manpower.SetInput(in); err != nil {
		return err
	}
	res, err := e.calcs.manpower.Compute()
	if err != nil {
		_ = e.calcs.manpower.SetInput(prev)
		return pkgerrors.Wrap(err, "manpower")
	}
	e.results[calc.DomainManpower] = res
	return nil
}

func (e *Engine) SetEquipmentInput(in calc.EquipmentInput) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.calcs.equipment.Input()
	if err := e.calcs.equipment.SetInput(in); err != nil {
		return err
	}
	res, err := e.calcs.equipment.Compute()
	if err != nil {
		_ = e.calcs.equipment.SetInput(prev)
		return pkgerrors.Wrap(err, "equipment")
	}
	e.results[calc.DomainEquipment] = res
	return nil
}

// ApplyPriceOverride routes an override to one domain and recomputes
// it. Unknown domains and keys are rejected without side effects.
func (e *Engine) ApplyPriceOverride(d calc.Domain, key string, value float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.calcs.byDomain(d)
	if c == nil {
		return pkgerrors.Wrapf(calc.ErrInvalidInput, "unknown domain %q", d)
	}
	if err := c.ApplyPriceOverride(key, value); err != nil {
		return err
	}
	res, err := c.Compute()
	if err != nil {
		return pkgerrors.Wrapf(err, "%s", d)
	}
	e.results[d] = res
	return nil
}

// DefaultPricing exposes one domain's reference price table.
func (e *Engine) DefaultPricing(d calc.Domain) (map[string]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c := e.calcs.byDomain(d)
	if c == nil {
		return nil, pkgerrors.Wrapf(calc.ErrInvalidInput, "unknown domain %q", d)
	}
	return c.DefaultPricing(), nil
}

// Compute recomputes a single domain from its current input.
func (e *Engine) Compute(d calc.Domain) (*calc.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.calcs.byDomain(d)
	if c == nil {
		return nil, pkgerrors.Wrapf(calc.ErrInvalidInput, "unknown domain %q", d)
	}
	res, err := c.Compute()
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "%s", d)
	}
	e.results[d] = res
	return res.Clone(), nil
}

// ComputeAll recomputes every domain. The first failure aborts and
// leaves all previous results in place.
func (e *Engine) ComputeAll() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.computeAllLocked()
}

func (e *Engine) computeAllLocked() error {
	fresh := map[calc.Domain]*calc.Result{}
	for _, d := range calc.Domains() {
		res, err := e.calcs.byDomain(d).Compute()
		if err != nil {
			return pkgerrors.Wrapf(err, "%s", d)
		}
		fresh[d] = res
	}
	e.results = fresh
	return nil
}

// Result returns a copy of the last computed result for one domain.
func (e *Engine) Result(d calc.Domain) (*calc.Result, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	res, ok := e.results[d]
	return res.Clone(), ok
}

// LoadState replaces the whole engine state from a decoded project.
// The incoming inputs are staged on fresh calculators and computed
// first; only a fully valid project is committed, so a bad file can
// never leave the engine half-loaded.
func (e *Engine) LoadState(state *project.ProjectState) error {
	if state == nil {
		return pkgerrors.New("project state is nil")
	}

	staged := newCalculatorSet()
	for _, step := range []struct {
		domain calc.Domain
		apply  func() error
	}{
		{calc.DomainBreezeBlock, func() error { return staged.blocks.SetInput(state.BreezeBlock) }},
		{calc.DomainSweetSand, func() error { return staged.sand.SetInput(state.SweetSand) }},
		{calc.DomainConcrete, func() error { return staged.concrete.SetInput(state.Concrete) }},
		{calc.DomainLandPrep, func() error { return staged.landPrep.SetInput(state.LandPrep) }},
		{calc.DomainManpower, func() error { return staged.manpower.SetInput(state.Manpower) }},
		{calc.DomainEquipment, func() error { return staged.equipment.SetInput(state.Equipment) }},
	} {
		if err := step.apply(); err != nil {
			return pkgerrors.Wrapf(err, "%s", step.domain)
		}
	}

	results := map[calc.Domain]*calc.Result{}
	for _, d := range calc.Domains() {
		res, err := staged.byDomain(d).Compute()
		if err != nil {
			return pkgerrors.Wrapf(err, "%s", d)
		}
		results[d] = res
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.projectName = state.ProjectName
	e.notes = state.Notes
	e.savedUTC = state.SavedUTC
	e.calcs = staged
	e.results = results
	logrus.Debugf("loaded project %q", state.ProjectName)
	return nil
}

// ExportState snapshots the current inputs into a persistable state.
// The carried save timestamp is kept so an unchanged project writes
// identical bytes; Stamp refreshes it before an explicit save.
func (e *Engine) ExportState() *project.ProjectState {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return &project.ProjectState{
		ProjectName: e.projectName,
		Notes:       e.notes,
		SavedUTC:    e.savedUTC,
		BreezeBlock: e.calcs.blocks.Input(),
		SweetSand:   e.calcs.sand.Input(),
		Concrete:    e.calcs.concrete.Input(),
		LandPrep:    e.calcs.landPrep.Input(),
		Manpower:    e.calcs.manpower.Input(),
		Equipment:   e.calcs.equipment.Input(),
	}
}

// Stamp records the save time carried into subsequent exports.
func (e *Engine) Stamp(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.savedUTC = now.UTC().Format(time.RFC3339)
}
