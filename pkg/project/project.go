// Package project persists the full calculator state as a versioned
// JSON document. The on-disk envelope carries a schema version, the
// save timestamp and the six domain input blocks; derived results are
// never stored and are recomputed after load.
package project

import (
	"encoding/json"

	pkgerrors "github.com/pkg/errors"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/calc"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/utils/ptr"
)

// SchemaVersion is the only project file schema this build reads and
// writes.
const SchemaVersion = 1

// ErrCorruptProject is returned when a project document cannot be
// decoded: malformed JSON, an unsupported schema version, or a missing
// required section. The wrapped message names the defect.
var ErrCorruptProject = pkgerrors.New("corrupt project file")

// ProjectState is the complete persistable state: the project header
// plus the six domain inputs. SavedUTC carries the timestamp read from
// the file so that serializing an unchanged state reproduces the same
// bytes.
type ProjectState struct {
	ProjectName string
	Notes       string
	SavedUTC    string

	BreezeBlock calc.BreezeBlockInput
	SweetSand   calc.SweetSandInput
	Concrete    calc.ConcreteInput
	LandPrep    calc.LandPrepInput
	Manpower    calc.ManpowerInput
	Equipment   calc.EquipmentInput
}

// DefaultState returns a fresh project with every domain on its
// reference defaults.
func DefaultState() *ProjectState {
	return &ProjectState{
		ProjectName: "Untitled project",
		BreezeBlock: calc.DefaultBreezeBlockInput(),
		SweetSand:   calc.DefaultSweetSandInput(),
		Concrete:    calc.DefaultConcreteInput(),
		LandPrep:    calc.DefaultLandPrepInput(),
		Manpower:    calc.DefaultManpowerInput(),
		Equipment:   calc.DefaultEquipmentInput(),
	}
}

// Raw envelope types use pointer fields so an absent section can be
// told apart from a zero-valued one. Unknown fields, including keys
// written by older builds, are ignored on decode.
type rawEnvelope struct {
	SchemaVersion *int     `json:"schema_version"`
	SavedUTC      *string  `json:"saved_utc,omitempty"`
	Data          *rawData `json:"data"`
}

type rawData struct {
	ProjectName *string                `json:"project_name"`
	Notes       *string                `json:"notes,omitempty"`
	BreezeBlock *calc.BreezeBlockInput `json:"breeze_block"`
	SweetSand   *calc.SweetSandInput   `json:"sweet_sand"`
	Concrete    *calc.ConcreteInput    `json:"concrete"`
	LandPrep    *calc.LandPrepInput    `json:"land_prep"`
	Manpower    *calc.ManpowerInput    `json:"manpower"`
	Equipment   *calc.EquipmentInput   `json:"equipment"`
}

// Serialize encodes the state into the versioned envelope. The output
// is deterministic for a given state; SavedUTC is written verbatim and
// omitted when empty.
func Serialize(state *ProjectState) ([]byte, error) {
	if state == nil {
		return nil, pkgerrors.New("project state is nil")
	}

	env := rawEnvelope{
		SchemaVersion: ptr.To(SchemaVersion),
		Data: &rawData{
			ProjectName: ptr.To(state.ProjectName),
			BreezeBlock: ptr.To(state.BreezeBlock),
			SweetSand:   ptr.To(state.SweetSand),
			Concrete:    ptr.To(state.Concrete),
			LandPrep:    ptr.To(state.LandPrep),
			Manpower:    ptr.To(state.Manpower),
			Equipment:   ptr.To(state.Equipment),
		},
	}
	if state.SavedUTC != "" {
		env.SavedUTC = ptr.To(state.SavedUTC)
	}
	if state.Notes != "" {
		env.Data.Notes = ptr.To(state.Notes)
	}

	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encode project")
	}
	return b, nil
}

// Deserialize decodes a project document. Any structural defect comes
// back wrapped in ErrCorruptProject so callers can keep their current
// state on failure.
func Deserialize(b []byte) (*ProjectState, error) {
	var env rawEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, pkgerrors.Wrapf(ErrCorruptProject, "parse: %v", err)
	}

	if env.SchemaVersion == nil {
		return nil, pkgerrors.Wrap(ErrCorruptProject, "missing schema_version")
	}
	if *env.SchemaVersion != SchemaVersion {
		return nil, pkgerrors.Wrapf(ErrCorruptProject, "unsupported schema_version %d", *env.SchemaVersion)
	}
	if env.Data == nil {
		return nil, pkgerrors.Wrap(ErrCorruptProject, "missing data section")
	}

	d := env.Data
	for _, sec := range []struct {
		name string
		ok   bool
	}{
		{"project_name", d.ProjectName != nil},
		{"breeze_block", d.BreezeBlock != nil},
		{"sweet_sand", d.SweetSand != nil},
		{"concrete", d.Concrete != nil},
		{"land_prep", d.LandPrep != nil},
		{"manpower", d.Manpower != nil},
		{"equipment", d.Equipment != nil},
	} {
		if !sec.ok {
			return nil, pkgerrors.Wrapf(ErrCorruptProject, "missing %s section", sec.name)
		}
	}

	state := &ProjectState{
		ProjectName: *d.ProjectName,
		BreezeBlock: *d.BreezeBlock,
		SweetSand:   *d.SweetSand,
		Concrete:    *d.Concrete,
		LandPrep:    *d.LandPrep,
		Manpower:    *d.Manpower,
		Equipment:   *d.Equipment,
	}
	if env.SavedUTC != nil {
		state.SavedUTC = *env.SavedUTC
	}
	if d.Notes != nil {
		state.Notes = *d.Notes
	}
	return state, nil
}
