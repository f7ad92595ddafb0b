package project

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	state := DefaultState()
	state.ProjectName = "Algae farm phase 1"
	state.Notes = "two raceway reactors"
	state.SavedUTC = "2024-03-01T09:30:00Z"
	state.BreezeBlock.WallLength = 12
	state.BreezeBlock.WallHeight = 2.2
	state.BreezeBlock.WallCount = 4
	state.BreezeBlock.CostPerBlock = 0.85 // overridden price must survive
	state.Equipment.FuelPrice = 0.65

	b, err := Serialize(state)
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}

	got, err := Deserialize(b)
	if err != nil {
		t.Fatalf("Deserialize returned error: %v", err)
	}

	if got.ProjectName != state.ProjectName {
		t.Fatalf("project name mismatch: %q", got.ProjectName)
	}
	if got.SavedUTC != state.SavedUTC {
		t.Fatalf("saved_utc mismatch: %q", got.SavedUTC)
	}
	if got.BreezeBlock != state.BreezeBlock {
		t.Fatalf("breeze block input mismatch: %+v", got.BreezeBlock)
	}
	if got.Equipment.FuelPrice != 0.65 {
		t.Fatalf("fuel price override lost: %g", got.Equipment.FuelPrice)
	}
}

func TestSerializeIsStable(t *testing.T) {
	// Load then re-serialize must reproduce the exact same bytes.
	state := DefaultState()
	state.ProjectName = "Stability check"
	state.SavedUTC = "2024-03-01T09:30:00Z"

	first, err := Serialize(state)
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	loaded, err := Deserialize(first)
	if err != nil {
		t.Fatalf("Deserialize returned error: %v", err)
	}
	second, err := Serialize(loaded)
	if err != nil {
		t.Fatalf("second Serialize returned error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("serialization is not stable:\n%s\n----\n%s", first, second)
	}
}

func TestDeserializeMalformedJSON(t *testing.T) {
	if _, err := Deserialize([]byte("{not json")); !errors.Is(err, ErrCorruptProject) {
		t.Fatalf("expected ErrCorruptProject, got %v", err)
	}
}

func TestDeserializeSchemaVersion(t *testing.T) {
	if _, err := Deserialize([]byte(`{"data":{}}`)); !errors.Is(err, ErrCorruptProject) {
		t.Fatalf("expected ErrCorruptProject for missing schema_version, got %v", err)
	}
	if _, err := Deserialize([]byte(`{"schema_version":2,"data":{}}`)); !errors.Is(err, ErrCorruptProject) {
		t.Fatalf("expected ErrCorruptProject for future schema, got %v", err)
	}
}

func TestDeserializeMissingSection(t *testing.T) {
	state := DefaultState()
	b, err := Serialize(state)
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	// Knock out one required section.
	mangled := bytes.Replace(b, []byte(`"manpower"`), []byte(`"manpower_old"`), 1)
	if _, err := Deserialize(mangled); !errors.Is(err, ErrCorruptProject) {
		t.Fatalf("expected ErrCorruptProject for missing section, got %v", err)
	}
}

func TestDeserializeIgnoresLegacyFields(t *testing.T) {
	state := DefaultState()
	b, err := Serialize(state)
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	// Older builds wrote a per-pass compaction rate; it must be ignored.
	withLegacy := bytes.Replace(b,
		[]byte(`"land_prep": {`),
		[]byte(`"land_prep": {"cost_per_m2_pass": 0.8,`), 1)
	got, err := Deserialize(withLegacy)
	if err != nil {
		t.Fatalf("Deserialize returned error: %v", err)
	}
	if got.LandPrep != state.LandPrep {
		t.Fatalf("legacy field changed the decoded input: %+v", got.LandPrep)
	}
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "farm.json")

	state := DefaultState()
	state.ProjectName = "Disk round trip"
	state.SavedUTC = "2024-03-01T09:30:00Z"
	if err := Save(path, state); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got.ProjectName != "Disk round trip" {
		t.Fatalf("unexpected project name %q", got.ProjectName)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	} else if errors.Is(err, ErrCorruptProject) {
		t.Fatalf("missing file must not report corruption: %v", err)
	}
	if !fileExists(path) {
		t.Fatal("project file vanished")
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
