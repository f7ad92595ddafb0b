package project

import (
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Save writes the state to path atomically enough for a desktop tool:
// serialize first, then a single WriteFile. A serialization failure
// never leaves a truncated file behind.
func Save(path string, state *ProjectState) error {
	b, err := Serialize(state)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return pkgerrors.Wrapf(err, "write project %s", path)
	}
	logrus.Debugf("saved project %q to %s", state.ProjectName, path)
	return nil
}

// Load reads and decodes a project file. IO failures come back as
// plain wrapped errors; structural defects match ErrCorruptProject.
func Load(path string) (*ProjectState, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "read project %s", path)
	}
	state, err := Deserialize(b)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "project %s", path)
	}
	logrus.Debugf("loaded project %q from %s", state.ProjectName, path)
	return state, nil
}
