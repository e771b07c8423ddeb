// SPDX-License-Identifier: EPL-2.0

package selection

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// DefaultFileName is the selection file name inside a preset directory.
const DefaultFileName = "selected_loops.txt"

// DirSource finds selection files laid out as <Root>/<preset>/<FileName>.
type DirSource struct {
	Root     string
	FileName string
}

// Path returns where the selections of preset are stored.
func (d DirSource) Path(preset string) string {
	name := d.FileName
	if name == "" {
		name = DefaultFileName
	}
	return filepath.Join(d.Root, preset, name)
}

// Selections loads the store of preset. A preset without a selection file
// returns (nil, nil).
func (d DirSource) Selections(preset string) (*Store, error) {
	s, err := Load(d.Path(preset))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}
