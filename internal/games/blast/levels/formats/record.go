// Package formats decodes level files.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is the on-disk shape of a level. JSON files decode through the
// YAML parser since YAML is a superset of JSON.
type Record struct {
	LevelNumber int      `yaml:"level_number"`
	GridWidth   int      `yaml:"grid_width"`
	GridHeight  int      `yaml:"grid_height"`
	MoveCount   int      `yaml:"move_count"`
	Grid        []string `yaml:"grid"`
}

// Parse decodes a level record and checks its dimensions.
func Parse(data []byte) (Record, error) {
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if r.GridWidth <= 0 || r.GridHeight <= 0 {
		return Record{}, fmt.Errorf("invalid grid size %dx%d", r.GridWidth, r.GridHeight)
	}
	if r.MoveCount < 0 {
		return Record{}, fmt.Errorf("negative move_count %d", r.MoveCount)
	}
	return r, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}
