package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	InventorySize int `yaml:"inventory_size"`

	Stations StationRules `yaml:"stations"`

	EventsDir string `yaml:"events_dir"`
}

type StationRules struct {
	SlotCount       int  `yaml:"slot_count"`
	StrictMatch     bool `yaml:"strict_match"`
	RestrictToKnown bool `yaml:"restrict_to_known"`
}

func Load(path string) (Tuning, error) {
	var t Tuning
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if t.InventorySize < 1 {
		return t, fmt.Errorf("tuning.yaml: invalid inventory_size=%d", t.InventorySize)
	}
	if t.Stations.SlotCount < 1 {
		return t, fmt.Errorf("tuning.yaml: invalid stations.slot_count=%d", t.Stations.SlotCount)
	}
	return t, nil
}
