package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/queuesim/queuesim/sim"
)

// SweepConfig is the YAML shape of a sweep configuration file. Every field
// is a pointer so that an absent key leaves the corresponding flag value
// untouched.
type SweepConfig struct {
	MaxServers  *int     `yaml:"max_servers"`
	ArrivalRate *float64 `yaml:"arrival_rate"`
	ServiceRate *float64 `yaml:"service_rate"`
	Horizon     *float64 `yaml:"horizon"`
	Seed        *int64   `yaml:"seed"`
	UtilMin     *float64 `yaml:"util_min"`
	UtilMax     *float64 `yaml:"util_max"`
}

// LoadSweepConfig reads and parses a YAML sweep configuration file.
func LoadSweepConfig(path string) (*SweepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg SweepConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply overrides the fields of dst that the file set.
func (c *SweepConfig) Apply(dst *sim.ExperimentConfig) {
	if c.MaxServers != nil {
		dst.MaxServers = *c.MaxServers
	}
	if c.ArrivalRate != nil {
		dst.ArrivalRate = *c.ArrivalRate
	}
	if c.ServiceRate != nil {
		dst.ServiceRate = *c.ServiceRate
	}
	if c.Horizon != nil {
		dst.Horizon = *c.Horizon
	}
	if c.Seed != nil {
		dst.Seed = *c.Seed
	}
	if c.UtilMin != nil {
		dst.Band.Min = *c.UtilMin
	}
	if c.UtilMax != nil {
		dst.Band.Max = *c.UtilMax
	}
}
