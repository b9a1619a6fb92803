// Package config holds the settings of the kdtree command.
package config

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"
)

// DefaultPath is read when no config file is given on the command line.
const DefaultPath = "~/.kdtree.yaml"

// Config for the kdtree command. Values from the file override DefaultConfig.
type Config struct {
	// Seed for generated points and queries.
	Seed int64 `yaml:"seed"`
	// Points is how many random points to generate when no input file is given.
	Points int `yaml:"points"`
	// Queries is how many queries of each kind the benchmark runs.
	Queries int `yaml:"queries"`
	// RangeSize is the side length of the square range queries of the benchmark.
	RangeSize float64 `yaml:"range_size"`
	// BulkLoad builds the tree with kdtree.BulkLoad instead of repeated inserts.
	BulkLoad bool `yaml:"bulk_load"`
	Draw     struct {
		// Size of the square output image in pixels.
		Size int `yaml:"size"`
		// PointRadius in pixels.
		PointRadius int `yaml:"point_radius"`
	} `yaml:"draw"`
}

// DefaultConfig is used when no config file exists.
var DefaultConfig = Config{
	Seed:      1,
	Points:    100000,
	Queries:   1000,
	RangeSize: 0.05,
}

func init() {
	DefaultConfig.Draw.Size = 512
	DefaultConfig.Draw.PointRadius = 2
}

// Load reads the config file at path, expanding a leading "~". A missing
// file gives the defaults.
func Load(path string) (*Config, error) {
	c := DefaultConfig
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
