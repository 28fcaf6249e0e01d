// Package config loads the optional YAML file describing where to
// find ROM and disk images and how slot 6 is wired. It parameterizes
// session setup; it does not describe emulated hardware state.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Slot6 describes the two Disk II drives attached to slot 6.
type Slot6 struct {
	Disk1        string  `yaml:"disk1"`
	Disk2        string  `yaml:"disk2"`
	WriteProtect [2]bool `yaml:"writeProtect"`
}

// Config is the top-level session configuration.
type Config struct {
	ROMPath string `yaml:"romPath"`
	Volume  byte   `yaml:"volume"`
	Slot6   Slot6  `yaml:"slot6"`
}

// Default returns the configuration used when no file is given and no
// flags override it.
func Default() Config {
	return Config{
		ROMPath: "apple2.rom",
		Volume:  254,
	}
}

// Load reads and parses a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}
