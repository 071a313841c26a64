// Copyright © 2022 the goxlr-dissect authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the few tunables the tool accepts from a YAML file. All
// fields have working defaults; the file is optional.
type Config struct {
	// VendorID/ProductIDs override which device watch and info attach
	// to, for firmware with relabeled IDs.
	VendorID   uint16   `yaml:"vendor_id"`
	ProductIDs []uint16 `yaml:"product_ids"`

	// PollIntervalMS is the delay between state polls in watch mode.
	PollIntervalMS int `yaml:"poll_interval_ms"`

	// LogLevel is a logrus level name; -v flags take precedence.
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		VendorID:       0x1220,
		ProductIDs:     []uint16{0x8fe0, 0x8fe4},
		PollIntervalMS: 500,
	}
}

// LoadConfig reads path on top of the defaults. An empty path returns
// the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.VendorID == 0 {
		return fmt.Errorf("vendor_id must not be zero")
	}
	if len(c.ProductIDs) == 0 {
		return fmt.Errorf("product_ids must name at least one device")
	}
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("poll_interval_ms must be positive, got %d", c.PollIntervalMS)
	}
	return nil
}
