// Package config holds the user defaults for the hexGo binaries: board size, rules and the
// AI configurations.
//
// The defaults can be saved to a JSON file in the user's XDG config directory
// ($XDG_CONFIG_HOME/hexgo/config.json). Flags explicitly set on the command line take
// precedence over the file, see Config.MergeFlags.
package config

import (
	"encoding/json"
	"flag"
	"github.com/adrg/xdg"
	"github.com/janpfeifer/hexGo/internal/players"
	. "github.com/janpfeifer/hexGo/internal/state"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
	"strconv"
)

// FileName of the defaults file, relative to the XDG config directories.
const FileName = "hexgo/config.json"

// Config holds the defaults used by the binaries.
type Config struct {
	// BoardSize is the side of the N×N board.
	BoardSize int `json:"board_size"`

	// Rules is either "hex" or "square", see state.RulesByName.
	Rules string `json:"rules"`

	// AIConfig is the configuration of the AI player, see players.New.
	AIConfig string `json:"ai_config"`

	// AIConfig2 is the configuration of the second AI player, when two AIs play each other.
	AIConfig2 string `json:"ai_config2"`
}

// Default configuration, used for anything not given in the file.
var Default = Config{
	BoardSize: DefaultBoardSize,
	Rules:     "hex",
	AIConfig:  players.DefaultPlayerConfig,
	AIConfig2: "minimax",
}

// FlagNames maps the command line flag names to the Config field they override in MergeFlags.
var FlagNames = struct {
	BoardSize, Rules, AIConfig, AIConfig2 string
}{
	BoardSize: "size",
	Rules:     "rules",
	AIConfig:  "config",
	AIConfig2: "config2",
}

// Load searches for FileName in the XDG config directories and reads it. If no file is found
// it returns the Default configuration, and path is empty.
func Load() (cfg *Config, path string, err error) {
	path, err = xdg.SearchConfigFile(FileName)
	if err != nil {
		cfg = new(Config)
		*cfg = Default
		return cfg, "", nil
	}
	cfg, err = LoadFile(path)
	return cfg, path, err
}

// LoadFile reads the configuration from the JSON file at path. Fields missing in the file take
// the Default values.
func LoadFile(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %q", path)
	}
	cfg := new(Config)
	*cfg = Default
	if err = json.Unmarshal(contents, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %q", path)
	}
	if err = cfg.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "invalid config file %q", path)
	}
	return cfg, nil
}

// Validate checks the board size and the rules. The AI configurations are only checked when
// the players are created.
func (c *Config) Validate() error {
	if err := ValidateSize(c.BoardSize); err != nil {
		return err
	}
	if _, err := RulesByName(c.Rules); err != nil {
		return err
	}
	return nil
}

// NewRules returns the state.Rules selected by the configuration.
func (c *Config) NewRules() (Rules, error) {
	return RulesByName(c.Rules)
}

// Save the configuration to FileName in the user's XDG config directory, creating the
// directory if needed. It returns the path of the file written.
func (c *Config) Save() (string, error) {
	path, err := xdg.ConfigFile(FileName)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create config directory for %q", FileName)
	}
	return path, c.SaveFile(path)
}

// SaveFile writes the configuration as indented JSON to path.
func (c *Config) SaveFile(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	contents, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %q", path)
	}
	if err = os.WriteFile(path, append(contents, '\n'), 0664); err != nil {
		return errors.Wrapf(err, "failed to write config file %q", path)
	}
	return nil
}

// MergeFlags overrides the configuration with the flags in fs (see FlagNames) that were
// explicitly set on the command line. Flags left at their default values don't change the
// configuration. Flags not defined in fs are ignored.
func (c *Config) MergeFlags(fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		value := f.Value.String()
		switch f.Name {
		case FlagNames.BoardSize:
			c.BoardSize, err = strconv.Atoi(value)
			if err != nil {
				err = errors.Wrapf(err, "invalid -%s=%q", f.Name, value)
			}
		case FlagNames.Rules:
			c.Rules = value
		case FlagNames.AIConfig:
			c.AIConfig = value
		case FlagNames.AIConfig2:
			c.AIConfig2 = value
		}
	})
	if err != nil {
		return err
	}
	return c.Validate()
}
