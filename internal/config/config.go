// Package config loads kusa-graph settings from an optional YAML file and
// KUSA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	SourceGitHub = "github"
	SourceMock   = "mock"
)

// Config holds the settings that flags may override.
type Config struct {
	Source string `mapstructure:"source"`
	User   string `mapstructure:"user"`
	Year   int    `mapstructure:"year"` // 0 means the current year
	Seed   uint64 `mapstructure:"seed"`
}

func (c Config) Validate() error {
	switch c.Source {
	case SourceGitHub, SourceMock:
	default:
		return fmt.Errorf("unknown source %q (expected %q or %q)", c.Source, SourceGitHub, SourceMock)
	}
	if c.Year < 0 {
		return fmt.Errorf("year must be >= 1")
	}
	return nil
}

// Load reads path if set, otherwise looks for .kusa-graph.yaml in the home
// directory and the working directory. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("source", SourceGitHub)
	v.SetDefault("user", "")
	v.SetDefault("year", 0)
	v.SetDefault("seed", 0)

	v.SetEnvPrefix("KUSA")
	v.AutomaticEnv()

	if path != "" {
		p, err := homedir.Expand(path)
		if err != nil {
			return Config{}, fmt.Errorf("invalid config path %q: %w", path, err)
		}
		v.SetConfigFile(p)
	} else {
		v.SetConfigName(".kusa-graph") // .yaml is implicit
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	seed, err := cast.ToUint64E(v.Get("seed"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid seed %v: %w", v.Get("seed"), err)
	}

	c := Config{
		Source: strings.ToLower(v.GetString("source")),
		User:   v.GetString("user"),
		Year:   v.GetInt("year"),
		Seed:   seed,
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
