// Package config provides the configuration loader for serv.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the configuration file looked up in the working directory.
const Filename = "serv.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// servfile represents the structure of the serv.yaml configuration file.
type servfile struct {
	Port  int    `yaml:"port"`
	Root  string `yaml:"root"`
	Watch struct {
		Ignore         []string `yaml:"ignore"`
		DebounceMillis int      `yaml:"debounceMillis"`
	} `yaml:"watch"`
	Cache struct {
		Capacity int `yaml:"capacity"`
	} `yaml:"cache"`
}

// Load reads the configuration from the given working directory. A missing
// file is not an error; defaults apply.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	name := l.Filename
	if name == "" {
		name = Filename
	}

	cfg := &domain.Config{}
	data, err := os.ReadFile(filepath.Join(cwd, name))
	switch {
	case os.IsNotExist(err):
		// No config file; run on defaults.
	case err != nil:
		return nil, zerr.Wrap(err, "failed to read config file")
	default:
		var file servfile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.Wrap(err, "failed to parse config file")
		}
		cfg.Port = file.Port
		cfg.Root = file.Root
		cfg.WatchIgnore = file.Watch.Ignore
		cfg.DebounceMillis = file.Watch.DebounceMillis
		cfg.CacheCapacity = file.Cache.Capacity
	}

	cfg.ApplyDefaults()
	return cfg, nil
}
