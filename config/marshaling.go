package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dekarrin/tosql/logging"
	"gopkg.in/yaml.v3"
)

type marshaledLog struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Provider string `yaml:"provider" json:"provider"`
	File     string `yaml:"file" json:"file"`
}

type marshaledDatabase struct {
	Dir  string `yaml:"dir" json:"dir"`
	File string `yaml:"file" json:"file"`
}

type marshaledConfig struct {
	Log marshaledLog      `yaml:"logging" json:"logging"`
	DB  marshaledDatabase `yaml:"db" json:"db"`
}

// Load loads a configuration from a JSON or YAML file. The format of the file
// is determined by examining its extension; files ending in .json are parsed as
// JSON files, and files ending in .yaml or .yml are parsed as YAML files. Other
// extensions are not supported. The extension is not case-sensitive.
//
// The returned Config has not had defaults filled.
func Load(file string) (Config, error) {
	var cfg Config
	var mc marshaledConfig

	data, err := os.ReadFile(file)
	if err != nil {
		return cfg, fmt.Errorf("%q: %w", file, err)
	}

	switch filepath.Ext(strings.ToLower(file)) {
	case ".json":
		err = json.Unmarshal(data, &mc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &mc)
	default:
		return cfg, fmt.Errorf("%q: incompatible format; must be .json, .yml, or .yaml file", file)
	}
	if err != nil {
		return cfg, fmt.Errorf("%q: %w", file, err)
	}

	if err := cfg.unmarshal(mc); err != nil {
		return cfg, fmt.Errorf("%q: %w", file, err)
	}
	return cfg, nil
}

// Dump returns the YAML encoding of cfg. It can be read back with Load.
func Dump(cfg Config) []byte {
	mc := marshaledConfig{
		Log: marshaledLog{
			Enabled: cfg.Log.Enabled,
			File:    cfg.Log.File,
		},
		DB: marshaledDatabase{
			Dir:  cfg.DB.Dir,
			File: cfg.DB.File,
		},
	}
	if cfg.Log.Provider != logging.NoLog {
		mc.Log.Provider = cfg.Log.Provider.String()
	}

	data, err := yaml.Marshal(mc)
	if err != nil {
		// only plain strings and bools are in mc
		panic(fmt.Sprintf("marshal config: %v", err))
	}
	return data
}

func (cfg *Config) unmarshal(m marshaledConfig) error {
	var err error

	cfg.Log.Enabled = m.Log.Enabled
	cfg.Log.File = m.Log.File
	cfg.Log.Provider, err = logging.ParseProvider(m.Log.Provider)
	if err != nil {
		return fmt.Errorf("logging: provider: %w", err)
	}

	cfg.DB.Dir = m.DB.Dir
	cfg.DB.File = m.DB.File

	return nil
}
