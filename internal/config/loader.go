package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// LookupConfig is the subset of Config needed to call the provider without
// a database, as the lookup command does.
type LookupConfig struct {
	Youdao YoudaoConfig `yaml:"youdao"`
	Log    LogConfig    `yaml:"log"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile is Load with an explicit path. An empty path falls back to
// "./config.yaml" and tolerates its absence.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if err := read(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// LoadLookup reads only the provider and logging sections, following the
// same file and environment rules as Load.
func LoadLookup() (*LookupConfig, error) {
	var cfg LookupConfig
	if err := read(os.Getenv("CONFIG_PATH"), &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Youdao.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: youdao: %w", err)
	}
	return &cfg, nil
}

func read(path string, dst any) error {
	explicitPath := path != ""
	if !explicitPath {
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, dst); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(dst); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	return nil
}

// Usage returns a description of every supported environment variable,
// suitable for printing from a -help flag.
func Usage() (string, error) {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return "", fmt.Errorf("config: describe: %w", err)
	}
	return text, nil
}
