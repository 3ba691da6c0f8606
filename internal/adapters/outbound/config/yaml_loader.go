package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/ftf/internal/domain"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that overrides the config path.
const EnvVar = "FTF_CONFIG"

const fileName = "config.yaml"

// YAMLLoader implements domain.ConfigLoader by reading a YAML file.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// DefaultPath returns $FTF_CONFIG, or config.yaml in the user's ftf config
// directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvVar); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "ftf", fileName), nil
}

// Load reads the config at path, or at DefaultPath when path is empty.
// Returns DefaultConfig if the file does not exist. Values absent from the
// file keep their defaults.
func (l *YAMLLoader) Load(path string) (domain.Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return domain.DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}
