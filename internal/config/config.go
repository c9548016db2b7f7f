package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Well-known project paths, relative to the project root.
const (
	InitializerPath = "config/initializers/sun_sword.rb"
	SettingsPath    = "config/sun_sword.yml"
	EnvPrefix       = "SUN_SWORD"
)

// Package managers supported by the frontend setup.
const (
	PackageManagerBun  = "bun"
	PackageManagerYarn = "yarn"
)

// Settings holds the generator settings for a project.
type Settings struct {
	ScopeOwnerColumn string `yaml:"scope_owner_column" mapstructure:"scope_owner_column"` // column excluded from contracts
	ScopeOwner       string `yaml:"scope_owner" mapstructure:"scope_owner"`               // e.g. "current_user"
	DatabasePath     string `yaml:"database_path" mapstructure:"database_path"`           // development sqlite DB
	SchemaPath       string `yaml:"schema_path" mapstructure:"schema_path"`               // db/schema.rb
	PackageManager   string `yaml:"package_manager" mapstructure:"package_manager"`
}

// Default returns the settings written by `sunsword init`.
func Default() *Settings {
	return &Settings{
		DatabasePath:   "db/development.sqlite3",
		SchemaPath:     "db/schema.rb",
		PackageManager: PackageManagerBun,
	}
}

// Load reads config/sun_sword.yml under root, applying SUN_SWORD_* overrides
// from the environment and from root/.env. A missing settings file yields defaults.
func Load(root string) (*Settings, error) {
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("scope_owner_column", def.ScopeOwnerColumn)
	v.SetDefault("scope_owner", def.ScopeOwner)
	v.SetDefault("database_path", def.DatabasePath)
	v.SetDefault("schema_path", def.SchemaPath)
	v.SetDefault("package_manager", def.PackageManager)

	path := filepath.Join(root, SettingsPath)
	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := v.ReadConfig(f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", SettingsPath, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", SettingsPath, err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate ensures the settings are usable.
func (s *Settings) Validate() error {
	switch s.PackageManager {
	case PackageManagerBun, PackageManagerYarn:
	default:
		return fmt.Errorf("package_manager must be %q or %q, got %q", PackageManagerBun, PackageManagerYarn, s.PackageManager)
	}
	return nil
}

// Marshal renders settings as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}
