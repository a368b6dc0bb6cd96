// Package config loads CLI configuration from loom.yaml, environment
// variables, and .env files.
package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem every command reads and writes through. Tests swap
// it for an in-memory one.
var AppFs = afero.NewOsFs()

const (
	// DefaultSchemaPath is the schema file commands fall back to.
	DefaultSchemaPath = "app.loom"
	// DefaultOutputDir is where compiled artifacts land.
	DefaultOutputDir = "out"
)

// Config holds the application configuration
type Config struct {
	SchemaPath string
	OutputDir  string
}

// Load reads configuration in priority order: LOOM_* environment variables,
// then loom.yaml from the working directory or ~/.config/loom, then
// defaults. A .env file is loaded first so it can supply the environment,
// with .env.local overriding it.
func Load() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	loadDotenv()

	v := viper.New()
	v.SetFs(AppFs)
	v.SetConfigName("loom")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(home, ".config", "loom"))

	v.SetEnvPrefix("LOOM")
	v.AutomaticEnv()

	v.SetDefault("schema", DefaultSchemaPath)
	v.SetDefault("output", DefaultOutputDir)

	// Missing config files are fine; defaults apply.
	_ = v.ReadInConfig()

	return &Config{
		SchemaPath: v.GetString("schema"),
		OutputDir:  v.GetString("output"),
	}, nil
}

func loadDotenv() {
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	// .env.local wins over .env.
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}
}
