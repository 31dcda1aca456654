package seeder

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config holds seeder pipeline settings.
type Config struct {
	FilePath string `yaml:"file"    env:"SEEDER_FILE"`
	DryRun   bool   `yaml:"dry_run" env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}

// File is the directory dataset loaded by the pipeline.
type File struct {
	Areas    []AreaSeed    `yaml:"areas"`
	Places   []PlaceSeed   `yaml:"places"`
	Services []ServiceSeed `yaml:"services"`
}

type AreaSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// PlaceSeed references its area by name.
type PlaceSeed struct {
	Name        string `yaml:"name"`
	Area        string `yaml:"area"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Address     string `yaml:"address"`
	Popular     bool   `yaml:"popular"`
	Opens       string `yaml:"opens"`
	Closes      string `yaml:"closes"`
}

type ServiceSeed struct {
	Name      string `yaml:"name"`
	Area      string `yaml:"area"`
	Category  string `yaml:"category"`
	Address   string `yaml:"address"`
	Phone     string `yaml:"phone"`
	OpenHours string `yaml:"open_hours"`
	Notes     string `yaml:"notes"`
	Inactive  bool   `yaml:"inactive"`
}

// LoadFile decodes a seed file. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed file: read %s: %w", path, err)
	}
	return ParseFile(raw)
}

// ParseFile decodes seed data from raw YAML.
func ParseFile(raw []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("seed file: decode: %w", err)
	}
	return &f, nil
}
