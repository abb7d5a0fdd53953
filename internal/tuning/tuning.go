// Package tuning loads runtime configuration.
package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	SchematicsDir string `yaml:"schematics_dir"`
	DataDir       string `yaml:"data_dir"`
	ConfigDir     string `yaml:"config_dir"`
	IndexDB       string `yaml:"index_db"`
	AuditLog      bool   `yaml:"audit_log"`
}

// Default is the configuration used when no tuning file is given.
func Default() Tuning {
	return Tuning{
		SchematicsDir: "schematics",
		DataDir:       "data",
		ConfigDir:     "configs",
		IndexDB:       "data/index.db",
		AuditLog:      true,
	}
}

// Load reads a YAML tuning file. Absent keys keep their defaults.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}
