package schedule

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the structure of a tool-behavior config file. It lets
// deployments declare how custom tools behave without calling RegisterKind
// and RegisterExtractor from Go.
type Config struct {
	Tools []ToolConfig `yaml:"tools"`
}

// ToolConfig declares one tool's scheduling behavior: its kind and,
// optionally, the gjson path of the input field holding its resource.
type ToolConfig struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Resource string `yaml:"resource"`
}

// parseKind converts a string kind to a ToolKind.
func parseKind(s string) (ToolKind, error) {
	switch s {
	case "read":
		return KindRead, nil
	case "write":
		return KindWrite, nil
	case "state":
		return KindState, nil
	case "none", "":
		return KindNone, nil
	default:
		return KindNone, fmt.Errorf("unknown kind %q, must be read, write, state, or none", s)
	}
}

// LoadConfig loads a tool-behavior config from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads tool declarations from a YAML config file and registers
// them on the analyzer. Returns the number of tools loaded.
func (a *Analyzer) LoadFromFile(path string) (int, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return 0, err
	}
	return a.loadFromConfig(cfg)
}

func (a *Analyzer) loadFromConfig(cfg *Config) (int, error) {
	loaded := 0
	for i, tc := range cfg.Tools {
		if tc.Name == "" {
			return loaded, fmt.Errorf("tool %d: missing name", i)
		}
		kind, err := parseKind(tc.Kind)
		if err != nil {
			return loaded, fmt.Errorf("tool %d (%s): %w", i, tc.Name, err)
		}
		a.RegisterKind(tc.Name, kind)
		if tc.Resource != "" {
			a.RegisterExtractor(tc.Name, PathExtractor(tc.Resource))
		}
		loaded++
	}
	return loaded, nil
}

// LoadFromDirectory loads tool declarations from .toolplan/tools.yaml in the
// given directory. If the file doesn't exist, it returns (0, nil) - no error.
func (a *Analyzer) LoadFromDirectory(dir string) (int, error) {
	path := filepath.Join(dir, ".toolplan", "tools.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, nil
	}
	return a.LoadFromFile(path)
}

// LoadGlobal loads tool declarations from ~/.toolplan/tools.yaml.
// If the file doesn't exist, it returns (0, nil) - no error.
func (a *Analyzer) LoadGlobal() (int, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return 0, nil // Can't find home dir, skip global config
	}

	path := filepath.Join(home, ".toolplan", "tools.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, nil
	}
	return a.LoadFromFile(path)
}
