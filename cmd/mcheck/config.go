package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig holds the optional YAML configuration. Flags that are set
// explicitly take precedence over values from the file.
type fileConfig struct {
	Report duration `yaml:"report"`
	Export string   `yaml:"export"`

	Diehard diehardConfig `yaml:"diehard"`
	Raftlog raftlogConfig `yaml:"raftlog"`
}

// duration parses Go duration strings ("1s", "500ms") from YAML.
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = duration(parsed)
	return nil
}

type diehardConfig struct {
	Big    int8 `yaml:"big"`
	Small  int8 `yaml:"small"`
	Target int8 `yaml:"target"`
}

type raftlogConfig struct {
	Nodes   int   `yaml:"nodes"`
	MaxTerm uint8 `yaml:"max_term"`
	MaxLog  int   `yaml:"max_log"`
	Unsafe  bool  `yaml:"unsafe"`
}

// loadConfig reads the YAML config file. An empty path yields a zero config.
func loadConfig(path string) (*fileConfig, error) {
	cfg := &fileConfig{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %v: %w", path, err)
	}
	return cfg, nil
}
