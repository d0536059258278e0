package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config supplies CLI defaults from a YAML file; flags override it. An
// absent file is not an error.
type Config struct {
	Database string `yaml:"database"`
	Lexical  bool   `yaml:"lexical"`
	Trace    bool   `yaml:"trace"`
}

func loadConfig(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var result Config
	if err := yaml.Unmarshal(raw, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}
