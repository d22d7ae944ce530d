package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the optional config.yaml file.
// It lets deployments adjust the canned knowledge content without a
// rebuild; anything absent falls back to the compiled-in defaults.
type YAMLConfig struct {
	Topics   []TopicConfig       `yaml:"topics"`
	Keywords map[string][]string `yaml:"keywords"`
	Phrases  map[string]string   `yaml:"phrases"`
}

// TopicConfig overrides or adds a single knowledge base topic.
type TopicConfig struct {
	ID        string           `yaml:"id"`
	Text      string           `yaml:"text"`
	FollowUps []FollowUpConfig `yaml:"follow_ups,omitempty"`
}

// FollowUpConfig defines a quick-action suggestion on a topic.
type FollowUpConfig struct {
	Label string `yaml:"label"`
	Next  string `yaml:"next"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
