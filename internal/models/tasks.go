package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TaskBank holds the assessment content served to clients: the
// read-aloud passage, the recall word list and the task parameters.
type TaskBank struct {
	ReadingPassage string   `yaml:"reading_passage" json:"reading_passage"`
	RecallWords    []string `yaml:"recall_words" json:"recall_words"`
	StroopTrials   int      `yaml:"stroop_trials" json:"stroop_trials"`
	ReactionTrials int      `yaml:"reaction_trials" json:"reaction_trials"`
	TapSeconds     int      `yaml:"tap_seconds" json:"tap_seconds"`
}

// LoadTaskBank reads and parses the tasks.yaml file.
func LoadTaskBank(path string) (*TaskBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task bank: %w", err)
	}

	var bank TaskBank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task bank YAML: %w", err)
	}

	return &bank, nil
}
