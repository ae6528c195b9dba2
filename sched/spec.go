package sched

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is a batch of named schedule parameter sets.
// Loaded from YAML via LoadSpec(path).
type Spec struct {
	Version   string          `yaml:"version"`
	Schedules []NamedSchedule `yaml:"schedules"`
}

// NamedSchedule pairs a ScheduleParams with an identifier used for output
// file names and comparison rows.
type NamedSchedule struct {
	Name   string         `yaml:"name"`
	Params ScheduleParams `yaml:",inline"`
}

// LoadSpec reads and strictly parses a schedule spec file, then fills the
// documented defaults into any schedule whose fields were omitted.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule spec: %w", err)
	}
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing schedule spec: %w", err)
	}
	for i := range spec.Schedules {
		spec.Schedules[i].Params = spec.Schedules[i].Params.withDefaults()
	}
	return &spec, nil
}

// Validate checks names and families across the spec.
func (s *Spec) Validate() error {
	if len(s.Schedules) == 0 {
		return fmt.Errorf("schedule spec lists no schedules")
	}
	seen := make(map[string]bool)
	for i, ns := range s.Schedules {
		prefix := fmt.Sprintf("schedule[%d]", i)
		if ns.Name == "" {
			return fmt.Errorf("%s: name is required", prefix)
		}
		if seen[ns.Name] {
			return fmt.Errorf("%s: duplicate name %q", prefix, ns.Name)
		}
		seen[ns.Name] = true
		if !validFamilies[ns.Params.Family] {
			return fmt.Errorf("%s: unknown family %q; valid: linear, quad, sqrt, const, recip, log, exp", prefix, ns.Params.Family)
		}
	}
	return nil
}
