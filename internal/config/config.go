// Package config handles configuration loading for batch conversions.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Jobs        []Job `yaml:"jobs" json:"jobs"`
	Concurrency int   `yaml:"concurrency,omitempty" json:"concurrency,omitempty"`
	Minify      bool  `yaml:"minify,omitempty" json:"minify,omitempty"`
}

// Job is a single file conversion.
type Job struct {
	Name   string `yaml:"name" json:"name"`
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`

	// inferred from the file extension when empty
	From string `yaml:"from,omitempty" json:"from,omitempty"`
	To   string `yaml:"to,omitempty" json:"to,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validate %s", path)
	}

	return &cfg, nil
}

// Validate checks that every job is complete and that names are unique.
func (c *Config) Validate() error {
	if len(c.Jobs) == 0 {
		return errors.New("no jobs defined")
	}
	if c.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}

	seen := make(map[string]bool, len(c.Jobs))
	for i, job := range c.Jobs {
		switch {
		case job.Name == "":
			return errors.Errorf("job #%d has no name", i)
		case seen[job.Name]:
			return errors.Errorf("job %q is defined twice", job.Name)
		case job.Input == "":
			return errors.Errorf("job %q has no input", job.Name)
		case job.Output == "":
			return errors.Errorf("job %q has no output", job.Name)
		}
		seen[job.Name] = true
	}

	return nil
}

// Select returns the jobs named in names, in the order given, skipping
// duplicates. Unknown names are returned separately. With no names every job
// is selected.
func (c *Config) Select(names []string) (jobs []Job, missing []string) {
	if len(names) == 0 {
		return c.Jobs, nil
	}

	available := make(map[string]Job, len(c.Jobs))
	for _, job := range c.Jobs {
		available[job.Name] = job
	}

	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		if job, ok := available[name]; ok {
			jobs = append(jobs, job)
		} else {
			missing = append(missing, name)
		}
	}

	return jobs, missing
}
