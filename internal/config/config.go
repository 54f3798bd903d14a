// SPDX-License-Identifier: MIT
// Package config loads and validates graphstat run files.
//
// A run file is YAML decoded with gopkg.in/yaml.v3 (unknown keys rejected)
// and checked with github.com/go-playground/validator/v10. Command-line flags
// override file values; the CLI applies them before calling the
// command-specific Check methods.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root of a run file.
type Config struct {
	// Workers caps the parallel pool; 0 selects GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`

	Edges  EdgesConfig  `yaml:"edges" validate:"-"`
	Coauth CoauthConfig `yaml:"coauth" validate:"-"`
}

// EdgesConfig drives the "edges" command.
type EdgesConfig struct {
	Input         string `yaml:"input" validate:"required,file"`
	Undirected    bool   `yaml:"undirected"`
	Duplicates    string `yaml:"duplicates" validate:"omitempty,oneof=ignore accumulate"`
	DegreeOut     string `yaml:"degree_out"`
	ClusteringOut string `yaml:"clustering_out"`
}

// CoauthConfig drives the "coauth" command.
type CoauthConfig struct {
	NVerts    string `yaml:"nverts" validate:"required,file"`
	Simplices string `yaml:"simplices" validate:"required,file"`
	Times     string `yaml:"times" validate:"required,file"`
	// Year restricts the report to one bucket; nil reports every bucket.
	Year *int `yaml:"year"`
}

// Selects reports whether bucket t belongs in the report.
func (c CoauthConfig) Selects(t int) bool {
	return c.Year == nil || *c.Year == t
}

// Default returns the configuration used when no run file is given.
func Default() Config {
	return Config{Edges: EdgesConfig{Duplicates: "ignore"}}
}

// Load reads path over Default and validates the shared fields.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the fields shared by every command.
func (c Config) Validate() error {
	return check(c)
}

// Check validates the edges section.
func (e EdgesConfig) Check() error {
	return check(e)
}

// Check validates the coauth section.
func (c CoauthConfig) Check() error {
	return check(c)
}

func check(s any) error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError joins field errors into one readable message.
func formatValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "file":
		return fmt.Sprintf("%s must be an existing file (%v)", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be ≥ %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
