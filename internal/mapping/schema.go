package mapping

import (
	"errors"

	"bindbridge/internal/resolve"
)

// DeclarationFile represents the root of a YAML declaration file.
type DeclarationFile struct {
	// Version of the declaration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Bindings lists the bound elements.
	Bindings []BindingDecl `yaml:"bindings"`

	// Scope is an optional host-scope fixture.
	Scope map[string]any `yaml:"scope,omitempty"`

	// Delegates names host functions present in the fixture. Accepts a
	// single string or a list.
	Delegates StringArray `yaml:"delegates,omitempty"`
}

// BindingDecl declares one bound element.
type BindingDecl struct {
	// Name identifies the binding in output and diagnostics.
	Name string `yaml:"name"`

	// Expose is the comma-separated export list.
	Expose string `yaml:"expose,omitempty"`

	// Attributes is the raw attribute mapping of the element.
	Attributes map[string]string `yaml:"attributes,omitempty"`
}

// Input returns the resolver input for the declaration.
func (b BindingDecl) Input() resolve.Input {
	return resolve.Input{Attributes: b.Attributes, Expose: b.Expose}
}

// HasScope returns true if the file carries a scope fixture.
func (f *DeclarationFile) HasScope() bool {
	return f.Scope != nil || len(f.Delegates) > 0
}

// Plan is the serialized result of resolving a declaration file.
type Plan struct {
	Version  string        `yaml:"version"`
	Bindings []PlanBinding `yaml:"bindings"`
}

// PlanBinding is the resolution result of one binding.
type PlanBinding struct {
	Name         string                `yaml:"name"`
	Declarations *resolve.Declarations `yaml:"resolved,omitempty"`
	// Error is set instead of the declarations when resolution failed.
	Error string `yaml:"error,omitempty"`
}

// StringArray is a string slice that can be unmarshaled from a single string or a list.
type StringArray []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringArray) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi
		return nil
	}

	return errors.New("expected string or list of strings")
}
