package resolve

import (
	"maps"
	"slices"

	"bindbridge/internal/diagnostic"
)

// ExposeAttribute is the attribute carrying the explicit export list.
const ExposeAttribute = "vue-expose"

// ModelProperty is the component property bound by v-model.
const ModelProperty = "value"

// Input is everything resolution reads. It is not retained.
type Input struct {
	// Attributes maps attribute name to attribute value, as delivered by the
	// host template system.
	Attributes map[string]string
	// Expose is the comma-separated export list. When empty, the
	// ExposeAttribute entry of Attributes is used instead.
	Expose string
}

// ExportList returns the effective export list of in.
func (in Input) ExportList() string {
	if in.Expose != "" {
		return in.Expose
	}

	return in.Attributes[ExposeAttribute]
}

// Declarations is the result of resolution. Callers must treat it as
// immutable; use Clone before modifying.
type Declarations struct {
	// Paths is the ancestor-closed, sorted, duplicate-free binding set.
	Paths []string `yaml:"paths"`
	// Delegates lists host methods exposed to the component.
	Delegates []string `yaml:"delegates,omitempty"`
	// Sync maps component property to host path for two-way bindings.
	Sync map[string]string `yaml:"sync,omitempty"`
	// Diagnostics holds non-fatal findings.
	Diagnostics diagnostic.Diagnostics `yaml:"diagnostics,omitempty"`
}

// SyncProperties returns the keys of Sync in ascending order.
func (d *Declarations) SyncProperties() []string {
	return slices.Sorted(maps.Keys(d.Sync))
}

// Clone returns a deep copy of d.
func (d *Declarations) Clone() *Declarations {
	if d == nil {
		return nil
	}

	return &Declarations{
		Paths:     slices.Clone(d.Paths),
		Delegates: slices.Clone(d.Delegates),
		Sync:      maps.Clone(d.Sync),
		Diagnostics: diagnostic.Diagnostics{
			Errors:   slices.Clone(d.Diagnostics.Errors),
			Warnings: slices.Clone(d.Diagnostics.Warnings),
			Infos:    slices.Clone(d.Diagnostics.Infos),
		},
	}
}
