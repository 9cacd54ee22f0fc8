package mapping

import (
	"context"
	"fmt"
	"os"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"bindbridge/internal/scope"
)

// CurrentVersion is the schema version written by Marshal.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML declaration file from the given path.
func LoadFile(path string) (*DeclarationFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	return Parse(data)
}

// LoadURL loads a declaration file from any location afs supports
// (local path, file://, mem://, cloud storage).
func LoadURL(ctx context.Context, URL string) (*DeclarationFile, error) {
	fs := afs.New()

	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download declaration file %s: %w", URL, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a DeclarationFile.
func Parse(data []byte) (*DeclarationFile, error) {
	var df DeclarationFile

	err := yaml.Unmarshal(data, &df)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	applyDefaults(&df)

	return &df, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(df *DeclarationFile) {
	if df.Version == "" {
		df.Version = CurrentVersion
	}

	for i := range df.Bindings {
		b := &df.Bindings[i]
		if b.Name == "" {
			b.Name = fmt.Sprintf("binding%d", i+1)
		}

		if b.Attributes == nil {
			b.Attributes = map[string]string{}
		}
	}
}

// NewScope builds a host scope from the file's fixture. Every listed delegate
// becomes a function that records nothing and returns nil.
func (f *DeclarationFile) NewScope() *scope.Memory {
	data := map[string]any{}
	for k, v := range f.Scope {
		data[k] = v
	}

	for _, name := range f.Delegates {
		data[name] = scope.Func(func(scope.Scope, ...any) (any, error) { return nil, nil })
	}

	return scope.NewMemory(data)
}

// Marshal serializes a Plan to YAML.
func Marshal(p *Plan) ([]byte, error) {
	if p.Version == "" {
		p.Version = CurrentVersion
	}

	return yaml.Marshal(p)
}

// WriteFile writes a Plan to the given path.
func WriteFile(p *Plan, path string) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file %s: %w", path, err)
	}

	return nil
}
