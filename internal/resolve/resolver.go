package resolve

import (
	"fmt"
	"strings"

	"bindbridge/internal/bindingerr"
	"bindbridge/internal/common"
	"bindbridge/internal/diagnostic"
	"bindbridge/internal/grammar"
	"bindbridge/internal/paths"
)

// Resolve produces the declarations for one binding instance.
// It fails with an unsupported_binding_value error when a sync binding is
// not bound to an identifier path; no partial result is returned.
func Resolve(in Input) (*Declarations, error) {
	diags := &diagnostic.Diagnostics{}
	tokens := exportTokens(in.ExportList())
	names := common.SortedKeys(in.Attributes)

	props, err := resolveProperties(tokens, names, in.Attributes, diags)
	if err != nil {
		return nil, err
	}

	delegates := resolveDelegates(tokens, names, in.Attributes)

	sync, err := resolveSync(names, in.Attributes, diags)
	if err != nil {
		return nil, err
	}

	reportIgnoredTokens(tokens, diags)

	return &Declarations{
		Paths:       props,
		Delegates:   delegates,
		Sync:        sync,
		Diagnostics: *diags,
	}, nil
}

func exportTokens(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}

	raw := strings.Split(list, ",")
	tokens := make([]string, 0, len(raw))

	for _, tok := range raw {
		tokens = append(tokens, strings.TrimSpace(tok))
	}

	return tokens
}

func resolveProperties(tokens, names []string, attrs map[string]string, diags *diagnostic.Diagnostics) ([]string, error) {
	var candidates []string

	for _, tok := range tokens {
		if grammar.IsIdentifierPath(tok) {
			candidates = append(candidates, tok)
		}
	}

	for _, name := range names {
		if !grammar.IsBindPrefix(name) && !grammar.IsOneWayDirective(name) {
			continue
		}

		value := attrs[name]
		if !grammar.IsIdentifierPath(value) {
			diags.AddInfo("expression_not_bound",
				fmt.Sprintf("value %q is an expression, not a path; left to the component", value), "", name)

			continue
		}

		candidates = append(candidates, value)
	}

	closed := make([]string, 0, len(candidates)*2)
	for _, c := range candidates {
		ancestors, err := paths.Parents(c)
		if err != nil {
			return nil, err
		}

		closed = append(closed, c)
		closed = append(closed, ancestors...)
	}

	return common.SortedUnique(closed), nil
}

func resolveDelegates(tokens, names []string, attrs map[string]string) []string {
	var delegates []string

	for _, tok := range tokens {
		if id, ok := grammar.DelegateMarker(tok); ok {
			delegates = append(delegates, id)
		}
	}

	for _, name := range names {
		if !grammar.IsEventBinding(name) {
			continue
		}

		if id, ok := grammar.BareCall(attrs[name]); ok {
			delegates = append(delegates, id)
		}
	}

	return common.Unique(delegates)
}

func resolveSync(names []string, attrs map[string]string, diags *diagnostic.Diagnostics) (map[string]string, error) {
	mapping := map[string]string{}

	for _, name := range names {
		var prop string

		if grammar.IsModelBinding(name) {
			prop = ModelProperty
		} else if p, ok := grammar.SyncProperty(name); ok {
			prop = p
		} else {
			continue
		}

		value := attrs[name]
		if !grammar.IsIdentifierPath(value) {
			return nil, bindingerr.UnsupportedValue(name, value)
		}

		if prev, ok := mapping[prop]; ok && prev != value {
			diags.AddInfo("sync_overwritten",
				fmt.Sprintf("component property %q remapped from %q to %q", prop, prev, value), "", name)
		}

		mapping[prop] = value
	}

	return mapping, nil
}

func reportIgnoredTokens(tokens []string, diags *diagnostic.Diagnostics) {
	for _, tok := range tokens {
		if tok == "" || grammar.IsIdentifierPath(tok) {
			continue
		}

		if _, ok := grammar.DelegateMarker(tok); ok {
			continue
		}

		diags.AddWarning("export_token_ignored",
			fmt.Sprintf("export token %q is neither a path nor a &delegate", tok), "", ExposeAttribute)
	}
}
