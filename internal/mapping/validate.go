package mapping

import (
	"fmt"

	"bindbridge/internal/common"
	"bindbridge/internal/diagnostic"
	"bindbridge/internal/grammar"
	"bindbridge/internal/resolve"
)

// Validate checks a declaration file structurally. It does not resolve the
// bindings; use Resolve for that.
func Validate(df *DeclarationFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if df == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	if df.Version != CurrentVersion {
		res.AddWarning("unknown_version", fmt.Sprintf("unknown schema version %q", df.Version), "", "")
	}

	if common.IsEmpty(df.Bindings) {
		res.AddWarning("no_bindings", "declaration file has no bindings", "", "")
	}

	seen := map[string]struct{}{}

	for i := range df.Bindings {
		b := &df.Bindings[i]

		if _, ok := seen[b.Name]; ok {
			res.AddError("duplicate_binding", fmt.Sprintf("duplicate binding %q", b.Name), b.Name, "")
			continue
		}

		seen[b.Name] = struct{}{}

		if b.Expose == "" && len(b.Attributes) == 0 {
			res.AddWarning("empty_binding", "binding declares nothing", b.Name, "")
		}
	}

	for _, name := range df.Delegates {
		if _, ok := grammar.DelegateMarker("&" + name); !ok {
			res.AddError("invalid_delegate", fmt.Sprintf("delegate %q is not an identifier", name), "", name)
		}

		if _, clash := df.Scope[name]; clash {
			res.AddError("delegate_shadows_scope", fmt.Sprintf("delegate %q shadows a scope value", name), "", name)
		}
	}

	return res
}

// Resolve resolves every binding of df with c, collecting failures per
// binding instead of stopping at the first one.
func Resolve(df *DeclarationFile, c *resolve.Cache) (*Plan, error) {
	plan := &Plan{Version: df.Version}

	var failed int

	for _, b := range df.Bindings {
		decl, err := c.Resolve(b.Input())
		if err != nil {
			failed++

			plan.Bindings = append(plan.Bindings, PlanBinding{Name: b.Name, Error: err.Error()})

			continue
		}

		decl.Diagnostics = decl.Diagnostics.WithBinding(b.Name)
		plan.Bindings = append(plan.Bindings, PlanBinding{Name: b.Name, Declarations: decl})
	}

	if failed > 0 {
		return plan, fmt.Errorf("%d of %d bindings failed to resolve", failed, len(df.Bindings))
	}

	return plan, nil
}
