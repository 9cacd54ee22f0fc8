package bindingerr

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhasePath    Phase = "path"    // path utility
	PhaseResolve Phase = "resolve" // declaration resolution
	PhaseWire    Phase = "wire"    // scope/component wiring
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidPath             Kind = "invalid_path"
	KindUnsupportedBindingValue Kind = "unsupported_binding_value"
	KindUndeclaredBinding       Kind = "undeclared_binding"
)

// Sentinels for errors.Is. Matching compares Kind only.
var (
	ErrInvalidPath             = &Error{Kind: KindInvalidPath}
	ErrUnsupportedBindingValue = &Error{Kind: KindUnsupportedBindingValue}
	ErrUndeclaredBinding       = &Error{Kind: KindUndeclaredBinding}
)

// Error is the structured binding error
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Expr      string
	Attribute string
	Value     string
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}

	b.WriteString(string(e.Kind))

	if e.Attribute != "" {
		b.WriteString(" in attribute ")
		b.WriteString(e.Attribute)
	}

	if e.Expr != "" {
		fmt.Fprintf(&b, " %q", e.Expr)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target has the same kind. A target without a phase
// matches every phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}

	return e.Kind == t.Kind
}

// InvalidPath creates the error raised for an empty or malformed path.
func InvalidPath(path string) *Error {
	detail := "empty path"
	if path != "" {
		detail = "malformed path"
	}

	return &Error{
		Phase:  PhasePath,
		Kind:   KindInvalidPath,
		Expr:   path,
		Detail: detail,
	}
}

// UnsupportedValue creates the error raised when a sync binding value is not
// a plain identifier path.
func UnsupportedValue(attribute, value string) *Error {
	return &Error{
		Phase:     PhaseResolve,
		Kind:      KindUnsupportedBindingValue,
		Attribute: attribute,
		Value:     value,
		Detail:    fmt.Sprintf("binding value %q is not an identifier path", value),
	}
}

// Undeclared creates the error raised when expr evaluates to undefined on the
// host scope.
func Undeclared(expr string) *Error {
	return &Error{
		Phase:  PhaseWire,
		Kind:   KindUndeclaredBinding,
		Expr:   expr,
		Detail: "not defined on parent scope",
	}
}
