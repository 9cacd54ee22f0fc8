package bindingerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "invalid path",
			err:      InvalidPath(""),
			contains: []string{"[path]", "invalid_path", "empty path"},
		},
		{
			name:     "unsupported value",
			err:      UnsupportedValue(":title.sync", "123abc"),
			contains: []string{"[resolve]", "unsupported_binding_value", ":title.sync", "123abc"},
		},
		{
			name:     "undeclared",
			err:      Undeclared("user.name"),
			contains: []string{"[wire]", "undeclared_binding", `"user.name"`, "parent scope"},
		},
		{
			name: "with cause",
			err: &Error{
				Kind:  KindUndeclaredBinding,
				Cause: errors.New("boom"),
			},
			contains: []string{"undeclared_binding", "caused by: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				assert.Contains(t, msg, s)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	wrapped := fmt.Errorf("binding profile: %w", Undeclared("save"))

	assert.ErrorIs(t, wrapped, ErrUndeclaredBinding)
	assert.NotErrorIs(t, wrapped, ErrInvalidPath)
	assert.ErrorIs(t, wrapped, &Error{Phase: PhaseWire, Kind: KindUndeclaredBinding})
	assert.NotErrorIs(t, wrapped, &Error{Phase: PhaseResolve, Kind: KindUndeclaredBinding})

	var be *Error
	require.ErrorAs(t, wrapped, &be)
	assert.Equal(t, "save", be.Expr)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root")
	err := &Error{Kind: KindInvalidPath, Cause: cause}

	assert.ErrorIs(t, err, cause)
}
