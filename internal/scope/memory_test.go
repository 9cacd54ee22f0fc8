package scope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserScope() *Memory {
	return NewMemory(map[string]any{
		"user": map[string]any{
			"name": "Ann",
			"tags": []any{"a"},
		},
		"count": 1,
	})
}

func TestMemoryEval(t *testing.T) {
	s := newUserScope()

	v, err := s.Eval("user.name")
	require.NoError(t, err)
	assert.Equal(t, "Ann", v)

	v, err = s.Eval("user.missing")
	require.NoError(t, err)
	assert.Equal(t, Undefined, v)

	v, err = s.Eval("count.deeper")
	require.NoError(t, err)
	assert.Equal(t, Undefined, v)

	_, err = s.Eval("user.name + 1")
	assert.ErrorIs(t, err, ErrUnsupportedExpression)
}

func TestMemorySet(t *testing.T) {
	s := NewMemory(nil)

	require.NoError(t, s.Set("form.fields.email", "a@b.com"))

	v, err := s.Eval("form.fields.email")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", v)

	require.NoError(t, s.Set("count", 2))
	err = s.Set("count.x", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count is int")
}

func TestMemoryWatchFiresOnDigest(t *testing.T) {
	s := newUserScope()

	type call struct{ newValue, oldValue any }

	var calls []call

	s.Watch("user.name", func(n, o any) { calls = append(calls, call{n, o}) })
	assert.Empty(t, calls, "watchers fire on digest, not on registration")

	require.NoError(t, s.Apply(func() error { return nil }))
	require.Len(t, calls, 1)
	assert.Equal(t, call{"Ann", "Ann"}, calls[0])

	require.NoError(t, s.Apply(func() error { return s.Set("user.name", "Bob") }))
	require.Len(t, calls, 2)
	assert.Equal(t, call{"Bob", "Ann"}, calls[1])

	require.NoError(t, s.Apply(func() error { return s.Set("count", 5) }))
	assert.Len(t, calls, 2, "unrelated change must not fire")
}

func TestMemoryWatchIsByReference(t *testing.T) {
	s := newUserScope()

	fired := 0
	s.Watch("user", func(_, _ any) { fired++ })
	require.NoError(t, s.Digest())
	assert.Equal(t, 1, fired)

	require.NoError(t, s.Apply(func() error { return s.Set("user.name", "Bob") }))
	assert.Equal(t, 1, fired, "in-place mutation keeps the container identity")

	require.NoError(t, s.Apply(func() error { return s.Set("user", map[string]any{"name": "Cy"}) }))
	assert.Equal(t, 2, fired)
}

func TestMemoryUnwatch(t *testing.T) {
	s := newUserScope()

	fired := 0
	unwatch := s.Watch("count", func(_, _ any) { fired++ })
	assert.Equal(t, 1, s.WatcherCount())

	unwatch()
	unwatch()
	assert.Equal(t, 0, s.WatcherCount())

	require.NoError(t, s.Digest())
	assert.Equal(t, 0, fired)
}

func TestMemoryWatcherMutationsSettle(t *testing.T) {
	s := NewMemory(map[string]any{"a": 1, "b": 0})

	s.Watch("a", func(n, _ any) {
		_ = s.Apply(func() error { return s.Set("b", n.(int)*10) })
	})

	var seen []any
	s.Watch("b", func(n, _ any) { seen = append(seen, n) })

	require.NoError(t, s.Apply(func() error { return s.Set("a", 2) }))
	assert.Equal(t, []any{20}, seen)
}

func TestMemoryDigestLimit(t *testing.T) {
	s := NewMemory(map[string]any{"n": 0}, WithDigestLimit(3))

	s.Watch("n", func(n, _ any) {
		_ = s.Set("n", n.(int)+1)
	})

	err := s.Digest()
	assert.ErrorIs(t, err, ErrDigestLimit)
}

func TestMemoryApplyReturnsMutationError(t *testing.T) {
	s := NewMemory(nil)
	boom := errors.New("boom")

	err := s.Apply(func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestCall(t *testing.T) {
	var gotThis Scope
	var gotArgs []any

	s := NewMemory(map[string]any{
		"save": Func(func(this Scope, args ...any) (any, error) {
			gotThis = this
			gotArgs = args

			return "saved", nil
		}),
		"plain": 3,
	})

	out, err := Call(s, "save", 1, "two")
	require.NoError(t, err)
	assert.Equal(t, "saved", out)
	assert.Same(t, s, gotThis)
	assert.Equal(t, []any{1, "two"}, gotArgs)

	_, err = Call(s, "plain")
	assert.ErrorIs(t, err, ErrNotCallable)
}

func TestMemoryPaths(t *testing.T) {
	s := newUserScope()
	s.Data()["bad-key"] = 1

	assert.Equal(t, []string{"count", "user", "user.name", "user.tags"}, s.Paths())
	assert.Empty(t, NewMemory(nil).Paths())
}
