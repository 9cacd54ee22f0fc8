package scope

import (
	"errors"
	"fmt"
	"slices"

	"bindbridge/internal/common"
	"bindbridge/internal/grammar"
	"bindbridge/internal/paths"
)

// DefaultDigestLimit is the number of dirty digest rounds tolerated before
// Apply gives up.
const DefaultDigestLimit = 10

// Memory is a reference host scope backed by nested map[string]any values.
type Memory struct {
	root        map[string]any
	watchers    []*watcher
	digestLimit int
	depth       int
}

type watcher struct {
	expr        string
	fn          WatchFunc
	last        any
	initialized bool
	removed     bool
}

// MemoryOption configures a Memory scope.
type MemoryOption func(*Memory)

// WithDigestLimit overrides DefaultDigestLimit.
func WithDigestLimit(n int) MemoryOption {
	return func(m *Memory) {
		if n > 0 {
			m.digestLimit = n
		}
	}
}

// NewMemory creates a scope holding data. data is used as is, not copied.
func NewMemory(data map[string]any, opts ...MemoryOption) *Memory {
	if data == nil {
		data = map[string]any{}
	}

	m := &Memory{root: data, digestLimit: DefaultDigestLimit}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Data returns the root of the scope tree.
func (m *Memory) Data() map[string]any {
	return m.root
}

// Paths lists every identifier path reachable in the scope tree, sorted.
func (m *Memory) Paths() []string {
	var out []string

	var walk func(prefix string, node map[string]any)
	walk = func(prefix string, node map[string]any) {
		for _, k := range common.SortedKeys(node) {
			p := paths.Join(prefix, k)
			if !grammar.IsIdentifierPath(p) {
				continue
			}

			out = append(out, p)

			if child, ok := node[k].(map[string]any); ok {
				walk(p, child)
			}
		}
	}
	walk("", m.root)

	return out
}

// Eval resolves an identifier path.
func (m *Memory) Eval(expr string) (any, error) {
	if !grammar.IsIdentifierPath(expr) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExpression, expr)
	}

	segments, err := paths.Split(expr)
	if err != nil {
		return nil, err
	}

	var current any = m.root
	for _, seg := range segments {
		obj, ok := current.(map[string]any)
		if !ok {
			return Undefined, nil
		}

		current, ok = obj[seg]
		if !ok {
			return Undefined, nil
		}
	}

	return current, nil
}

// Set assigns value at path, creating missing intermediate maps.
func (m *Memory) Set(path string, value any) error {
	if !grammar.IsIdentifierPath(path) {
		return fmt.Errorf("%w: %q", ErrUnsupportedExpression, path)
	}

	segments, err := paths.Split(path)
	if err != nil {
		return err
	}

	current := m.root
	for i, seg := range segments[:len(segments)-1] {
		next, ok := current[seg]
		if !ok || next == nil {
			child := map[string]any{}
			current[seg] = child
			current = child

			continue
		}

		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("set %s: %s is %T, not an object", path, paths.Combine(segments[:i+1]), next)
		}

		current = child
	}

	current[segments[len(segments)-1]] = value

	return nil
}

// Watch registers fn for expr. It first fires on the next digest.
func (m *Memory) Watch(expr string, fn WatchFunc) func() {
	w := &watcher{expr: expr, fn: fn}
	m.watchers = append(m.watchers, w)

	return func() {
		if w.removed {
			return
		}

		w.removed = true
		m.watchers = slices.DeleteFunc(m.watchers, func(x *watcher) bool { return x == w })
	}
}

// WatcherCount returns the number of registered watchers.
func (m *Memory) WatcherCount() int {
	return len(m.watchers)
}

// Apply runs fn and digests. Nested calls run fn and leave the digest to the
// outermost Apply.
func (m *Memory) Apply(fn func() error) error {
	m.depth++
	err := fn()
	m.depth--

	if m.depth > 0 {
		return err
	}

	if digestErr := m.Digest(); digestErr != nil {
		return errors.Join(err, digestErr)
	}

	return err
}

// Digest fires every watcher whose value changed until the scope is stable.
func (m *Memory) Digest() error {
	m.depth++
	defer func() { m.depth-- }()

	for range m.digestLimit {
		dirty := false

		for _, w := range slices.Clone(m.watchers) {
			if w.removed {
				continue
			}

			value, err := m.Eval(w.expr)
			if err != nil {
				value = Undefined
			}

			if w.initialized && common.Identical(value, w.last) {
				continue
			}

			old := w.last
			if !w.initialized {
				old = value
				w.initialized = true
			}

			w.last = value
			dirty = true

			w.fn(value, old)
		}

		if !dirty {
			return nil
		}
	}

	return fmt.Errorf("%w: %d rounds", ErrDigestLimit, m.digestLimit)
}
