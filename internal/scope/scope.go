package scope

import "errors"

// Undefined is returned by Eval when an expression does not resolve.
var Undefined any = undefined{}

type undefined struct{}

func (undefined) String() string { return "undefined" }

var (
	// ErrNotCallable is returned when a delegate expression is not a Func.
	ErrNotCallable = errors.New("expression is not callable")
	// ErrUnsupportedExpression is returned by hosts that cannot evaluate expr.
	ErrUnsupportedExpression = errors.New("unsupported expression")
	// ErrDigestLimit is returned when watchers keep changing the scope.
	ErrDigestLimit = errors.New("digest iterations exceeded")
)

// WatchFunc receives the new and previous value of a watched expression.
// On the first call both are the current value.
type WatchFunc func(newValue, oldValue any)

// Func is a host-scope callable. this is the scope the call is bound to.
type Func func(this Scope, args ...any) (any, error)

// Scope is the host capability consumed by the synchronizer.
type Scope interface {
	// Eval evaluates expr. It returns Undefined when expr does not resolve.
	Eval(expr string) (any, error)
	// Watch calls fn whenever expr changes. The returned func removes the
	// watcher.
	Watch(expr string, fn WatchFunc) (unwatch func())
	// Apply runs fn as a transactional mutation, then lets watchers observe
	// the result.
	Apply(fn func() error) error
	// Set assigns value at path, creating intermediate containers.
	Set(path string, value any) error
}

// Call evaluates expr on s and invokes it with this bound to s.
func Call(s Scope, expr string, args ...any) (any, error) {
	v, err := s.Eval(expr)
	if err != nil {
		return nil, err
	}

	fn, ok := v.(Func)
	if !ok {
		return nil, ErrNotCallable
	}

	return fn(s, args...)
}
