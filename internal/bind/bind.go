package bind

import (
	"fmt"
	"strings"

	"bindbridge/internal/bindingerr"
	"bindbridge/internal/common"
	"bindbridge/internal/component"
	"bindbridge/internal/paths"
	"bindbridge/internal/resolve"
	"bindbridge/internal/scope"
)

// Option configures Bind.
type Option func(*options)

type options struct {
	observers []Observer
}

// WithObserver adds an observer of binding activity. Events are always
// logged through Logger() as well.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observers = append(opts.observers, o)
		}
	}
}

// Binding is a live two-way wiring between a host scope and a component.
type Binding struct {
	decl        *resolve.Declarations
	host        scope.Scope
	instance    component.Instance
	observers   []Observer
	release     []func()
	propagating map[string]int
	closed      bool
}

// Bind validates decl against host, constructs and mounts a component on el,
// then installs the propagation in both directions.
//
// It fails with an undeclared_binding error, before anything is constructed,
// when a declared path or delegate is undefined on host.
func Bind(decl *resolve.Declarations, host scope.Scope, rt component.Runtime, el component.Element, opts ...Option) (*Binding, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Binding{
		decl:        decl,
		host:        host,
		observers:   append([]Observer{LogObserver(Logger())}, o.observers...),
		propagating: map[string]int{},
	}

	if err := b.validate(); err != nil {
		return nil, err
	}

	data, err := b.snapshot()
	if err != nil {
		return nil, err
	}

	inst, err := rt.Construct(component.Options{Data: data, Methods: b.methods()})
	if err != nil {
		return nil, fmt.Errorf("construct component: %w", err)
	}

	if err := inst.Mount(el); err != nil {
		return nil, fmt.Errorf("mount component: %w", err)
	}

	b.instance = inst

	for _, p := range decl.Paths {
		b.watchHost(p)
	}

	for _, prop := range decl.SyncProperties() {
		b.listenSync(prop, decl.Sync[prop])
	}

	return b, nil
}

// Instance returns the bound component instance.
func (b *Binding) Instance() component.Instance {
	return b.instance
}

// Declarations returns the declarations the binding was created from.
func (b *Binding) Declarations() *resolve.Declarations {
	return b.decl
}

// Close removes every host watcher and component listener. It is safe to
// call more than once.
func (b *Binding) Close() {
	if b.closed {
		return
	}

	b.closed = true

	for _, release := range b.release {
		release()
	}

	b.release = nil
	b.emit(Event{Kind: EventTeardown})
}

func (b *Binding) validate() error {
	for _, expr := range append(append([]string{}, b.decl.Paths...), b.decl.Delegates...) {
		v, err := b.host.Eval(expr)
		if err != nil {
			e := bindingerr.Undeclared(expr)
			e.Cause = err

			return e
		}

		if v == scope.Undefined {
			return bindingerr.Undeclared(expr)
		}
	}

	return nil
}

func (b *Binding) snapshot() (map[string]any, error) {
	data := map[string]any{}

	for _, p := range b.decl.Paths {
		if !paths.MustIsRoot(p) {
			continue
		}

		v, err := b.host.Eval(p)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", p, err)
		}

		data[p] = v
	}

	return data, nil
}

func (b *Binding) methods() map[string]component.Method {
	methods := make(map[string]component.Method, len(b.decl.Delegates))

	for _, name := range b.decl.Delegates {
		methods[name] = func(args ...any) error {
			err := b.host.Apply(func() error {
				_, err := scope.Call(b.host, name, args...)
				return err
			})
			if err != nil {
				err = fmt.Errorf("delegate %s: %w", name, err)
			}

			b.emit(Event{Kind: EventDelegateCall, Expr: name, Args: args, Err: err})

			return err
		}
	}

	return methods
}

func (b *Binding) watchHost(p string) {
	unwatch := b.host.Watch(p, func(value, _ any) {
		b.propagating[p]++
		defer func() { b.propagating[p]-- }()

		err := b.pushToComponent(p, value)

		kind := EventHostToComponent
		if err != nil {
			kind = EventSkipped
		}

		b.emit(Event{Kind: kind, Expr: p, Property: p, Value: value, Err: err})
	})

	b.release = append(b.release, unwatch)
}

func (b *Binding) pushToComponent(p string, value any) error {
	isRoot, err := paths.IsRoot(p)
	if err != nil {
		return err
	}

	if isRoot {
		return b.instance.Set(b.instance, p, value)
	}

	parent, err := paths.Parent(p)
	if err != nil {
		return err
	}

	leaf, err := paths.Leaf(p)
	if err != nil {
		return err
	}

	target, ok := b.instance.Get(parent)
	if !ok || target == nil {
		return fmt.Errorf("component has no container at %s", parent)
	}

	return b.instance.Set(target, leaf, value)
}

func (b *Binding) listenSync(prop, hostPath string) {
	event := component.UpdateEvent(prop)

	for _, child := range b.instance.Descendants() {
		off := child.On(event, func(args ...any) {
			value, _ := common.First(args)

			if b.isPropagating(hostPath) {
				b.emit(Event{Kind: EventSuppressed, Expr: hostPath, Property: prop, Value: value})
				return
			}

			err := b.host.Apply(func() error {
				return b.host.Set(hostPath, value)
			})

			b.emit(Event{Kind: EventComponentToHost, Expr: hostPath, Property: prop, Value: value, Err: err})
		})

		b.release = append(b.release, off)
	}
}

func (b *Binding) isPropagating(hostPath string) bool {
	for p, n := range b.propagating {
		if n == 0 {
			continue
		}

		if p == hostPath || strings.HasPrefix(hostPath, p+paths.Separator) {
			return true
		}
	}

	return false
}

func (b *Binding) emit(e Event) {
	for _, o := range b.observers {
		o(e)
	}
}
