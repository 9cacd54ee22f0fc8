package component

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ChildDefinition describes a child component created when its parent
// mounts. Setup runs once on the new child, e.g. to wire its own events.
type ChildDefinition struct {
	Name  string
	Data  map[string]any
	Setup func(child *Component)
}

// Reactive is a reference Runtime whose instances keep their data in
// Objects.
type Reactive struct {
	Children []ChildDefinition
}

// NewReactive creates a runtime that gives every mounted root the listed
// children.
func NewReactive(children ...ChildDefinition) *Reactive {
	return &Reactive{Children: children}
}

// Construct implements Runtime.
func (r *Reactive) Construct(opts Options) (Instance, error) {
	return newComponent("root", opts, r.Children), nil
}

// Component is an instance created by Reactive.
type Component struct {
	name     string
	data     *Object
	methods  map[string]Method
	handlers map[string][]*handlerEntry
	defs     []ChildDefinition
	children []*Component
	element  Element
}

type handlerEntry struct {
	h Handler
}

func newComponent(name string, opts Options, defs []ChildDefinition) *Component {
	return &Component{
		name:     name,
		data:     NewObject(opts.Data),
		methods:  maps.Clone(opts.Methods),
		handlers: map[string][]*handlerEntry{},
		defs:     defs,
	}
}

// Name returns the component name.
func (c *Component) Name() string {
	return c.name
}

// Data returns the root data container.
func (c *Component) Data() *Object {
	return c.data
}

// Element returns the mount element, nil before Mount.
func (c *Component) Element() Element {
	return c.element
}

// MethodNames returns the method table keys in ascending order.
func (c *Component) MethodNames() []string {
	return slices.Sorted(maps.Keys(c.methods))
}

// Mount implements Instance.
func (c *Component) Mount(el Element) error {
	if c.element != nil {
		return fmt.Errorf("mount %s on <%s>: %w", c.name, el.Tag(), ErrAlreadyMounted)
	}

	c.element = el

	for _, def := range c.defs {
		child := newComponent(def.Name, Options{Data: def.Data}, nil)
		child.element = el
		c.children = append(c.children, child)

		if def.Setup != nil {
			def.Setup(child)
		}
	}

	return nil
}

// Get implements Instance.
func (c *Component) Get(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var current any = c.data
	for seg := range strings.SplitSeq(path, ".") {
		obj, ok := current.(*Object)
		if !ok {
			return nil, false
		}

		current, ok = obj.Get(seg)
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Set implements Instance.
func (c *Component) Set(target any, key string, value any) error {
	switch t := target.(type) {
	case *Component:
		if t != c {
			return fmt.Errorf("%w: foreign component %s", ErrInvalidTarget, t.name)
		}

		c.data.set(key, value)
	case *Object:
		t.set(key, value)
	default:
		return fmt.Errorf("%w: %T", ErrInvalidTarget, target)
	}

	return nil
}

// Descendants implements Instance.
func (c *Component) Descendants() []Instance {
	out := make([]Instance, len(c.children))
	for i, child := range c.children {
		out[i] = child
	}

	return out
}

// On implements Instance.
func (c *Component) On(event string, h Handler) func() {
	entry := &handlerEntry{h: h}
	c.handlers[event] = append(c.handlers[event], entry)

	return func() {
		c.handlers[event] = slices.DeleteFunc(c.handlers[event], func(x *handlerEntry) bool { return x == entry })
	}
}

// ListenerCount returns the number of handlers subscribed to event.
func (c *Component) ListenerCount(event string) int {
	return len(c.handlers[event])
}

// Emit implements Instance.
func (c *Component) Emit(event string, args ...any) {
	for _, entry := range slices.Clone(c.handlers[event]) {
		entry.h(args...)
	}
}

// Call implements Instance.
func (c *Component) Call(method string, args ...any) error {
	m, ok := c.methods[method]
	if !ok {
		return fmt.Errorf("%s.%s: %w", c.name, method, ErrUnknownMethod)
	}

	return m(args...)
}
