package component

import (
	"slices"

	"bindbridge/internal/common"
)

// Object is a reactive container. Maps assigned into an Object are converted
// to Objects so that nested keys stay observable.
type Object struct {
	fields    map[string]any
	observers map[string][]*observer
}

type observer struct {
	fn func(value any)
}

// NewObject converts data into a reactive container.
func NewObject(data map[string]any) *Object {
	o := &Object{
		fields:    make(map[string]any, len(data)),
		observers: map[string][]*observer{},
	}

	for k, v := range data {
		o.fields[k] = reactive(v)
	}

	return o
}

func reactive(v any) any {
	if m, ok := v.(map[string]any); ok {
		return NewObject(m)
	}

	return v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Keys returns the field names in ascending order.
func (o *Object) Keys() []string {
	return common.SortedKeys(o.fields)
}

// Observe calls fn after each change of key. The returned func stops it.
func (o *Object) Observe(key string, fn func(value any)) func() {
	obs := &observer{fn: fn}
	o.observers[key] = append(o.observers[key], obs)

	return func() {
		o.observers[key] = slices.DeleteFunc(o.observers[key], func(x *observer) bool { return x == obs })
	}
}

// Plain converts the container back to nested maps.
func (o *Object) Plain() map[string]any {
	out := make(map[string]any, len(o.fields))
	for k, v := range o.fields {
		if child, ok := v.(*Object); ok {
			out[k] = child.Plain()
			continue
		}

		out[k] = v
	}

	return out
}

func (o *Object) set(key string, value any) {
	prev, existed := o.fields[key]
	value = reactive(value)

	if existed && common.Identical(prev, value) {
		return
	}

	o.fields[key] = value

	for _, obs := range slices.Clone(o.observers[key]) {
		obs.fn(value)
	}
}
