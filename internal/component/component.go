package component

import (
	"errors"
	"strings"
)

// UpdateEventPrefix prefixes the event a child emits to request a two-way
// property update.
const UpdateEventPrefix = "update:"

var (
	// ErrUnknownMethod is returned by Call for a name not in the method table.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrInvalidTarget is returned by Set when target is not a container of
	// the instance.
	ErrInvalidTarget = errors.New("invalid set target")
	// ErrAlreadyMounted is returned when mounting twice.
	ErrAlreadyMounted = errors.New("already mounted")
)

// UpdateEvent returns the event name for a two-way update of prop.
func UpdateEvent(prop string) string {
	return UpdateEventPrefix + prop
}

// UpdatedProperty returns prop for an "update:<prop>" event name.
func UpdatedProperty(event string) (string, bool) {
	prop, ok := strings.CutPrefix(event, UpdateEventPrefix)
	return prop, ok && prop != ""
}

// Element is the host node an instance mounts on.
type Element interface {
	Tag() string
}

// Method is an entry of an instance's method table.
type Method func(args ...any) error

// Handler receives event arguments.
type Handler func(args ...any)

// Options are the construction inputs of an instance.
type Options struct {
	Data    map[string]any
	Methods map[string]Method
}

// Runtime constructs component instances.
type Runtime interface {
	Construct(opts Options) (Instance, error)
}

// Instance is a live component.
type Instance interface {
	// Mount attaches the instance to el and creates its children.
	Mount(el Element) error
	// Get resolves a dotted path from the instance's data.
	Get(path string) (any, bool)
	// Set assigns target[key] = value through the reactivity system. target
	// is the instance itself or a container obtained from Get.
	Set(target any, key string, value any) error
	// Descendants returns the child instances created on mount.
	Descendants() []Instance
	// On subscribes h to event; the returned func unsubscribes.
	On(event string, h Handler) (off func())
	// Emit delivers event to this instance's subscribers.
	Emit(event string, args ...any)
	// Call invokes an entry of the method table.
	Call(method string, args ...any) error
}
