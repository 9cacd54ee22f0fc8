package bind

import (
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

//go:generate go tool stringer -type=EventKind -trimprefix=Event -output=eventkind_string.go

// EventKind classifies binding activity.
type EventKind int

const (
	// EventDelegateCall: the component invoked a host delegate.
	EventDelegateCall EventKind = iota
	// EventHostToComponent: a host change was written into the component.
	EventHostToComponent
	// EventComponentToHost: a sync update was written back to the host.
	EventComponentToHost
	// EventSuppressed: a sync update was dropped by the re-entrancy guard.
	EventSuppressed
	// EventSkipped: a host change had no container to land in, or failed.
	EventSkipped
	// EventTeardown: the binding was closed.
	EventTeardown
)

// Event describes one unit of binding activity.
type Event struct {
	Kind EventKind
	// Expr is the host expression involved.
	Expr string
	// Property is the component property involved, if any.
	Property string
	// Value is the propagated value.
	Value any
	// Args are delegate call arguments.
	Args []any
	// Err is set when the propagation failed.
	Err error
}

// Observer receives binding activity. It is called synchronously from the
// watcher or event callback that produced the event.
type Observer func(Event)

var valueFormat = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// LogObserver returns an Observer that writes events to l at debug level,
// or warn level when the event carries an error.
func LogObserver(l *zap.Logger) Observer {
	return func(e Event) {
		fields := []zap.Field{
			zap.String("kind", e.Kind.String()),
			zap.String("expr", e.Expr),
		}

		if e.Property != "" {
			fields = append(fields, zap.String("property", e.Property))
		}

		switch e.Kind {
		case EventDelegateCall:
			fields = append(fields, zap.String("args", valueFormat.Sprint(e.Args)))
		case EventTeardown:
		default:
			fields = append(fields, zap.String("value", valueFormat.Sprint(e.Value)))
		}

		if e.Err != nil {
			l.Warn("binding", append(fields, zap.Error(e.Err))...)
			return
		}

		l.Debug("binding", fields...)
	}
}
