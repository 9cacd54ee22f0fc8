// Package component defines the embedded component-runtime capability the
// synchronizer drives, and Reactive, an in-memory reference runtime.
//
// A runtime constructs instances from initial data and a method table. An
// instance owns a reactive object graph: nested containers must be mutated
// through Instance.Set so that observers of the container are notified.
// Child instances announce user-driven changes with "update:<prop>" events;
// plain writes through Set never emit events.
//
// Reactive is not safe for concurrent use.
package component
