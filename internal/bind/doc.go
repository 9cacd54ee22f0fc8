// Package bind wires resolved binding declarations to a live host scope and
// a live component instance.
//
// Bind performs, in order:
//
//  1. Existence validation: every declared path and delegate must evaluate
//     to something other than scope.Undefined.
//  2. Initial snapshot: root paths seed the component's initial data.
//  3. Method table: each delegate becomes a component method that calls the
//     host function inside host.Apply, with this bound to the host scope.
//  4. Construction and mount through the component runtime.
//  5. Host to component: one host watcher per declared path, installed in
//     sorted order. Nested paths are written through Instance.Set on the
//     parent container, never by replacing the root property.
//  6. Component to host: for every sync property, an "update:<prop>"
//     listener on each descendant writes the payload back inside host.Apply.
//
// Steps 1 to 4 either succeed or leave nothing attached. Binding.Close
// releases every watcher and listener.
//
// A write-back whose host path (or one of its ancestors) is currently being
// propagated to the component is dropped, so a runtime that echoes plain
// writes as update events cannot start a feedback loop.
package bind
