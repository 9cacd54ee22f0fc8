// Package scope defines the host-scope capability the synchronizer binds to,
// and Memory, an in-memory reference host.
//
// A host scope is a tree-structured, path-addressed store with change
// notification. It evaluates expressions, watches them, and commits
// mutations transactionally through Apply. Watch callbacks fire from the
// host's digest loop, never concurrently.
//
// Memory evaluates identifier paths only. Values stored as Func are callable
// delegates. It is not safe for concurrent use; like any UI scope, all access
// must happen on one goroutine.
package scope
