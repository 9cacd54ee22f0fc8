// Package resolve turns a raw attribute mapping into binding declarations.
//
// Resolution runs three independent passes over the same input:
//
//  1. Property discovery: paths from the export list and from one-way
//     binding attributes whose value is a plain identifier path, closed over
//     their ancestors, deduplicated and sorted.
//  2. Delegate discovery: "&name" export tokens and event attributes whose
//     value is a bare call, deduplicated in first-seen order.
//  3. Sync discovery: v-model (component property "value") and ".sync"
//     bind attributes mapped to their host path. A value that is not an
//     identifier path aborts resolution.
//
// Attributes are always visited in ascending name order so that every
// result, including which attribute wins a sync key collision, is
// reproducible.
package resolve
