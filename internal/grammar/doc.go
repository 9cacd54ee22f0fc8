// Package grammar holds the named predicates used to recognise binding
// declarations in attribute names and values.
//
// Each grammar is a separate predicate so it can be tested and extended on
// its own:
//
//   - IsIdentifierPath: "user.profile.name", "$ctx._id"
//   - IsOneWayDirective: v-model, v-html, v-text, v-show, v-class, v-attr,
//     v-style, v-if, with optional dotted modifiers
//   - IsBindPrefix: ":name" or "v-bind:name", with optional modifiers
//   - IsModelBinding: exactly "v-model"
//   - SyncProperty: ":name.sync" / "v-bind:name.sync", yielding the
//     camel-cased component property
//   - IsEventBinding: "@name" / "v-on:name", optional ":namespace" and
//     modifiers
//   - BareCall: "fn" or "fn()", yielding "fn"
//   - DelegateMarker: "&fn", yielding "fn"
//
// All grammars are case-insensitive.
package grammar
