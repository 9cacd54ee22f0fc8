// Package diagnostic provides structured, non-fatal findings produced while
// resolving binding declarations and loading declaration files.
//
// Key capabilities:
//   - Export-list tokens that match neither the path nor the delegate grammar
//   - Attribute values skipped because they are expressions, not paths
//   - Sync keys overwritten by a later attribute
//   - Declaration file problems (duplicate or empty binding names)
package diagnostic
