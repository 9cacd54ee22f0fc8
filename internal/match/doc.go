// Package match ranks host-scope paths by edit distance so that an
// undeclared binding can be reported together with the closest declared
// path.
//
// Key functions:
//   - Levenshtein: edit distance between two strings
//   - Similarity: distance normalized into a 0..1 score
//   - Rank: candidates ordered by similarity to a target path
//   - Closest: best candidate above a threshold
package match
