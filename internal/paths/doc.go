// Package paths provides pure helpers over dot-delimited property paths such
// as "user.profile.name".
//
// A path has one or more segments. Every path except a root path has exactly
// one parent, obtained by dropping its last segment, and the parent chain
// ends at a single root segment. Parent of a root path is the empty string,
// which callers treat as "no parent".
//
// Every operation fails with an invalid_path error when given an empty path.
package paths
