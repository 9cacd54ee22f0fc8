package paths

import (
	"strings"

	"bindbridge/internal/bindingerr"
)

// Separator joins path segments.
const Separator = "."

// Split returns the segments of path.
func Split(path string) ([]string, error) {
	if path == "" {
		return nil, bindingerr.InvalidPath(path)
	}

	return strings.Split(path, Separator), nil
}

// Combine joins segments back into a path. Combine of no segments is "".
func Combine(segments []string) string {
	return strings.Join(segments, Separator)
}

// Join appends segment to path. An empty path yields segment itself.
func Join(path, segment string) string {
	if path == "" {
		return segment
	}

	return path + Separator + segment
}

// Parent returns path without its last segment, or "" for a root path.
func Parent(path string) (string, error) {
	parts, err := Split(path)
	if err != nil {
		return "", err
	}

	return Combine(parts[:len(parts)-1]), nil
}

// Parents returns every strict ancestor of path, nearest first.
// "a.b.c" yields ["a.b", "a"].
func Parents(path string) ([]string, error) {
	parts, err := Split(path)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(parts)-1)
	for i := len(parts) - 1; i > 0; i-- {
		result = append(result, Combine(parts[:i]))
	}

	return result, nil
}

// Leaf returns the last segment of path.
func Leaf(path string) (string, error) {
	parts, err := Split(path)
	if err != nil {
		return "", err
	}

	return parts[len(parts)-1], nil
}

// Root returns the first segment of path.
func Root(path string) (string, error) {
	parts, err := Split(path)
	if err != nil {
		return "", err
	}

	return parts[0], nil
}

// IsRoot reports whether path has exactly one segment.
func IsRoot(path string) (bool, error) {
	if path == "" {
		return false, bindingerr.InvalidPath(path)
	}

	return !strings.Contains(path, Separator), nil
}

// MustIsRoot is IsRoot for paths already known to be well formed. It panics
// on an empty path.
func MustIsRoot(path string) bool {
	ok, err := IsRoot(path)
	if err != nil {
		panic(err)
	}

	return ok
}
