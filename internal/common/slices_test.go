package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Unique([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, Unique([]string(nil)))
}

func TestSortedUnique(t *testing.T) {
	in := []string{"user.name", "user", "user.name", "page"}
	assert.Equal(t, []string{"page", "user", "user.name"}, SortedUnique(in))
	assert.Equal(t, []string{"user.name", "user", "user.name", "page"}, in, "input must not be mutated")
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
}

func TestFirst(t *testing.T) {
	v, ok := First([]int{4, 5})
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = First([]int{})
	assert.False(t, ok)
	assert.True(t, IsEmpty([]int{}))
}
