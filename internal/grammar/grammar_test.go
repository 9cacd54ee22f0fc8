package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdentifierPath(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"user", true},
		{"user.profile.name", true},
		{"$scope", true},
		{"_private.$x1", true},
		{"User.Name", true},

		{"", false},
		{"123abc", false},
		{"user name", false},
		{"user..name", false},
		{".user", false},
		{"user.", false},
		{"user.1st", false},
		{"fn()", false},
		{"a + b", false},
		{"items[0]", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsIdentifierPath(tt.input))
		})
	}
}

func TestIsOneWayDirective(t *testing.T) {
	for _, name := range []string{"v-model", "v-html", "v-text", "v-show", "v-class", "v-attr", "v-style", "v-if", "v-model.lazy", "v-model.trim.number", "V-TEXT"} {
		assert.True(t, IsOneWayDirective(name), name)
	}

	for _, name := range []string{"v-for", "v-on:click", ":title", "v-model.", "v-modelx", "x-v-if"} {
		assert.False(t, IsOneWayDirective(name), name)
	}
}

func TestIsBindPrefix(t *testing.T) {
	for _, name := range []string{":title", "v-bind:title", ":page-title", ":title.sync", ":title.prop.camel"} {
		assert.True(t, IsBindPrefix(name), name)
	}

	for _, name := range []string{"title", "v-bind", "::title", ":title.", ":title1", "v-bind-title"} {
		assert.False(t, IsBindPrefix(name), name)
	}
}

func TestIsModelBinding(t *testing.T) {
	assert.True(t, IsModelBinding("v-model"))
	assert.True(t, IsModelBinding("V-Model"))
	assert.False(t, IsModelBinding("v-model.lazy"))
	assert.False(t, IsModelBinding(":value"))
}

func TestSyncProperty(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{":title.sync", "title", true},
		{"v-bind:title.sync", "title", true},
		{":page-title.sync", "pageTitle", true},
		{":is-open-now.sync", "isOpenNow", true},

		{":title", "", false},
		{":title.syn", "", false},
		{":title.sync.lazy", "", false},
		{"v-model", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prop, ok := SyncProperty(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, prop)
		})
	}
}

func TestIsEventBinding(t *testing.T) {
	for _, name := range []string{"@click", "v-on:click", "@click.prevent", "@update:value", "v-on:key-up.enter.stop"} {
		assert.True(t, IsEventBinding(name), name)
	}

	for _, name := range []string{"click", "on:click", ":click", "v-on"} {
		assert.False(t, IsEventBinding(name), name)
	}
}

func TestBareCall(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"save", "save", true},
		{"save()", "save", true},
		{"$emit", "$emit", true},

		{"save(1)", "", false},
		{"user.save()", "", false},
		{"count++", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, ok := BareCall(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestDelegateMarker(t *testing.T) {
	id, ok := DelegateMarker("&save")
	assert.True(t, ok)
	assert.Equal(t, "save", id)

	for _, tok := range []string{"save", "&", "&user.save", "&1x", "&&save"} {
		_, ok := DelegateMarker(tok)
		assert.False(t, ok, tok)
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"title", "title"},
		{"page-title", "pageTitle"},
		{"is-open-now", "isOpenNow"},
		{"Value", "value"},
		{"a--b", "aB"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CamelCase(tt.input))
		})
	}
}
