package grammar

import "regexp"

var (
	identifierPathRe = regexp.MustCompile(`(?i)^[a-z$_][a-z0-9$_]*(\.[a-z$_][a-z0-9$_]*)*$`)
	oneWayRe         = regexp.MustCompile(`(?i)^(?:v-model|v-html|v-text|v-show|v-class|v-attr|v-style|v-if)(?:\.[a-z0-9]+)*$`)
	bindPrefixRe     = regexp.MustCompile(`(?i)^(?:v-bind)?:[a-z\-]+(?:\.[a-z]+)*$`)
	modelRe          = regexp.MustCompile(`(?i)^v-model$`)
	syncRe           = regexp.MustCompile(`(?i)^(?:v-bind)?:([a-z\-]+)\.sync$`)
	eventRe          = regexp.MustCompile(`(?i)^(?:v-on:|@)[a-z\-]+(?::[a-z0-9\-]+)?(?:\.[a-z0-9\-]+)*`)
	bareCallRe       = regexp.MustCompile(`(?i)^([a-z_$][a-z0-9_$]*)(?:\(\))?$`)
	delegateMarkerRe = regexp.MustCompile(`(?i)^&([a-z$_][a-z0-9$_]*)$`)
)

// IsIdentifierPath reports whether s is a dotted path of identifiers.
func IsIdentifierPath(s string) bool {
	return identifierPathRe.MatchString(s)
}

// IsOneWayDirective reports whether name is a one-way binding directive.
func IsOneWayDirective(name string) bool {
	return oneWayRe.MatchString(name)
}

// IsBindPrefix reports whether name is a ":prop" or "v-bind:prop" attribute.
func IsBindPrefix(name string) bool {
	return bindPrefixRe.MatchString(name)
}

// IsModelBinding reports whether name is the two-way model directive.
func IsModelBinding(name string) bool {
	return modelRe.MatchString(name)
}

// SyncProperty returns the camel-cased component property of a ".sync" bind
// attribute, and false when name is not one.
func SyncProperty(name string) (string, bool) {
	m := syncRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}

	return CamelCase(m[1]), true
}

// IsEventBinding reports whether name is an event listener attribute.
func IsEventBinding(name string) bool {
	return eventRe.MatchString(name)
}

// BareCall returns the identifier of "fn" or "fn()", and false for anything
// else (arguments, member access, expressions).
func BareCall(value string) (string, bool) {
	m := bareCallRe.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// DelegateMarker returns the identifier of an "&fn" export token.
func DelegateMarker(token string) (string, bool) {
	m := delegateMarkerRe.FindStringSubmatch(token)
	if m == nil {
		return "", false
	}

	return m[1], true
}
