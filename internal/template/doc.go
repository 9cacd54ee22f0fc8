// Package template extracts bound elements from HTML templates.
//
// An element is bound when it carries the "vue" attribute. Its attributes
// form the raw attribute mapping handed to the resolver; "vue-expose" holds
// the export list. Bound elements are terminal: elements nested inside one
// belong to the component template and are not reported.
package template
