package template

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"bindbridge/internal/resolve"
)

// BindAttribute marks an element as bound.
const BindAttribute = "vue"

// Element is a bound element found in a template.
type Element struct {
	// Name is the lower-cased tag name.
	Name string
	// ID is the element's id attribute, if any.
	ID string
	// Index is the position of the element among bound elements.
	Index int
	// Attributes holds every attribute verbatim, keyed by lower-cased name.
	Attributes map[string]string
}

// Tag implements component.Element.
func (e Element) Tag() string {
	return e.Name
}

// Label names the element for diagnostics: its id, or tag and index.
func (e Element) Label() string {
	if e.ID != "" {
		return e.ID
	}

	return fmt.Sprintf("%s#%d", e.Name, e.Index)
}

// Expose returns the export list attribute.
func (e Element) Expose() string {
	return e.Attributes[resolve.ExposeAttribute]
}

// Input returns the resolver input for the element.
func (e Element) Input() resolve.Input {
	return resolve.Input{Attributes: e.Attributes, Expose: e.Expose()}
}

// Scan parses an HTML document or fragment and returns its bound elements in
// document order.
func Scan(r io.Reader) ([]Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var found []Element

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasAttr(n, BindAttribute) {
			found = append(found, newElement(n, len(found)))
			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	return found, nil
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}

	return false
}

func newElement(n *html.Node, index int) Element {
	el := Element{
		Name:       n.Data,
		Index:      index,
		Attributes: make(map[string]string, len(n.Attr)),
	}

	for _, a := range n.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}

		el.Attributes[key] = a.Val

		if key == "id" {
			el.ID = a.Val
		}
	}

	return el
}
