package element

import (
	"fmt"
)

// Attrs is the attribute mapping of a markup element.
// Attribute names are unique, values are kept as strings.
type Attrs map[string]string

func (a *Attrs) String() string {
	return fmt.Sprintf("%v", (map[string]string)(*a))
}

// Element is a single parsed markup element: a tag name, its
// attributes and its child elements in document order.
type Element struct {
	Name     string
	Attrs    Attrs
	Children []Element
}

// Descendants returns all elements nested below e in document order,
// e itself excluded.
func (e *Element) Descendants() []Element {
	if len(e.Children) == 0 {
		return nil
	}
	var result []Element
	for i := range e.Children {
		result = append(result, e.Children[i])
		result = append(result, e.Children[i].Descendants()...)
	}
	return result
}
