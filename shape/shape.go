// Package shape turns parsed OSM XML elements into nested documents
// for document store ingestion.
package shape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osmtools/osmwrangle/element"
)

// ConversionError is returned when a position attribute carries a non
// numeric value. Position data is required to be numeric, the caller
// decides whether to abort the run or skip the element.
type ConversionError struct {
	Attr  string
	Value string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("attribute %s=%q is not numeric: %s", e.Attr, e.Value, e.Err)
}

// MissingAttrError is returned for malformed child elements, e.g. a
// tag without k or v, or an nd without ref.
type MissingAttrError struct {
	Elem string
	Attr string
}

func (e *MissingAttrError) Error() string {
	return fmt.Sprintf("%s element without %s attribute", e.Elem, e.Attr)
}

// Shaper classifies elements according to a compiled Schema. A Shaper
// is immutable after NewShaper and safe for concurrent use.
type Shaper struct {
	types        map[string]struct{}
	created      map[string]struct{}
	latKey       string
	lonKey       string
	addrPrefix   string // with trailing colon
	compound     map[string]struct{}
	problemChars string
}

// NewShaper compiles schema into lookup sets.
func NewShaper(schema *Schema) (*Shaper, error) {
	if schema.LatitudeKey == "" || schema.LongitudeKey == "" {
		return nil, fmt.Errorf("schema without position keys")
	}
	if schema.AddressPrefix == "" {
		return nil, fmt.Errorf("schema without address prefix")
	}
	s := &Shaper{
		types:        make(map[string]struct{}),
		created:      make(map[string]struct{}),
		latKey:       schema.LatitudeKey,
		lonKey:       schema.LongitudeKey,
		addrPrefix:   schema.AddressPrefix + ":",
		compound:     make(map[string]struct{}),
		problemChars: schema.ProblemChars,
	}
	for _, name := range schema.ElementTypes {
		s.types[name] = struct{}{}
	}
	for _, name := range schema.CreatedKeys {
		s.created[name] = struct{}{}
	}
	for _, segment := range schema.CompoundSegments {
		s.compound[segment] = struct{}{}
	}
	return s, nil
}

// Shape builds the document for a single element. Elements with an
// unhandled tag name yield a nil document and no error. Shape does
// not modify elem.
func (s *Shaper) Shape(elem *element.Element) (*Document, error) {
	if _, ok := s.types[elem.Name]; !ok {
		return nil, nil
	}

	doc := &Document{Type: elem.Name}

	for name, value := range elem.Attrs {
		if err := s.classifyAttr(doc, name, value); err != nil {
			return nil, err
		}
	}

	for _, child := range elem.Descendants() {
		switch child.Name {
		case "tag":
			if err := s.classifyTag(doc, &child); err != nil {
				return nil, err
			}
		case "nd":
			if err := s.collectRef(doc, &child); err != nil {
				return nil, err
			}
		}
	}

	return doc, nil
}

// classifyAttr stores a single element attribute: created block keys
// and position keys go into their nested fields, everything else
// becomes a top level key.
func (s *Shaper) classifyAttr(doc *Document, name, value string) error {
	if _, ok := s.created[name]; ok {
		doc.setCreated(name, value)
		return nil
	}
	if name == s.latKey || name == s.lonKey {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &ConversionError{Attr: name, Value: value, Err: err}
		}
		if doc.Pos == nil {
			doc.Pos = new([2]float64)
		}
		// latitude is always first, independent of attribute order
		if name == s.latKey {
			doc.Pos[0] = v
		} else {
			doc.Pos[1] = v
		}
		return nil
	}
	doc.setAttr(name, value)
	return nil
}

// classifyTag stores a single tag child. Keys with problematic
// characters and compound subkeys (addr:street:type etc.) are
// dropped, addr: keys go into the address block.
func (s *Shaper) classifyTag(doc *Document, child *element.Element) error {
	k, ok := child.Attrs["k"]
	if !ok {
		return &MissingAttrError{Elem: "tag", Attr: "k"}
	}
	v, ok := child.Attrs["v"]
	if !ok {
		return &MissingAttrError{Elem: "tag", Attr: "v"}
	}

	if s.hasProblemChars(k) || s.isCompoundKey(k) {
		return nil
	}

	if strings.HasPrefix(k, s.addrPrefix) {
		// the second segment only: addr:city:simc files under "city"
		subkey := strings.Split(k, ":")[1]
		doc.setAddress(subkey, v)
		return nil
	}
	doc.setAttr(k, v)
	return nil
}

// collectRef appends the ref of an nd child, duplicates included.
func (s *Shaper) collectRef(doc *Document, child *element.Element) error {
	ref, ok := child.Attrs["ref"]
	if !ok {
		return &MissingAttrError{Elem: "nd", Attr: "ref"}
	}
	doc.NodeRefs = append(doc.NodeRefs, ref)
	return nil
}

func (s *Shaper) hasProblemChars(key string) bool {
	return strings.ContainsAny(key, s.problemChars)
}

// isCompoundKey reports whether key has more than two colon separated
// segments with a suppressed second segment. addr:street:type is
// compound, addr:street is not.
func (s *Shaper) isCompoundKey(key string) bool {
	segments := strings.Split(key, ":")
	if len(segments) <= 2 {
		return false
	}
	_, ok := s.compound[segments[1]]
	return ok
}
