// Package osmxml reads OSM XML extracts as a stream of generic
// elements.
package osmxml

import (
	"compress/gzip"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/osmtools/osmwrangle/element"
)

// Parser is a stream based parser for OSM XML files (.osm).
// Parsing is handled in a background goroutine.
type Parser struct {
	reader  io.Reader
	elems   chan element.Element
	errc    chan error
	running bool
	onClose func() error
}

// Next returns the next top level element of the .osm file.
// Returns io.EOF and an empty Element if the parser reached the end
// of the file.
func (p *Parser) Next() (element.Element, error) {
	if !p.running {
		p.running = true
		go parse(p.reader, p.elems, p.errc)
	}
	select {
	case elem, ok := <-p.elems:
		if !ok {
			p.elems = nil
		} else {
			return elem, nil
		}
	case err, ok := <-p.errc:
		if !ok {
			p.errc = nil
		} else {
			if p.onClose != nil {
				p.onClose()
				p.onClose = nil
			}
			return element.Element{}, err
		}
	}
	if p.onClose != nil {
		err := p.onClose()
		p.onClose = nil
		return element.Element{}, err
	}
	return element.Element{}, nil
}

// NewParser returns a parser from an io.Reader
func NewParser(r io.Reader) *Parser {
	elems := make(chan element.Element)
	errc := make(chan error)
	return &Parser{reader: r, elems: elems, errc: errc}
}

// NewOsmFileParser returns a parser from a .osm or .osm.gz file.
func NewOsmFileParser(fname string) (*Parser, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}

	var reader io.Reader = file
	if strings.HasSuffix(fname, ".gz") {
		reader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, err
		}
	}

	elems := make(chan element.Element)
	errc := make(chan error)
	return &Parser{reader: reader, elems: elems, errc: errc, onClose: file.Close}, nil
}

func parse(reader io.Reader, elems chan element.Element, errc chan error) {
	defer close(elems)
	defer close(errc)

	decoder := xml.NewDecoder(reader)

	// stack of open elements below the osm root
	var stack []element.Element

	for {
		token, err := decoder.Token()
		if err != nil {
			errc <- err
			return
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local == "osm" && len(stack) == 0 {
				// document wrapper, not an element of its own
				continue
			}
			elem := element.Element{Name: tok.Name.Local}
			if len(tok.Attr) > 0 {
				elem.Attrs = make(element.Attrs, len(tok.Attr))
				for _, attr := range tok.Attr {
					elem.Attrs[attr.Name.Local] = attr.Value
				}
			}
			stack = append(stack, elem)
		case xml.EndElement:
			if len(stack) == 0 {
				// closing osm wrapper
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				elems <- top
			} else {
				parent := &stack[len(stack)-1]
				parent.Children = append(parent.Children, top)
			}
		}
	}
}
