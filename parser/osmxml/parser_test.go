package osmxml

import (
	"io"
	"strings"
	"testing"

	"github.com/osmtools/osmwrangle/element"
)

const testDoc = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="Osmosis 0.43.1">
  <bounds minlat="41.9704500" minlon="-87.6928300" maxlat="41.9758200" maxlon="-87.6894800"/>
  <node id="261114295" visible="true" lat="41.9730791" lon="-87.6866303"/>
  <node id="2406124091" lat="41.9757030" lon="-87.6921867">
    <tag k="amenity" v="restaurant"/>
    <tag k="name" v="La Cabana De Don Luis"/>
  </node>
  <way id="209809850" visible="true">
    <nd ref="2199822281"/>
    <nd ref="2199822390"/>
    <tag k="building" v="yes"/>
  </way>
</osm>
`

func collect(t *testing.T, p *Parser) []element.Element {
	t.Helper()
	var elems []element.Element
	for {
		elem, err := p.Next()
		if err == io.EOF {
			return elems
		}
		if err != nil {
			t.Fatal(err)
		}
		elems = append(elems, elem)
	}
}

func TestParse(t *testing.T) {
	elems := collect(t, NewParser(strings.NewReader(testDoc)))

	if len(elems) != 4 {
		t.Fatal("expected 4 elements, got", len(elems))
	}

	names := []string{"bounds", "node", "node", "way"}
	for i, name := range names {
		if elems[i].Name != name {
			t.Errorf("element %d is %s, expected %s", i, elems[i].Name, name)
		}
	}

	node := elems[1]
	if node.Attrs["id"] != "261114295" || node.Attrs["lat"] != "41.9730791" {
		t.Error("node attributes not parsed", node.Attrs)
	}
	if len(node.Children) != 0 {
		t.Error("self closing node has children", node.Children)
	}

	tagged := elems[2]
	if len(tagged.Children) != 2 {
		t.Fatal("expected 2 tag children, got", len(tagged.Children))
	}
	if tagged.Children[0].Attrs["k"] != "amenity" || tagged.Children[0].Attrs["v"] != "restaurant" {
		t.Error("tag child not parsed", tagged.Children[0])
	}

	way := elems[3]
	childNames := []string{"nd", "nd", "tag"}
	for i, name := range childNames {
		if way.Children[i].Name != name {
			t.Errorf("way child %d is %s, expected %s", i, way.Children[i].Name, name)
		}
	}
	if way.Children[0].Attrs["ref"] != "2199822281" {
		t.Error("nd ref not parsed", way.Children[0].Attrs)
	}
}

func TestParseEOF(t *testing.T) {
	p := NewParser(strings.NewReader(testDoc))
	collect(t, p)

	// Next keeps returning without elements after EOF
	if elem, _ := p.Next(); elem.Name != "" {
		t.Error("element after EOF", elem)
	}
}

func TestParseGzFile(t *testing.T) {
	p, err := NewOsmFileParser("testdata/example.osm.gz")
	if err != nil {
		t.Fatal(err)
	}

	elems := collect(t, p)
	if len(elems) != 4 {
		t.Error("expected 4 elements, got", len(elems))
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := NewOsmFileParser("testdata/missing.osm"); err == nil {
		t.Error("expected error for missing file")
	}
}
