package shape

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDocumentMarshal(t *testing.T) {
	doc := &Document{
		Type:  "node",
		Attrs: map[string]string{"id": "2406124091", "amenity": "restaurant"},
		Created: map[string]string{
			"version": "2",
			"user":    "linuxUser16",
		},
		Pos:     &[2]float64{41.9757030, -87.6921867},
		Address: map[string]string{"housenumber": "5157"},
	}

	buf, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(buf, &out); err != nil {
		t.Fatal(err)
	}

	expected := map[string]interface{}{
		"type":    "node",
		"id":      "2406124091",
		"amenity": "restaurant",
		"created": map[string]interface{}{
			"version": "2",
			"user":    "linuxUser16",
		},
		"pos":     []interface{}{41.9757030, -87.6921867},
		"address": map[string]interface{}{"housenumber": "5157"},
	}
	if !reflect.DeepEqual(out, expected) {
		t.Error("unexpected document layout", out)
	}
}

func TestDocumentMarshalOmitsEmptyBlocks(t *testing.T) {
	doc := &Document{Type: "way", NodeRefs: []string{"305896090", "1719825889"}}

	buf, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(buf, &out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, map[string]interface{}{
		"type":      "way",
		"node_refs": []interface{}{"305896090", "1719825889"},
	}) {
		t.Error("unexpected document layout", out)
	}
}
