package shape

import (
	"encoding/json"
)

// Document is the shaped representation of a single node or way
// element. The fixed fields cover the interpreted parts of the
// element, Attrs holds all uninterpreted top level keys.
type Document struct {
	Type     string
	Attrs    map[string]string
	Created  map[string]string
	Pos      *[2]float64 // lat, lon
	Address  map[string]string
	NodeRefs []string
}

func (d *Document) setAttr(key, value string) {
	if d.Attrs == nil {
		d.Attrs = make(map[string]string)
	}
	d.Attrs[key] = value
}

func (d *Document) setCreated(key, value string) {
	if d.Created == nil {
		d.Created = make(map[string]string)
	}
	d.Created[key] = value
}

func (d *Document) setAddress(key, value string) {
	if d.Address == nil {
		d.Address = make(map[string]string)
	}
	d.Address[key] = value
}

// MarshalJSON flattens Attrs beside the fixed keys so the document
// serializes to the layout expected by mongoimport:
//
//	{"type": "node", "id": "123", "created": {…}, "pos": [lat, lon]}
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(d.Attrs)+5)
	for k, v := range d.Attrs {
		out[k] = v
	}
	out["type"] = d.Type
	if d.Created != nil {
		out["created"] = d.Created
	}
	if d.Pos != nil {
		out["pos"] = []float64{d.Pos[0], d.Pos[1]}
	}
	if d.Address != nil {
		out["address"] = d.Address
	}
	if d.NodeRefs != nil {
		out["node_refs"] = d.NodeRefs
	}
	return json.Marshal(out)
}
