package shape

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Schema configures how element attributes and tag keys are
// classified. A Schema is compiled once into a Shaper and is not
// consulted afterwards.
type Schema struct {
	// ElementTypes are the top level tag names that produce a document.
	ElementTypes []string `yaml:"element_types"`
	// CreatedKeys are attribute names collected into the created block.
	CreatedKeys []string `yaml:"created_keys"`
	// LatitudeKey and LongitudeKey are the position attributes. Their
	// values are converted to floats, latitude first.
	LatitudeKey  string `yaml:"latitude_key"`
	LongitudeKey string `yaml:"longitude_key"`
	// AddressPrefix is the tag key prefix (before the first colon)
	// collected into the address block.
	AddressPrefix string `yaml:"address_prefix"`
	// CompoundSegments lists second segments of colon-separated tag
	// keys whose deeper subkeys are dropped (addr:street:type etc.,
	// while addr:street itself is kept).
	CompoundSegments []string `yaml:"compound_segments"`
	// ProblemChars are characters that make a tag key unusable as a
	// document key. Tags with such keys are dropped.
	ProblemChars string `yaml:"problem_chars"`
}

// DefaultSchema returns the classification used for OSM extracts.
func DefaultSchema() *Schema {
	return &Schema{
		ElementTypes:     []string{"node", "way"},
		CreatedKeys:      []string{"version", "changeset", "timestamp", "user", "uid"},
		LatitudeKey:      "lat",
		LongitudeKey:     "lon",
		AddressPrefix:    "addr",
		CompoundSegments: []string{"street"},
		ProblemChars:     "=+/&<>;'\"?%#$@,. \t\r\n",
	}
}

// LoadSchema reads a YAML schema file. Settings not present in the
// file keep their default value.
func LoadSchema(filename string) (*Schema, error) {
	f, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading schema file")
	}
	schema := DefaultSchema()
	if err := yaml.Unmarshal(f, schema); err != nil {
		return nil, errors.Wrapf(err, "parsing schema file %s", filename)
	}
	return schema, nil
}
