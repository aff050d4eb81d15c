// Package process drives a full shaping run: parse an OSM extract,
// shape each element, write JSON Lines.
package process

import (
	"io"

	"github.com/pkg/errors"

	"github.com/osmtools/osmwrangle/config"
	"github.com/osmtools/osmwrangle/logging"
	"github.com/osmtools/osmwrangle/parser/osmxml"
	"github.com/osmtools/osmwrangle/shape"
	"github.com/osmtools/osmwrangle/stats"
	"github.com/osmtools/osmwrangle/writer"
)

var log = logging.NewLogger("")

// Run shapes all elements of opts.Input into opts.Output and returns
// the shaped documents in document order. Conversion and missing
// attribute errors abort the run.
func Run(opts config.ShapeOptions) ([]*shape.Document, error) {
	if opts.Quiet {
		logging.SetQuiet(true)
	}

	schema := shape.DefaultSchema()
	if opts.SchemaFile != "" {
		var err error
		schema, err = shape.LoadSchema(opts.SchemaFile)
		if err != nil {
			return nil, err
		}
	}
	shaper, err := shape.NewShaper(schema)
	if err != nil {
		return nil, err
	}

	parser, err := osmxml.NewOsmFileParser(opts.Input)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}

	docWriter, err := writer.NewFileDocWriter(opts.Output, opts.Pretty)
	if err != nil {
		return nil, err
	}

	progress := stats.NewReporter()
	step := log.StartStep("Shaping elements")

	for {
		elem, err := parser.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			docWriter.Close()
			return nil, errors.Wrap(err, "reading input")
		}

		doc, err := shaper.Shape(&elem)
		if err != nil {
			docWriter.Close()
			return nil, errors.Wrapf(err, "shaping %s element", elem.Name)
		}
		if doc == nil {
			progress.AddSkipped(1)
			continue
		}
		if doc.Type == "way" {
			progress.AddWays(1)
		} else {
			progress.AddNodes(1)
		}

		if err := docWriter.Write(doc); err != nil {
			docWriter.Close()
			return nil, err
		}
	}

	if err := docWriter.Close(); err != nil {
		return nil, errors.Wrap(err, "closing output")
	}
	progress.Stop()
	log.StopStep(step)

	return docWriter.Docs(), nil
}
