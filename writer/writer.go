// Package writer serializes shaped documents as JSON Lines.
package writer

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/osmtools/osmwrangle/shape"
)

// DocWriter writes one JSON line per document and records all written
// documents in order, so a run can be verified after the fact.
type DocWriter struct {
	buf     *bufio.Writer
	pretty  bool
	docs    []*shape.Document
	onClose func() error
}

// NewDocWriter returns a writer that serializes to w. With pretty the
// documents are indented, each still followed by a single newline.
func NewDocWriter(w io.Writer, pretty bool) *DocWriter {
	return &DocWriter{buf: bufio.NewWriter(w), pretty: pretty}
}

// NewFileDocWriter creates fname and returns a writer for it.
func NewFileDocWriter(fname string, pretty bool) (*DocWriter, error) {
	file, err := os.Create(fname)
	if err != nil {
		return nil, errors.Wrap(err, "creating output file")
	}
	w := NewDocWriter(file, pretty)
	w.onClose = file.Close
	return w, nil
}

func (w *DocWriter) Write(doc *shape.Document) error {
	var buf []byte
	var err error
	if w.pretty {
		buf, err = json.MarshalIndent(doc, "", "  ")
	} else {
		buf, err = json.Marshal(doc)
	}
	if err != nil {
		return errors.Wrap(err, "encoding document")
	}
	if _, err := w.buf.Write(buf); err != nil {
		return err
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return err
	}
	w.docs = append(w.docs, doc)
	return nil
}

// Docs returns all written documents in write order.
func (w *DocWriter) Docs() []*shape.Document {
	return w.docs
}

func (w *DocWriter) Close() error {
	if err := w.buf.Flush(); err != nil {
		return err
	}
	if w.onClose != nil {
		return w.onClose()
	}
	return nil
}
