// Package carriers extracts airline carrier codes from the BTS
// Data Elements carrier list markup.
package carriers

import (
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// Carrier codes are one or two characters. Longer values in the
// select list are combination entries ("All", "AllUS", "AllForeign").
const maxCodeLen = 2

// Extract returns the carrier codes of the CarrierList select
// element in document order, combination entries excluded.
func Extract(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing carrier list page")
	}

	var codes []string
	doc.Find("#CarrierList option").Each(func(_ int, option *goquery.Selection) {
		val, ok := option.Attr("value")
		if !ok {
			return
		}
		if len(val) > maxCodeLen {
			return
		}
		codes = append(codes, val)
	})
	return codes, nil
}

// ExtractFile extracts the carrier codes from an HTML file.
func ExtractFile(fname string) ([]string, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Extract(f)
}
