// Package pdfinfo reads basic metadata out of PDF bodies submitted to the
// console, so document records carry a page count before the extraction
// runner ever touches the file.
package pdfinfo

import (
	"bytes"
	"errors"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var ErrNotPDF = errors.New("body is not a readable PDF")

// Prober inspects PDF bodies. Validation is relaxed: documents scanned or
// produced by odd generators still need a page count.
type Prober struct {
	conf *model.Configuration
}

// NewProber creates a prober with relaxed validation.
func NewProber() *Prober {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Prober{conf: conf}
}

// PageCount returns the number of pages in the PDF read from r.
func (p *Prober) PageCount(r io.Reader) (int, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	count, err := api.PageCount(bytes.NewReader(body), p.conf)
	if err != nil {
		return 0, ErrNotPDF
	}
	return count, nil
}
