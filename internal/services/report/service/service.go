// Package service renders the session history as a PDF report
package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	perr "harmwatch/internal/platform/errors"
	histdom "harmwatch/internal/services/history/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// Service generates PDF reports over the session history
type Service struct {
	reader histdom.ReaderPort
	now    func() time.Time
}

// New constructs the report service over the given history reader
func New(reader histdom.ReaderPort) *Service {
	return &Service{reader: reader, now: time.Now}
}

// WithClock overrides the timestamp source, for tests
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Generate renders the identity's records, most recent first, into a PDF
// an empty history is a not found error; no document is produced
func (s *Service) Generate(ctx context.Context, identity, sessionID string) ([]byte, error) {
	recs, err := s.reader.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var mine []histdom.Record
	for _, r := range recs {
		if r.Owner == identity {
			mine = append(mine, r)
		}
	}
	if len(mine) == 0 {
		return nil, perr.NotFoundf("no predictions to report")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// pin the document metadata clock so identical histories produce identical bytes
	pdf.SetCreationDate(s.now())
	pdf.SetModificationDate(s.now())
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Harm Detection Report - "+identity, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, "Generated: "+s.now().Format(timeLayout), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	for i := len(mine) - 1; i >= 0; i-- {
		r := mine[i]
		line := fmt.Sprintf("[%s] %s -> %s", r.CreatedAt.Format(timeLayout), r.Text, r.Label)
		pdf.MultiCell(0, 8, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, perr.Internalf("report rendering failed: %v", err)
	}
	return buf.Bytes(), nil
}
