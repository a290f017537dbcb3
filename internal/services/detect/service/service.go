// Package service implements the detect workflow: classify input, log the result
package service

import (
	"context"
	"strings"
	"time"

	"harmwatch/internal/core/classifier"
	perr "harmwatch/internal/platform/errors"
	extdom "harmwatch/internal/services/extract/domain"
	histdom "harmwatch/internal/services/history/domain"
)

// Service classifies submitted text and appends the outcome to the session log
type Service struct {
	model     *classifier.Model
	extractor extdom.ExtractorPort
	writer    histdom.WriterPort
	now       func() time.Time
}

// New constructs the workflow service
func New(model *classifier.Model, extractor extdom.ExtractorPort, writer histdom.WriterPort) *Service {
	return &Service{
		model:     model,
		extractor: extractor,
		writer:    writer,
		now:       time.Now,
	}
}

// WithClock overrides the timestamp source, for tests
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// SubmitText classifies raw text and appends one record to the session log
// whitespace-only input is rejected before the classifier ever sees it
func (s *Service) SubmitText(ctx context.Context, identity, sessionID, text string) (histdom.Record, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return histdom.Record{}, perr.Newf(perr.ErrorCodeValidation, "please enter some text to classify")
	}
	return s.record(ctx, identity, sessionID, trimmed)
}

// SubmitURL extracts an excerpt from the page and runs it through the same
// classify-and-log path as raw text
func (s *Service) SubmitURL(ctx context.Context, identity, sessionID, url string) (histdom.Record, error) {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return histdom.Record{}, perr.Newf(perr.ErrorCodeValidation, "please enter a url to classify")
	}

	excerpt, err := s.extractor.Excerpt(ctx, trimmed)
	if err != nil {
		return histdom.Record{}, err
	}
	excerpt = strings.TrimSpace(excerpt)
	if excerpt == "" {
		// pages with no paragraph text leave nothing to classify
		return histdom.Record{}, perr.Unavailablef("failed to fetch content from the url")
	}
	return s.record(ctx, identity, sessionID, excerpt)
}

func (s *Service) record(ctx context.Context, identity, sessionID, text string) (histdom.Record, error) {
	rec := histdom.Record{
		Owner:     identity,
		Text:      text,
		Label:     s.model.Classify(text),
		CreatedAt: s.now(),
	}
	if err := s.writer.Append(ctx, sessionID, rec); err != nil {
		return histdom.Record{}, err
	}
	return rec, nil
}
