// Package matching runs the end-to-end flow for one pasted URL: trim the
// input, extract the canonical identifier, wait out the simulated remote call,
// and look the identifier up in the catalog.
//
// Empty and unparseable input short-circuit before any lookup. The only error
// Match returns is a cancelled or expired context; every other outcome is a
// Status on the Result.
package matching

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"vidmatch/internal/assets"
	"vidmatch/internal/latency"
	"vidmatch/internal/logging"
	"vidmatch/internal/services"
	"vidmatch/internal/videoid"
)

// Status classifies a match outcome.
type Status string

const (
	StatusEmptyInput   Status = "empty_input"
	StatusInvalidInput Status = "invalid_input"
	StatusMatched      Status = "matched"
	StatusNoMatch      Status = "no_match"
)

// Result describes one match attempt.
type Result struct {
	RequestID string         `json:"request_id"`
	Status    Status         `json:"status"`
	Input     string         `json:"input"`
	VideoID   string         `json:"video_id,omitempty"`
	Record    *assets.Record `json:"record,omitempty"`
	Elapsed   time.Duration  `json:"elapsed_ns"`
}

// Matched reports whether the result carries a record.
func (r Result) Matched() bool {
	return r.Status == StatusMatched && r.Record != nil
}

// Lookuper resolves identifiers to records. *assets.Matcher satisfies it.
type Lookuper interface {
	Lookup(id string) (assets.Record, bool)
}

// Option customises the Service.
type Option func(*Service)

// WithDelayer sets the strategy used to simulate remote latency.
func WithDelayer(d latency.Delayer) Option {
	return func(s *Service) {
		if d != nil {
			s.delayer = d
		}
	}
}

// WithExtractor overrides the identifier extractor applied to user input.
func WithExtractor(e videoid.Extractor) Option {
	return func(s *Service) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithWaitNotifier registers a callback invoked with the extracted identifier
// just before the simulated delay starts.
func WithWaitNotifier(fn func(videoID string)) Option {
	return func(s *Service) {
		s.onWait = fn
	}
}

// WithRequestIDs overrides the request id generator.
func WithRequestIDs(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock overrides the time source used for Elapsed.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service runs match requests against a fixed catalog.
type Service struct {
	lookup    Lookuper
	extractor videoid.Extractor
	delayer   latency.Delayer
	logger    *slog.Logger
	onWait    func(string)
	newID     func() string
	now       func() time.Time
}

// NewService wires a Service. The defaults are videoid.Default, no delay, and
// random UUID request ids.
func NewService(lookup Lookuper, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		lookup:    lookup,
		extractor: videoid.Default,
		delayer:   latency.None{},
		logger:    logging.NewComponentLogger(logger, "matching"),
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Match resolves raw user input to a catalog record.
func (s *Service) Match(ctx context.Context, raw string) (Result, error) {
	start := s.now()
	res := Result{RequestID: s.newID(), Input: strings.TrimSpace(raw)}

	ctx = services.WithOperation(ctx, "match")
	ctx = services.WithRequestID(ctx, res.RequestID)
	logger := logging.WithContext(ctx, s.logger)

	if res.Input == "" {
		res.Status = StatusEmptyInput
		res.Elapsed = s.now().Sub(start)
		logger.Info("match skipped",
			logging.String(logging.FieldEventType, "match_empty_input"),
			logging.String("status", string(res.Status)))
		return res, nil
	}

	id, ok := s.extractor.Extract(res.Input)
	if !ok || !videoid.Valid(id) {
		res.Status = StatusInvalidInput
		res.Elapsed = s.now().Sub(start)
		logger.Info("match skipped",
			logging.String(logging.FieldEventType, "match_invalid_input"),
			logging.String("status", string(res.Status)),
			logging.String("input", res.Input))
		return res, nil
	}
	res.VideoID = id
	logger = logger.With(logging.String(logging.FieldVideoID, id))

	if s.onWait != nil {
		s.onWait(id)
	}
	if err := s.delayer.Delay(ctx); err != nil {
		res.Elapsed = s.now().Sub(start)
		logger.Debug("match abandoned during simulated latency",
			logging.Error(err),
			logging.Duration("elapsed", res.Elapsed))
		return res, err
	}

	rec, found := s.lookup.Lookup(id)
	res.Elapsed = s.now().Sub(start)
	if !found {
		res.Status = StatusNoMatch
		logger.Info("match finished",
			logging.String(logging.FieldEventType, "match_no_match"),
			logging.String("status", string(res.Status)),
			logging.Duration("elapsed", res.Elapsed))
		return res, nil
	}

	res.Status = StatusMatched
	res.Record = &rec
	logger.Info("match finished",
		logging.String(logging.FieldEventType, "match_found"),
		logging.String("status", string(res.Status)),
		logging.String(logging.FieldAssetID, rec.AssetID),
		logging.String("registry_code", rec.RegistryCode),
		logging.Duration("elapsed", res.Elapsed))
	return res, nil
}
