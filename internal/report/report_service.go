package report

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-checkin/internal/attendance"
	"go-checkin/internal/observability"
	reporterrors "go-checkin/internal/report/errors"
	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// FullReportCacheKey holds the unbounded report; bounded reports are not cached.
const FullReportCacheKey = "attendance:report:xlsx"

// EventSource is the read side of the punch store.
type EventSource interface {
	FindAll(ctx context.Context) ([]attendance.PunchEvent, error)
	FindInWindow(ctx context.Context, start, end time.Time) ([]attendance.PunchEvent, error)
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, filter Filter) (Document, error)
	DailyRows(ctx context.Context, filter Filter) ([]Row, error)
	InvalidateCache(ctx context.Context) error
}

type ServiceOption func(*service)

// WithCache keeps the full report in Redis for ttl.
func WithCache(rdb *redis.Client, ttl time.Duration) ServiceOption {
	return func(s *service) {
		s.rdb = rdb
		s.cacheTTL = ttl
	}
}

func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *service) {
		if l != nil {
			s.logger = l.Named("report.service")
		}
	}
}

type service struct {
	source   EventSource
	sink     DocumentSink
	loc      *time.Location
	rdb      *redis.Client
	cacheTTL time.Duration
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(source EventSource, sink DocumentSink, loc *time.Location, opts ...ServiceOption) Service {
	if loc == nil {
		loc = time.Local
	}
	s := &service{
		source:   source,
		sink:     sink,
		loc:      loc,
		cacheTTL: time.Minute,
		sf:       &singleflight.Group{},
		logger:   zap.L().Named("report.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Generate(ctx context.Context, filter Filter) (Document, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if !filter.Unbounded() || s.rdb == nil {
		return s.build(ctx, filter)
	}

	cached, err := s.rdb.Get(ctx, FullReportCacheKey).Bytes()
	switch {
	case err == nil:
		var doc Document
		if json.Unmarshal(cached, &doc) == nil {
			return doc, nil
		}
		log.Warn("discarding unreadable report cache entry", zap.String("key", FullReportCacheKey))
	case !errors.Is(err, redis.Nil):
		log.Warn("report cache lookup failed", zap.String("key", FullReportCacheKey), zap.Error(err))
	}

	v, err, _ := s.sf.Do(FullReportCacheKey, func() (interface{}, error) {
		// waiters share this build, so the first caller's cancellation must not end it
		buildCtx := context.WithoutCancel(ctx)

		doc, err := s.build(buildCtx, filter)
		if err != nil {
			return nil, err
		}

		if payload, marshalErr := json.Marshal(doc); marshalErr == nil {
			if setErr := s.rdb.Set(buildCtx, FullReportCacheKey, payload, s.cacheTTL).Err(); setErr != nil {
				log.Warn("report cache store failed", zap.Error(setErr))
			}
		}
		return doc, nil
	})
	if err != nil {
		return Document{}, err
	}
	return v.(Document), nil
}

func (s *service) DailyRows(ctx context.Context, filter Filter) ([]Row, error) {
	return s.rows(ctx, filter)
}

func (s *service) InvalidateCache(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, FullReportCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate report cache",
			zap.Error(err),
			zap.String("key", FullReportCacheKey),
		)
		return apperror.Upstream(err)
	}
	return nil
}

func (s *service) build(ctx context.Context, filter Filter) (Document, error) {
	start := time.Now()
	defer func() { observability.ObserveReportGeneration(time.Since(start)) }()

	rows, err := s.rows(ctx, filter)
	if err != nil {
		return Document{}, err
	}

	doc, err := s.sink.Build(rows)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("encode report failed", zap.Int("rows", len(rows)), zap.Error(err))
		return Document{}, apperror.Internal(err)
	}
	return doc, nil
}

func (s *service) rows(ctx context.Context, filter Filter) ([]Row, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	events, err := s.load(ctx, filter)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		log.Error("load punch events failed", zap.Error(err))
		return nil, apperror.Upstream(err)
	}

	rows, err := BuildRows(Aggregate(events, s.loc), s.loc)
	if err != nil {
		if errors.Is(err, reporterrors.ErrEmptyReport) {
			return nil, err
		}
		log.Error("build report rows failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	log.Info("report rows built", zap.Int("events", len(events)), zap.Int("rows", len(rows)))
	return rows, nil
}

func (s *service) load(ctx context.Context, filter Filter) ([]attendance.PunchEvent, error) {
	if filter.Unbounded() {
		return s.source.FindAll(ctx)
	}

	var start, end time.Time
	if filter.From != nil {
		start, _ = attendance.DayWindow(*filter.From, s.loc)
	}
	if filter.To != nil {
		_, end = attendance.DayWindow(*filter.To, s.loc)
	} else {
		// jauh di masa depan
		end = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	}

	if filter.From != nil && filter.To != nil && !end.After(start) {
		return nil, apperror.InvalidField("To")
	}
	return s.source.FindInWindow(ctx, start, end)
}
