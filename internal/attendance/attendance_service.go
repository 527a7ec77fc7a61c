package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"math"
	"strings"
	"time"

	attendanceerrors "go-checkin/internal/attendance/errors"
	"go-checkin/internal/events"
	"go-checkin/internal/geofence"
	"go-checkin/internal/messaging/kafka"
	"go-checkin/internal/observability"
	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Policy holds the rules a punch is validated against.
type Policy struct {
	Office           geofence.Fence
	Cooldown         time.Duration
	MaxPunchesPerDay int
	Location         *time.Location
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	SubmitPunch(ctx context.Context, employeeID string, req SubmitPunchRequest) (SubmitPunchResult, error)
	Today(ctx context.Context, employeeID string) (TodayResponse, error)
}

// CacheInvalidator drops read models derived from punches, such as the
// cached report.
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}

type ServiceOption func(*service)

func WithOutbox(repo kafka.OutboxRepository) ServiceOption {
	return func(s *service) { s.outbox = repo }
}

func WithLocker(l Locker) ServiceOption {
	return func(s *service) { s.locker = l }
}

// WithCacheInvalidator runs invalidation right after a punch commits.
func WithCacheInvalidator(c CacheInvalidator) ServiceOption {
	return func(s *service) { s.invalidator = c }
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) { s.now = now }
}

func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *service) {
		if l != nil {
			s.logger = l.Named("attendance.service")
		}
	}
}

type service struct {
	db          *sql.DB
	repo        Repository
	outbox      kafka.OutboxRepository
	locker      Locker
	invalidator CacheInvalidator
	policy      Policy
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, policy Policy, opts ...ServiceOption) Service {
	if policy.Location == nil {
		policy.Location = time.Local
	}
	s := &service{
		db:     db,
		repo:   repo,
		policy: policy,
		now:    time.Now,
		logger: zap.L().Named("attendance.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) SubmitPunch(ctx context.Context, employeeID string, req SubmitPunchRequest) (SubmitPunchResult, error) {
	punchType, valid := ParsePunchType(req.PunchType)

	res, err := s.submitPunch(ctx, employeeID, punchType, req)

	outcome := observability.OutcomeAccepted
	if err != nil {
		outcome = apperror.ToHTTP(err).Code
	}
	// arbitrary client input must not become a label value
	label := punchType.String()
	if !valid {
		label = ""
	}
	observability.RecordPunch(label, outcome)
	return res, err
}

func (s *service) submitPunch(ctx context.Context, employeeID string, punchType PunchType, req SubmitPunchRequest) (SubmitPunchResult, error) {
	rid := contextutil.GetRequestID(ctx)
	log := s.logger.With(
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("punch_type", punchType.String()),
	)

	if strings.TrimSpace(employeeID) == "" {
		return SubmitPunchResult{}, attendanceerrors.ErrInvalidIdentity
	}
	if req.Location == nil || req.Location.Latitude == nil || req.Location.Longitude == nil {
		return SubmitPunchResult{}, apperror.RequiredField("Location")
	}

	// 1. Geofence, sebelum menyentuh storage sama sekali
	point := geofence.Point{Latitude: *req.Location.Latitude, Longitude: *req.Location.Longitude}
	distance, within := s.policy.Office.Evaluate(point)
	observability.RecordDistance(distance)
	if !within {
		log.Info("punch rejected outside geofence",
			zap.Float64("distance_meters", distance),
			zap.Float64("radius_meters", s.policy.Office.RadiusMeters),
		)
		return SubmitPunchResult{}, attendanceerrors.GeofenceViolation(distance, s.policy.Office.RadiusMeters)
	}

	now := s.now().In(s.policy.Location)
	dayStart, dayEnd := DayWindow(now, s.policy.Location)

	// 2. Serialize per employee/day so two requests cannot both pass the sequence check
	if s.locker != nil {
		lockKey := PunchLockKey(employeeID, dayStart)
		lockToken, acquired, err := s.locker.Acquire(ctx, lockKey)
		if err != nil {
			log.Error("acquire punch lock failed", zap.String("key", lockKey), zap.Error(err))
			return SubmitPunchResult{}, apperror.Upstream(err)
		}
		if !acquired {
			log.Warn("punch lock busy", zap.String("key", lockKey))
			return SubmitPunchResult{}, attendanceerrors.ErrPunchInProgress
		}
		defer func() {
			if err := s.locker.Release(context.WithoutCancel(ctx), lockKey, lockToken); err != nil {
				log.Error("release punch lock failed", zap.String("key", lockKey), zap.Error(err))
			}
		}()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("submit punch begin tx failed", zap.Error(err))
		return SubmitPunchResult{}, apperror.Upstream(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	todays, err := qtx.FindByEmployeeAndWindow(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		log.Error("load today's punches failed", zap.Error(err))
		return SubmitPunchResult{}, mapRepositoryError(err, punchType)
	}

	// 3. Cooldown diukur dari jam server, bukan jam klien
	if remaining, active := cooldownRemaining(todays, now, s.policy.Cooldown); active {
		log.Info("punch rejected by cooldown", zap.Int("remaining_minutes", remaining))
		return SubmitPunchResult{}, attendanceerrors.CooldownActive(remaining)
	}

	// 4. Sequence
	if err := ValidateNext(todays, punchType, s.policy.MaxPunchesPerDay); err != nil {
		log.Info("punch rejected by sequence", zap.Int("todays_punches", len(todays)), zap.Error(err))
		return SubmitPunchResult{}, err
	}

	event := &PunchEvent{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		PunchDate:      civilDate(dayStart),
		PunchType:      punchType,
		PunchedAt:      now,
		Latitude:       point.Latitude,
		Longitude:      point.Longitude,
		DistanceMeters: math.Round(distance*100) / 100,
	}

	if err := qtx.Append(ctx, event); err != nil {
		log.Error("append punch failed", zap.Error(err))
		return SubmitPunchResult{}, mapRepositoryError(err, punchType)
	}

	if s.outbox != nil {
		if err := s.enqueuePunchRecorded(ctx, tx, rid, event); err != nil {
			log.Error("submit punch outbox persist failed", zap.String("punch_id", event.ID.String()), zap.Error(err))
			return SubmitPunchResult{}, apperror.Upstream(err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("submit punch commit failed", zap.Error(err))
		return SubmitPunchResult{}, mapRepositoryError(err, punchType)
	}

	log.Info("punch recorded",
		zap.String("punch_id", event.ID.String()),
		zap.Float64("distance_meters", event.DistanceMeters),
	)

	// the punch_recorded consumer does the same for other replicas
	if s.invalidator != nil {
		if err := s.invalidator.InvalidateCache(context.WithoutCancel(ctx)); err != nil {
			log.Warn("report cache invalidation failed", zap.Error(err))
		}
	}

	return SubmitPunchResult{
		Message: punchMessage(punchType),
		Punch:   mapToResponse(*event, s.policy.Location),
	}, nil
}

func (s *service) enqueuePunchRecorded(ctx context.Context, tx *sql.Tx, rid string, event *PunchEvent) error {
	payload, err := json.Marshal(events.PunchRecordedEvent{
		EventType:      events.PunchRecordedEventType,
		RequestID:      rid,
		PunchID:        event.ID.String(),
		EmployeeID:     event.EmployeeID,
		PunchType:      event.PunchType.String(),
		PunchDate:      event.PunchDate.Format("2006-01-02"),
		PunchedAt:      event.PunchedAt.UTC(),
		DistanceMeters: event.DistanceMeters,
		OccurredAt:     s.now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "punch",
		AggregateID:   event.EmployeeID,
		EventType:     events.PunchRecordedEventType,
		Topic:         events.PunchRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) Today(ctx context.Context, employeeID string) (TodayResponse, error) {
	if strings.TrimSpace(employeeID) == "" {
		return TodayResponse{}, attendanceerrors.ErrInvalidIdentity
	}

	now := s.now().In(s.policy.Location)
	dayStart, dayEnd := DayWindow(now, s.policy.Location)

	todays, err := s.repo.FindByEmployeeAndWindow(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("load today's punches failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return TodayResponse{}, mapRepositoryError(err, "")
	}

	resp := TodayResponse{
		Date:    dayStart.Format("2006-01-02"),
		State:   CurrentState(todays).String(),
		Punches: make([]PunchResponse, len(todays)),
	}
	for i, p := range todays {
		resp.Punches[i] = mapToResponse(p, s.policy.Location)
	}

	next, ok := NextExpected(todays)
	if ok && !capReached(todays, s.policy.MaxPunchesPerDay) {
		v := next.String()
		resp.NextPunchType = &v
	} else {
		resp.Complete = true
	}
	return resp, nil
}

// cooldownRemaining reports whole minutes left (rounded up) when the latest
// punch is closer to now than cooldown.
func cooldownRemaining(todays []PunchEvent, now time.Time, cooldown time.Duration) (int, bool) {
	if cooldown <= 0 || len(todays) == 0 {
		return 0, false
	}

	latest := todays[0].PunchedAt
	for _, p := range todays[1:] {
		if p.PunchedAt.After(latest) {
			latest = p.PunchedAt
		}
	}

	elapsed := now.Sub(latest)
	if elapsed >= cooldown {
		return 0, false
	}
	return int(math.Ceil((cooldown - elapsed).Minutes())), true
}

func punchMessage(t PunchType) string {
	if t == PunchExit {
		return "Workday complete. See you tomorrow!"
	}
	return t.String() + " recorded successfully."
}

// civilDate pins the calendar date to UTC midnight so the date column does
// not shift with the database session time zone.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mapToResponse(e PunchEvent, loc *time.Location) PunchResponse {
	return PunchResponse{
		ID:             e.ID.String(),
		EmployeeID:     e.EmployeeID,
		PunchType:      e.PunchType.String(),
		PunchDate:      e.PunchDate.Format("2006-01-02"),
		PunchedAt:      e.PunchedAt.In(loc).Format(time.RFC3339),
		Latitude:       e.Latitude,
		Longitude:      e.Longitude,
		DistanceMeters: e.DistanceMeters,
	}
}
