package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Append(ctx context.Context, e *PunchEvent) error
	FindByEmployeeAndWindow(ctx context.Context, employeeID string, start, end time.Time) ([]PunchEvent, error)
	FindInWindow(ctx context.Context, start, end time.Time) ([]PunchEvent, error)
	FindAll(ctx context.Context) ([]PunchEvent, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn runs statements on the outer *sql.Tx when one is bound, so reads and
// the append share the caller's transaction.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Append(ctx context.Context, e *PunchEvent) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindByEmployeeAndWindow(ctx context.Context, employeeID string, start, end time.Time) ([]PunchEvent, error) {
	var rows []PunchEvent
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("punched_at >= ? AND punched_at < ?", start, end).
		Order("punched_at ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindInWindow(ctx context.Context, start, end time.Time) ([]PunchEvent, error) {
	var rows []PunchEvent
	err := r.conn(ctx).
		Where("punched_at >= ? AND punched_at < ?", start, end).
		Order("employee_id ASC, punched_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context) ([]PunchEvent, error) {
	var rows []PunchEvent
	err := r.conn(ctx).
		Order("employee_id ASC, punched_at ASC").
		Find(&rows).Error
	return rows, err
}
