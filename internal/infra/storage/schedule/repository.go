package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	"github.com/edmarkin/DCM-ScheduleService/pkg/dbmetrics"
	"github.com/edmarkin/DCM-ScheduleService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий расписаний врачей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProviderID получает расписание врача
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"work_days_from",
		"work_days_to",
		"work_time_from",
		"work_time_to",
		"slot_duration_minutes",
		"appointment_fee",
		"created_at",
		"updated_at",
	).
		From("provider_schedules").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	var sched domain.ProviderSchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sched.ID,
		&sched.ProviderID,
		&sched.WorkDaysFrom,
		&sched.WorkDaysTo,
		&sched.WorkTimeFrom,
		&sched.WorkTimeTo,
		&sched.SlotDurationMinutes,
		&sched.AppointmentFee,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - scan schedule: %v", ErrScanRow, err)
	}

	sched.CreatedAt = createdAt.Time
	sched.UpdatedAt = updatedAt.Time

	return &sched, nil
}

// Upsert создает или обновляет расписание врача.
// У врача ровно одно расписание — уникальность по provider_id.
func (r *Repository) Upsert(ctx context.Context, sched *domain.ProviderSchedule) (*domain.ProviderSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("provider_schedules").
		Columns(
			"provider_id",
			"work_days_from",
			"work_days_to",
			"work_time_from",
			"work_time_to",
			"slot_duration_minutes",
			"appointment_fee",
		).
		Values(
			sched.ProviderID,
			sched.WorkDaysFrom,
			sched.WorkDaysTo,
			sched.WorkTimeFrom,
			sched.WorkTimeTo,
			sched.SlotDurationMinutes,
			sched.AppointmentFee,
		).
		Suffix(`ON CONFLICT (provider_id) DO UPDATE SET
			work_days_from = EXCLUDED.work_days_from,
			work_days_to = EXCLUDED.work_days_to,
			work_time_from = EXCLUDED.work_time_from,
			work_time_to = EXCLUDED.work_time_to,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			appointment_fee = EXCLUDED.appointment_fee,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sched.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	sched.CreatedAt = createdAt.Time
	sched.UpdatedAt = updatedAt.Time

	return sched, nil
}
