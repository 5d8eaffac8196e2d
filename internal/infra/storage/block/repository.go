package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	"github.com/edmarkin/DCM-ScheduleService/pkg/dbmetrics"
	"github.com/edmarkin/DCM-ScheduleService/pkg/psqlbuilder"
)

var blockColumns = []string{
	"id",
	"provider_id",
	"block_date",
	"time_from",
	"time_to",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с блокировками времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, blk *domain.Block) (*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocks").
		Columns(
			"provider_id",
			"block_date",
			"time_from",
			"time_to",
			"reason",
		).
		Values(
			blk.ProviderID,
			blk.BlockDate,
			blk.TimeFrom,
			blk.TimeTo,
			blk.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&blk.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	blk.CreatedAt = createdAt.Time

	return blk, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var blk domain.Block
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&blk.ID,
		&blk.ProviderID,
		&blk.BlockDate,
		&blk.TimeFrom,
		&blk.TimeTo,
		&blk.Reason,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}

	blk.CreatedAt = createdAt.Time

	return &blk, nil
}

// GetByProviderAndDate получает блокировки врача на дату, по времени начала.
// Внутри транзакции строки блокируются (FOR UPDATE) — проверка конфликтов
// перед вставкой видит консистентный снимок дня.
func (r *Repository) GetByProviderAndDate(ctx context.Context, providerID int64, date time.Time) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blockColumns...).
		From("blocks").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Eq{"block_date": date}).
		OrderBy("time_from ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.Block, 0)
	for rows.Next() {
		var blk domain.Block
		var createdAt sql.NullTime

		err := rows.Scan(
			&blk.ID,
			&blk.ProviderID,
			&blk.BlockDate,
			&blk.TimeFrom,
			&blk.TimeTo,
			&blk.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByProviderAndDate - scan row: %v", ErrScanRow, err)
		}

		blk.CreatedAt = createdAt.Time
		blocks = append(blocks, &blk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProviderAndDate - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete удаляет блокировку. Блокировки не несут истории —
// физическое удаление здесь штатная операция, в отличие от приёмов.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}
