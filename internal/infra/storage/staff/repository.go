package staff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/larosee/salon-booking-service/internal/domain"
	"github.com/larosee/salon-booking-service/pkg/dbmetrics"
	"github.com/larosee/salon-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий команды салона: мастера, дневные блокировки
// мастеров и общесалонные заблокированные даты
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория команды
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListTeam получает всех мастеров салона
func (r *Repository) ListTeam(ctx context.Context) ([]*domain.TeamMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "role", "created_at", "updated_at").
		From("team_members").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTeam - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTeam - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	team := make([]*domain.TeamMember, 0)
	for rows.Next() {
		var m domain.TeamMember
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListTeam - scan row: %v", ErrScanRow, err)
		}
		m.CreatedAt = createdAt.Time
		m.UpdatedAt = updatedAt.Time
		team = append(team, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTeam - iterate rows: %v", ErrExecQuery, err)
	}

	return team, nil
}

// GetMemberByID получает мастера по ID
func (r *Repository) GetMemberByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "role", "created_at", "updated_at").
		From("team_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMemberByID - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.TeamMember
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.Name, &m.Role, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetMemberByID - scan row: %v", ErrScanRow, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return &m, nil
}

// ListBlocksByDate получает дневные блокировки мастеров на указанную дату
func (r *Repository) ListBlocksByDate(ctx context.Context, dateKey string) ([]*domain.ProfessionalBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "professional_id", "block_date", "created_at").
		From("professional_blocks").
		Where(squirrel.Eq{"block_date": dateKey}).
		OrderBy("professional_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocksByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocksByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// AddBlock добавляет дневную блокировку мастера (отпуск/выходной)
func (r *Repository) AddBlock(ctx context.Context, block *domain.ProfessionalBlock) (*domain.ProfessionalBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professional_blocks").
		Columns("id", "professional_id", "block_date").
		Values(block.ID, block.ProfessionalID, block.DateKey).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddBlock - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: AddBlock - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	return block, nil
}

// RemoveBlock удаляет дневную блокировку мастера
func (r *Repository) RemoveBlock(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("professional_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveBlock - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveBlock - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveBlock - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// IsDateBlocked проверяет, заблокирована ли дата целиком для всего салона
func (r *Repository) IsDateBlocked(ctx context.Context, dateKey string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("blocked_dates").
		Where(squirrel.Eq{"block_date": dateKey}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// ListBlockedDates получает все общесалонные заблокированные даты
func (r *Repository) ListBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "block_date", "created_at").
		From("blocked_dates").
		OrderBy("block_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var d domain.BlockedDate
		var blockDate time.Time
		var createdAt sql.NullTime

		if err := rows.Scan(&d.ID, &blockDate, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListBlockedDates - scan row: %v", ErrScanRow, err)
		}
		d.DateKey = blockDate.Format(domain.DateFormat)
		d.CreatedAt = createdAt.Time
		dates = append(dates, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - iterate rows: %v", ErrExecQuery, err)
	}

	return dates, nil
}

// AddBlockedDate блокирует дату целиком для всего салона
func (r *Repository) AddBlockedDate(ctx context.Context, date *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("id", "block_date").
		Values(date.ID, date.DateKey).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddBlockedDate - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: AddBlockedDate - execute insert: %v", ErrExecQuery, err)
	}

	date.CreatedAt = createdAt.Time
	return date, nil
}

// RemoveBlockedDate снимает общесалонную блокировку даты
func (r *Repository) RemoveBlockedDate(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}

func scanBlocks(rows *sql.Rows) ([]*domain.ProfessionalBlock, error) {
	blocks := make([]*domain.ProfessionalBlock, 0)

	for rows.Next() {
		var b domain.ProfessionalBlock
		var blockDate time.Time
		var createdAt sql.NullTime

		if err := rows.Scan(&b.ID, &b.ProfessionalID, &blockDate, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scan block row: %v", ErrScanRow, err)
		}
		b.DateKey = blockDate.Format(domain.DateFormat)
		b.CreatedAt = createdAt.Time
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate block rows: %v", ErrExecQuery, err)
	}

	return blocks, nil
}
