package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	"github.com/m04kA/DLX-TourBookingService/pkg/dbmetrics"
	"github.com/m04kA/DLX-TourBookingService/pkg/psqlbuilder"
)

// DBExecutor исполнитель запросов: *sql.DB, *dbmetrics.DB или транзакция из контекста
type DBExecutor = dbmetrics.DBExecutor

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"base_price",
	"category",
	"duration_label",
	"location",
	"max_participants",
	"highlights",
	"includes",
	"is_active",
}

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает услуги каталога, отсортированные по категории и названию
func (r *Repository) List(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Service, error) {
	selectBuilder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("category ASC", "name ASC")

	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.OnlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	return r.query(ctx, "List", selectBuilder)
}

// GetByIDs возвращает услуги с указанными ID. Отсутствующие ID просто не попадают в результат
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	selectBuilder := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC")

	return r.query(ctx, "GetByIDs", selectBuilder)
}

// GetByID возвращает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

func (r *Repository) query(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan service: %v", ErrScanRow, op, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return services, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var (
		service     domain.Service
		description sql.NullString
		duration    sql.NullString
		location    sql.NullString
	)

	err := row.Scan(
		&service.ID,
		&service.Name,
		&description,
		&service.BasePrice,
		&service.Category,
		&duration,
		&location,
		&service.MaxParticipants,
		pq.Array(&service.Highlights),
		pq.Array(&service.Includes),
		&service.IsActive,
	)
	if err != nil {
		return nil, err
	}

	service.Description = description.String
	service.DurationLabel = duration.String
	service.Location = location.String

	return &service, nil
}
