package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	"github.com/m04kA/DLX-TourBookingService/pkg/dbmetrics"
	"github.com/m04kA/DLX-TourBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование
// Если ID не задан, генерируется UUID. created_at и updated_at возвращаются из БД.
// Если в контексте есть транзакция, запрос выполняется в ней
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	services, err := json.Marshal(booking.Services)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal services: %v", ErrEncodeServices, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"customer_country",
			"start_date",
			"end_date",
			"adults",
			"children",
			"services",
			"subtotal",
			"group_discount",
			"children_discount",
			"total_amount",
			"special_requests",
			"status",
			"payment_status",
		).
		Values(
			booking.ID,
			booking.Customer.Name,
			booking.Customer.Email,
			booking.Customer.Phone,
			nullString(booking.Customer.Country),
			booking.Trip.StartDate,
			booking.Trip.EndDate,
			booking.Trip.Adults,
			booking.Trip.Children,
			services,
			booking.Subtotal,
			booking.GroupDiscount,
			booking.ChildrenDiscount,
			booking.TotalAmount,
			booking.SpecialRequests,
			booking.Status,
			booking.PaymentStatus,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE) для последующего изменения статуса
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}

	return booking, nil
}

// List возвращает бронирования по фильтру, сначала новые
//
// Примеры:
//
//  1. Все активные бронирования:
//     filter := domain.BookingsFilter{Limit: 50}
//
//  2. Ожидающие оплаты с поездкой в сентябре:
//     payment := domain.PaymentPending
//     filter := domain.BookingsFilter{PaymentStatus: &payment, StartDateFrom: &sep1, StartDateTo: &sep30}
//
//  3. Поиск клиента по имени или email, включая отменённые:
//     filter := domain.BookingsFilter{Search: ptr.Ptr("souza"), IncludeInactive: true}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(bookingColumns...).From("bookings"), filter).
		OrderBy("created_at DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Count возвращает количество бронирований по фильтру без учёта Limit и Offset
func (r *Repository) Count(ctx context.Context, filter domain.BookingsFilter) (uint64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("bookings"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var total uint64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}

// UpdateStatus обновляет статус бронирования и/или статус оплаты
// nil означает "не менять"
func (r *Repository) UpdateStatus(ctx context.Context, id string, status *domain.BookingStatus, payment *domain.PaymentStatus) error {
	if status == nil && payment == nil {
		return ErrNothingToUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status != nil {
		updateBuilder = updateBuilder.Set("status", *status)
	}
	if payment != nil {
		updateBuilder = updateBuilder.Set("payment_status", *payment)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// applyFilter добавляет условия фильтра к запросу
func applyFilter(b squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	// Фильтрация по статусу
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если статус не указан и неактивные не нужны - исключаем их
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		b = b.Where(squirrel.NotEq{"status": inactive})
	}

	if filter.PaymentStatus != nil {
		b = b.Where(squirrel.Eq{"payment_status": *filter.PaymentStatus})
	}

	// Фильтрация по дате начала поездки
	if filter.StartDateFrom != nil {
		b = b.Where(squirrel.GtOrEq{"start_date": *filter.StartDateFrom})
	}
	if filter.StartDateTo != nil {
		b = b.Where(squirrel.LtOrEq{"start_date": *filter.StartDateTo})
	}

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"customer_name": pattern},
			squirrel.ILike{"customer_email": pattern},
		})
	}

	return b
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanBooking сканирует одну строку в доменную модель
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		country   sql.NullString
		startDate time.Time
		endDate   sql.NullTime
		services  []byte
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.Customer.Name,
		&booking.Customer.Email,
		&booking.Customer.Phone,
		&country,
		&startDate,
		&endDate,
		&booking.Trip.Adults,
		&booking.Trip.Children,
		&services,
		&booking.Subtotal,
		&booking.GroupDiscount,
		&booking.ChildrenDiscount,
		&booking.TotalAmount,
		&booking.SpecialRequests,
		&booking.Status,
		&booking.PaymentStatus,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
	}

	if len(services) > 0 {
		if err := json.Unmarshal(services, &booking.Services); err != nil {
			return nil, fmt.Errorf("%w: unmarshal services of booking %s: %v", ErrEncodeServices, booking.ID, err)
		}
	}

	booking.Customer.Country = country.String
	booking.Trip.StartDate = &startDate
	if endDate.Valid {
		booking.Trip.EndDate = &endDate.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
