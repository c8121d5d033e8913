package booking

import "github.com/m04kA/DLX-TourBookingService/pkg/dbmetrics"

// DBExecutor исполнитель запросов: *sql.DB, *dbmetrics.DB или транзакция из контекста
type DBExecutor = dbmetrics.DBExecutor

// bookingColumns порядок колонок совпадает с порядком полей в scanBooking
var bookingColumns = []string{
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
	"created_at",
	"updated_at",
}
