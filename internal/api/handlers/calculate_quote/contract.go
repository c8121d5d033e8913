package calculate_quote

import (
	"context"

	calculateQuote "github.com/m04kA/DLX-TourBookingService/internal/usecase/calculate_quote"
)

type CalculateQuoteUseCase interface {
	Execute(ctx context.Context, req *calculateQuote.Request) (*calculateQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
