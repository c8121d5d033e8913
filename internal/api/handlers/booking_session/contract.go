package booking_session

import (
	"context"

	bookingWizard "github.com/m04kA/DLX-TourBookingService/internal/usecase/booking_wizard"
	"github.com/m04kA/DLX-TourBookingService/internal/wizard"
)

type BookingWizardUseCase interface {
	Start(ctx context.Context) (*bookingWizard.Result, error)
	Get(ctx context.Context, id string) (*bookingWizard.Result, error)
	Dispatch(ctx context.Context, id string, action wizard.Action) (*bookingWizard.Result, error)
	Submit(ctx context.Context, id string) (*bookingWizard.SubmitResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
