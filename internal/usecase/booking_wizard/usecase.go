package booking_wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	"github.com/m04kA/DLX-TourBookingService/internal/infra/session"
	"github.com/m04kA/DLX-TourBookingService/internal/pricing"
	"github.com/m04kA/DLX-TourBookingService/internal/usecase/create_booking"
	"github.com/m04kA/DLX-TourBookingService/internal/wizard"
)

// UseCase use case пошагового мастера бронирования
// Состояние мастера хранится в SessionStore; переходы считает wizard.Machine
type UseCase struct {
	sessions     SessionStore
	catalog      CatalogProvider
	pricer       PriceCalculator
	creator      BookingCreator
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionStore,
	catalog CatalogProvider,
	pricer PriceCalculator,
	creator BookingCreator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		catalog:      catalog,
		pricer:       pricer,
		creator:      creator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Start создаёт новую сессию мастера
func (uc *UseCase) Start(ctx context.Context) (*Result, error) {
	now := uc.timeProvider.Now()
	sess := &wizard.Session{
		ID:        uuid.NewString(),
		State:     wizard.NewState(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	catalog, err := uc.snapshot(ctx, "Start")
	if err != nil {
		return nil, err
	}

	if err := uc.save(ctx, "Start", sess); err != nil {
		return nil, err
	}

	uc.logger.Info("BookingWizard.Start: session=%s", sess.ID)
	return uc.result(sess, catalog, ""), nil
}

// Get возвращает текущее состояние сессии
func (uc *UseCase) Get(ctx context.Context, id string) (*Result, error) {
	sess, err := uc.load(ctx, "Get", id)
	if err != nil {
		return nil, err
	}

	catalog, err := uc.snapshot(ctx, "Get")
	if err != nil {
		return nil, err
	}

	return uc.result(sess, catalog, ""), nil
}

// Dispatch применяет действие к сессии
// Навигация, заблокированная валидацией, не является ошибкой: результат в Outcome
func (uc *UseCase) Dispatch(ctx context.Context, id string, action wizard.Action) (*Result, error) {
	uc.logger.Info("BookingWizard.Dispatch: session=%s action=%s", id, action.Type)

	// 1. Загружаем сессию
	sess, err := uc.load(ctx, "Dispatch", id)
	if err != nil {
		return nil, err
	}

	if sess.IsSubmitted() {
		uc.logger.Warn("BookingWizard.Dispatch: session=%s already submitted as booking=%s", id, sess.BookingID)
		return nil, ErrAlreadySubmitted
	}

	// 2. Получаем каталог
	catalog, err := uc.snapshot(ctx, "Dispatch")
	if err != nil {
		return nil, err
	}

	// 3. Применяем действие
	machine := wizard.NewMachine(catalog, uc.timeProvider.Now())
	next, outcome, err := machine.Reduce(sess.State, action)
	if err != nil {
		uc.metrics.IncWizardAction(string(action.Type), "error")
		uc.logger.Warn("BookingWizard.Dispatch: session=%s rejected action %s: %v", id, action.Type, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	uc.metrics.IncWizardAction(string(action.Type), string(outcome))

	// 4. Сохраняем новое состояние
	sess.State = next
	sess.UpdatedAt = uc.timeProvider.Now()
	if err := uc.save(ctx, "Dispatch", sess); err != nil {
		return nil, err
	}

	return uc.result(sess, catalog, outcome), nil
}

// Submit создаёт бронирование из завершённого мастера
// При ошибке создания сессия не меняется, пользователь может отправить повторно
func (uc *UseCase) Submit(ctx context.Context, id string) (*SubmitResult, error) {
	uc.logger.Info("BookingWizard.Submit: session=%s", id)

	// 1. Загружаем сессию
	sess, err := uc.load(ctx, "Submit", id)
	if err != nil {
		return nil, err
	}

	if sess.IsSubmitted() {
		uc.logger.Warn("BookingWizard.Submit: session=%s already submitted as booking=%s", id, sess.BookingID)
		return nil, ErrAlreadySubmitted
	}

	if !sess.State.Completed {
		uc.logger.Warn("BookingWizard.Submit: session=%s is not completed", id)
		return nil, ErrNotCompleted
	}

	// 2. Повторно проверяем обязательные шаги по актуальному каталогу
	catalog, err := uc.snapshot(ctx, "Submit")
	if err != nil {
		return nil, err
	}

	selected, _ := wizard.SelectedServices(sess.State.Selections, catalog)
	steps := wizard.BuildSteps(sess.State.Form, selected, uc.timeProvider.Now())
	if step, invalid := wizard.FirstInvalidRequired(steps); invalid {
		uc.logger.Warn("BookingWizard.Submit: session=%s step %s is no longer valid", id, step.ID)
		return nil, fmt.Errorf("%w: step %s is invalid", ErrNotCompleted, step.ID)
	}

	// 3. Закрепляем отправку за этим запросом, параллельная отправка получит ErrAlreadySubmitted
	claimed, err := uc.sessions.ClaimSubmit(ctx, id)
	if err != nil {
		uc.logger.Error("BookingWizard.Submit: failed to claim session=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to claim session: %v", ErrInternal, err)
	}
	if !claimed {
		uc.logger.Warn("BookingWizard.Submit: session=%s is already being submitted", id)
		return nil, ErrAlreadySubmitted
	}

	// 4. Создаём бронирование
	form := sess.State.Form
	created, err := uc.creator.Execute(ctx, &create_booking.Request{
		Customer:        form.Customer,
		Trip:            form.Trip,
		Selections:      sess.State.Selections,
		SpecialRequests: composeSpecialRequests(form, steps),
	})
	if err != nil {
		uc.logger.Warn("BookingWizard.Submit: session=%s booking creation failed: %v", id, err)
		if releaseErr := uc.sessions.ReleaseSubmit(ctx, id); releaseErr != nil {
			uc.logger.Error("BookingWizard.Submit: failed to release session=%s: %v", id, releaseErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	// 5. Запоминаем бронирование в сессии
	sess.BookingID = created.ID
	sess.BookingReference = created.Reference
	sess.UpdatedAt = uc.timeProvider.Now()
	if err := uc.save(ctx, "Submit", sess); err != nil {
		// Бронирование уже создано, ошибку сохранения сессии не возвращаем клиенту
		uc.logger.Error("BookingWizard.Submit: booking=%s created but session=%s not updated: %v", created.ID, id, err)
	}

	uc.logger.Info("BookingWizard.Submit: session=%s created booking=%s ref=%s", id, created.ID, created.Reference)

	return &SubmitResult{
		SessionID:     sess.ID,
		BookingID:     created.ID,
		Reference:     created.Reference,
		Status:        created.Status,
		PaymentStatus: created.PaymentStatus,
		Breakdown:     created.Breakdown,
		CreatedAt:     created.CreatedAt,
	}, nil
}

func (uc *UseCase) load(ctx context.Context, op, id string) (*wizard.Session, error) {
	sess, err := uc.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("BookingWizard.%s: session=%s not found", op, id)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("BookingWizard.%s: failed to load session=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}
	return sess, nil
}

func (uc *UseCase) save(ctx context.Context, op string, sess *wizard.Session) error {
	if err := uc.sessions.Save(ctx, sess); err != nil {
		uc.logger.Error("BookingWizard.%s: failed to save session=%s: %v", op, sess.ID, err)
		return fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}
	return nil
}

func (uc *UseCase) snapshot(ctx context.Context, op string) (domain.Catalog, error) {
	catalog, err := uc.catalog.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("BookingWizard.%s: failed to load catalog: %v", op, err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}
	return catalog, nil
}

// result собирает представление и расчёт по состоянию сессии
func (uc *UseCase) result(sess *wizard.Session, catalog domain.Catalog, outcome wizard.Outcome) *Result {
	machine := wizard.NewMachine(catalog, uc.timeProvider.Now())
	breakdown := uc.pricer.ComputeBreakdown(catalog, sess.State.Selections, sess.State.Form.Trip)

	if breakdown.HasUnknownServices() {
		uc.logger.Warn("BookingWizard: session=%s has services not in catalog, excluded from quote: %v",
			sess.ID, breakdown.UnknownServiceIDs)
		uc.metrics.AddUnknownServiceRefs(len(breakdown.UnknownServiceIDs))
	}

	return &Result{
		Session: sess,
		View:    machine.View(sess.State),
		Quote:   pricing.RoundBreakdown(breakdown),
		Outcome: outcome,
	}
}

// composeSpecialRequests собирает пожелания и предпочтения видимых шагов в один текст
func composeSpecialRequests(form wizard.FormData, steps []wizard.Step) *string {
	visible := make(map[wizard.StepID]bool, len(steps))
	for _, s := range steps {
		visible[s.ID] = s.Visible
	}

	var parts []string

	if visible[wizard.StepAccommodation] {
		if v := strings.TrimSpace(form.Accommodation.RoomType); v != "" {
			parts = append(parts, "Room type: "+v)
		}
		if v := strings.TrimSpace(form.Accommodation.Notes); v != "" {
			parts = append(parts, "Accommodation notes: "+v)
		}
	}

	if visible[wizard.StepTransport] {
		pickup := "Pickup: " + strings.TrimSpace(form.Transport.PickupLocation)
		if v := strings.TrimSpace(form.Transport.PickupTime); v != "" {
			pickup += " at " + v
		}
		parts = append(parts, pickup)
	}

	if visible[wizard.StepGuide] {
		if v := strings.TrimSpace(form.Guide.Language); v != "" {
			parts = append(parts, "Guide language: "+v)
		}
	}

	if v := strings.TrimSpace(form.SpecialRequests); v != "" {
		parts = append(parts, v)
	}

	if len(parts) == 0 {
		return nil
	}

	text := strings.Join(parts, "\n")
	return &text
}
