package calculate_quote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	"github.com/m04kA/DLX-TourBookingService/internal/pricing"
	"github.com/m04kA/DLX-TourBookingService/pkg/logger"
)

type fakeCatalog struct {
	services []*domain.Service
	err      error
}

func (f *fakeCatalog) GetByIDs(_ context.Context, ids []string) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, s := range f.services {
		for _, id := range ids {
			if s.ID == id {
				out = append(out, s)
			}
		}
	}
	return out, f.err
}

type countingMetrics struct {
	quotes  int
	unknown int
}

func (m *countingMetrics) IncQuotesCalculated() { m.quotes++ }
func (m *countingMetrics) AddUnknownServiceRefs(n int) { m.unknown += n }

func newUseCase() (*UseCase, *fakeCatalog, *countingMetrics) {
	catalog := &fakeCatalog{services: []*domain.Service{
		{ID: "classic-island-package", Name: "Classic Island", BasePrice: 50, Category: domain.CategoryActivity},
		{ID: "dinner", Name: "Dinner", BasePrice: 3.333, Category: domain.CategoryMeal},
	}}
	metrics := &countingMetrics{}
	return NewUseCase(catalog, pricing.NewEngine(nil), metrics, logger.NewNop()), catalog, metrics
}

func TestExecute_FamilyPackage(t *testing.T) {
	uc, _, metrics := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Selections: domain.Selections{"classic-island-package": {Quantity: 1}},
		Adults:     2,
		Children:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Travelers)
	assert.Equal(t, 170.0, resp.Breakdown.Subtotal)
	assert.Equal(t, 30.0, resp.Breakdown.ChildrenDiscount)
	assert.Equal(t, 140.0, resp.Breakdown.FinalTotal)
	assert.Equal(t, 1, metrics.quotes)
}

func TestExecute_RoundsForPresentation(t *testing.T) {
	uc, _, _ := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Selections: domain.Selections{"dinner": {Quantity: 3}},
		Adults:     1,
	})

	require.NoError(t, err)
	assert.Equal(t, 10.0, resp.Breakdown.FinalTotal)
}

func TestExecute_UnknownServicesReported(t *testing.T) {
	uc, _, metrics := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Selections: domain.Selections{"dinner": {Quantity: 1}, "ghost": {Quantity: 2}},
		Adults:     1,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"ghost"}, resp.Breakdown.UnknownServiceIDs)
	assert.Equal(t, 1, metrics.unknown)
}

func TestExecute_EmptySelectionIsZero(t *testing.T) {
	uc, _, _ := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{Adults: 3})

	require.NoError(t, err)
	assert.Zero(t, resp.Breakdown.FinalTotal)
	assert.Empty(t, resp.Breakdown.Lines)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _ := newUseCase()

	tests := []Request{
		{Adults: 0},
		{Adults: 21},
		{Adults: 1, Children: 11},
		{Adults: 1, Selections: domain.Selections{"dinner": {Quantity: 0}}},
	}

	for _, req := range tests {
		_, err := uc.Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_CatalogFailure(t *testing.T) {
	uc, catalog, _ := newUseCase()
	catalog.err = assert.AnError

	_, err := uc.Execute(context.Background(), &Request{Adults: 1})

	assert.ErrorIs(t, err, ErrInternal)
}
