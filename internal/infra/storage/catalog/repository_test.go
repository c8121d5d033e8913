package catalog

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	"github.com/m04kA/DLX-TourBookingService/pkg/dbmetrics"
	"github.com/m04kA/DLX-TourBookingService/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func serviceRows() *sqlmock.Rows {
	return sqlmock.NewRows(serviceColumns).
		AddRow("classic-island-package", "Classic Island", "Seven islands in seven days", 450.0, "activity",
			"7 days", "Azores", int64(20), []byte(`{"Boat trip","Whale watching"}`), []byte(`{Lunch}`), true).
		AddRow("hotel-ocean", "Ocean Hotel", nil, 120.0, "accommodation",
			nil, nil, int64(4), nil, nil, true)
}

func TestList_ByCategory(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE category = $1 AND is_active = $2 ORDER BY category ASC, name ASC")).
		WithArgs("activity", true).
		WillReturnRows(serviceRows())

	services, err := repo.List(context.Background(), domain.CatalogFilter{
		Category:   ptr.Ptr(domain.CategoryActivity),
		OnlyActive: true,
	})

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, []string{"Boat trip", "Whale watching"}, services[0].Highlights)
	assert.Equal(t, []string{"Lunch"}, services[0].Includes)
	assert.Equal(t, domain.CategoryActivity, services[0].Category)
	assert.Equal(t, 20, services[0].MaxParticipants)
	assert.Empty(t, services[1].Description)
	assert.Nil(t, services[1].Highlights)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDs(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id IN ($1,$2) ORDER BY id ASC")).
		WithArgs("classic-island-package", "hotel-ocean").
		WillReturnRows(serviceRows())

	services, err := repo.GetByIDs(context.Background(), []string{"classic-island-package", "hotel-ocean"})

	require.NoError(t, err)
	assert.Len(t, services, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDs_EmptySkipsQuery(t *testing.T) {
	repo, mock := newRepo(t)

	services, err := repo.GetByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, services)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("FROM services WHERE id").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(serviceColumns))

	_, err := repo.GetByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestList_QueryError(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("FROM services").WillReturnError(assert.AnError)

	_, err := repo.List(context.Background(), domain.CatalogFilter{})

	assert.ErrorIs(t, err, ErrExecQuery)
}
