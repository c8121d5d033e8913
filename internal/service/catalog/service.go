package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	catalogRepo "github.com/m04kA/DLX-TourBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/DLX-TourBookingService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// List возвращает активные услуги каталога
// Опционально фильтрует по категории
func (s *Service) List(ctx context.Context, category *string) (*models.ServiceListResponse, error) {
	filter := domain.CatalogFilter{OnlyActive: true}

	if category != nil {
		c := domain.ServiceCategory(*category)
		if !c.IsValid() {
			s.logger.Warn("List: invalid category=%s", *category)
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *category)
		}
		filter.Category = &c
	}

	services, err := s.catalogRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetByID возвращает услугу по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ServiceResponse, error) {
	service, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// Snapshot возвращает весь каталог (включая неактивные услуги) для расчёта цены
func (s *Service) Snapshot(ctx context.Context) (domain.Catalog, error) {
	services, err := s.catalogRepo.List(ctx, domain.CatalogFilter{})
	if err != nil {
		s.logger.Error("Snapshot: repository error: %v", err)
		return nil, fmt.Errorf("%w: Snapshot - repository error: %v", ErrInternal, err)
	}
	return domain.NewCatalog(services), nil
}

