package models

import "github.com/m04kA/DLX-TourBookingService/internal/domain"

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	BasePrice       float64  `json:"basePrice"`
	Category        string   `json:"category"`
	DurationLabel   string   `json:"durationLabel,omitempty"`
	Location        string   `json:"location,omitempty"`
	MaxParticipants int      `json:"maxParticipants"`
	Highlights      []string `json:"highlights"`
	Includes        []string `json:"includes"`
	IsActive        bool     `json:"isActive"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		BasePrice:       s.BasePrice,
		Category:        string(s.Category),
		DurationLabel:   s.DurationLabel,
		Location:        s.Location,
		MaxParticipants: s.MaxParticipants,
		Highlights:      nonNil(s.Highlights),
		Includes:        nonNil(s.Includes),
		IsActive:        s.IsActive,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, s := range services {
		if item := FromDomainService(s); item != nil {
			resp.Services = append(resp.Services, *item)
		}
	}

	return resp
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
