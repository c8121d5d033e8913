package domain

// ServiceCategory category of a bookable service
type ServiceCategory string

const (
	CategoryAccommodation ServiceCategory = "accommodation"
	CategoryTransport     ServiceCategory = "transport"
	CategoryActivity      ServiceCategory = "activity"
	CategoryGuide         ServiceCategory = "guide"
	CategoryMeal          ServiceCategory = "meal"
)

// ServiceCategories all known categories in display order
var ServiceCategories = []ServiceCategory{
	CategoryAccommodation,
	CategoryTransport,
	CategoryActivity,
	CategoryGuide,
	CategoryMeal,
}

// IsValid returns true if the category is one of the known categories
func (c ServiceCategory) IsValid() bool {
	for _, known := range ServiceCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Service represents a bookable catalog entry. Immutable once loaded
type Service struct {
	ID              string
	Name            string
	Description     string
	BasePrice       float64
	Category        ServiceCategory
	DurationLabel   string
	Location        string
	MaxParticipants int
	Highlights      []string
	Includes        []string
	IsActive        bool
}

// Catalog services indexed by id
type Catalog map[string]Service

// NewCatalog indexes services by id
func NewCatalog(services []*Service) Catalog {
	catalog := make(Catalog, len(services))
	for _, s := range services {
		if s != nil {
			catalog[s.ID] = *s
		}
	}
	return catalog
}

// Lookup returns the service with the given id
func (c Catalog) Lookup(id string) (Service, bool) {
	s, ok := c[id]
	return s, ok
}

// CatalogFilter filter for listing catalog services
type CatalogFilter struct {
	Category   *ServiceCategory
	OnlyActive bool
}
