package domain

// Selection limits
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Party size limits
const (
	MinAdults   = 1
	MaxAdults   = 20
	MinChildren = 0
	MaxChildren = 10
)

// Pricing rules
const (
	// GroupDiscountThreshold group discount applies when travelers exceed this number
	GroupDiscountThreshold = 6
	GroupDiscountRate      = 0.10

	// ChildPackageRate children pay this share of the adult package price
	ChildPackageRate     = 0.7
	ChildrenDiscountRate = 0.30
)

// DefaultPackageServiceIDs services priced per traveler instead of per quantity
var DefaultPackageServiceIDs = []string{
	"classic-island-package",
	"adventure-week-package",
	"cultural-heritage-package",
}

// Validation constants
const (
	MaxCustomerNameLength    = 200
	MaxSpecialRequestsLength = 2000
	MinPhoneDigits           = 7
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses bookings in these statuses are excluded from active listings
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
