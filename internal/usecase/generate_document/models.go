package generate_document

import "github.com/m04kA/DLX-TourBookingService/internal/documents"

// Request запрос на генерацию документа
type Request struct {
	BookingID string
	Kind      documents.Kind
}

// Response сгенерированный документ
type Response struct {
	Number      string
	Filename    string
	ContentType string
	Content     []byte
}

const contentTypePDF = "application/pdf"
