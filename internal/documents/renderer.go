// Package documents renders booking invoices and tickets as PDF.
package documents

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

// Kind document kind
type Kind string

const (
	KindInvoice Kind = "invoice"
	KindTicket  Kind = "ticket"
)

// IsValid checks the document kind
func (k Kind) IsValid() bool {
	return k == KindInvoice || k == KindTicket
}

var (
	// ErrMissingNumber the booking id has no hex prefix, so no document number can be derived
	ErrMissingNumber = errors.New("documents: cannot derive document number")

	// ErrRender gofpdf failed to produce the document
	ErrRender = errors.New("documents: render failed")
)

const defaultCurrency = "EUR"

// Issuer agency details printed in the document header
type Issuer struct {
	Name     string
	Address  string
	Email    string
	Phone    string
	Currency string
}

// Document rendered PDF with its number
type Document struct {
	Kind     Kind
	Number   string
	Filename string
	Content  []byte
}

// Renderer builds PDFs with gofpdf
type Renderer struct {
	issuer   Issuer
	compress bool
}

// NewRenderer creates a renderer. Empty currency defaults to EUR
func NewRenderer(issuer Issuer) *Renderer {
	if issuer.Currency == "" {
		issuer.Currency = defaultCurrency
	}
	return &Renderer{issuer: issuer, compress: true}
}

// WithoutCompression leaves page streams uncompressed so the text is searchable in tests
func (r *Renderer) WithoutCompression() *Renderer {
	r.compress = false
	return r
}

// Invoice renders the invoice for a booking
func (r *Renderer) Invoice(b *domain.Booking, issuedAt time.Time) (*Document, error) {
	number := b.InvoiceNumber()
	if number == "" {
		return nil, fmt.Errorf("%w: booking %q", ErrMissingNumber, b.ID)
	}

	pdf, tr := r.newPDF("Invoice " + number)

	r.header(pdf, tr, "INVOICE")
	r.keyValues(pdf, tr, [][2]string{
		{"Invoice No", number},
		{"Booking Ref", b.Reference()},
		{"Issued", issuedAt.UTC().Format("2006-01-02")},
		{"Payment", string(b.PaymentStatus)},
	})

	r.section(pdf, tr, "Bill to")
	r.customer(pdf, tr, b.Customer)
	r.section(pdf, tr, "Trip")
	r.trip(pdf, tr, b.Trip)

	r.section(pdf, tr, "Services")
	r.lines(pdf, tr, b.Services)
	r.totals(pdf, tr, b.Breakdown())

	if b.SpecialRequests != nil && *b.SpecialRequests != "" {
		r.section(pdf, tr, "Special requests")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(*b.SpecialRequests), "", "", false)
	}

	return r.output(pdf, KindInvoice, number)
}

// Ticket renders the travel ticket for a booking
func (r *Renderer) Ticket(b *domain.Booking, issuedAt time.Time) (*Document, error) {
	number := b.TicketNumber()
	if number == "" {
		return nil, fmt.Errorf("%w: booking %q", ErrMissingNumber, b.ID)
	}

	pdf, tr := r.newPDF("Ticket " + number)

	r.header(pdf, tr, "E-TICKET")
	r.keyValues(pdf, tr, [][2]string{
		{"Ticket No", number},
		{"Booking Ref", b.Reference()},
		{"Issued", issuedAt.UTC().Format("2006-01-02")},
		{"Status", string(b.Status)},
	})

	r.section(pdf, tr, "Lead traveler")
	r.customer(pdf, tr, b.Customer)
	r.section(pdf, tr, "Trip")
	r.trip(pdf, tr, b.Trip)

	r.section(pdf, tr, "Included services")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range b.Services {
		pdf.Cell(0, 6, tr(fmt.Sprintf("- %s x%d", line.Name, line.Quantity)))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr("Please present this ticket with a photo ID at check-in."), "", "", false)

	return r.output(pdf, KindTicket, number)
}

func (r *Renderer) newPDF(title string) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetTitle(title, true)
	pdf.SetAuthor(r.issuer.Name, true)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	// Core fonts are cp1252; translate UTF-8 input
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

func (r *Renderer) header(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, tr(r.issuer.Name))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range []string{r.issuer.Address, r.issuer.Email, r.issuer.Phone} {
		if line == "" {
			continue
		}
		pdf.Cell(0, 5, tr(line))
		pdf.Ln(5)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
}

func (r *Renderer) keyValues(pdf *gofpdf.Fpdf, tr func(string) string, rows [][2]string) {
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 6, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, tr(row[1]), "", 1, "L", false, 0, "")
	}
}

func (r *Renderer) section(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr(title))
	pdf.Ln(8)
}

func (r *Renderer) customer(pdf *gofpdf.Fpdf, tr func(string) string, c domain.Customer) {
	rows := [][2]string{
		{"Name", c.Name},
		{"Email", c.Email},
		{"Phone", c.Phone},
	}
	if c.Country != "" {
		rows = append(rows, [2]string{"Country", c.Country})
	}
	r.keyValues(pdf, tr, rows)
}

func (r *Renderer) trip(pdf *gofpdf.Fpdf, tr func(string) string, t domain.TripDetails) {
	r.keyValues(pdf, tr, [][2]string{
		{"Dates", formatDates(t)},
		{"Travelers", fmt.Sprintf("%d adults, %d children", t.Adults, t.Children)},
	})
}

func (r *Renderer) lines(pdf *gofpdf.Fpdf, tr func(string) string, lines []domain.PriceLine) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(95, 7, "Service", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(32, 7, "Unit price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(33, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		name := line.Name
		if line.IsPackage {
			name += " (package)"
		}
		pdf.CellFormat(95, 7, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(32, 7, r.money(line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(33, 7, r.money(line.LineTotal), "1", 1, "R", false, 0, "")
	}
}

func (r *Renderer) totals(pdf *gofpdf.Fpdf, tr func(string) string, b domain.PriceBreakdown) {
	pdf.Ln(3)
	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(147, 7, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(33, 7, value, "", 1, "R", false, 0, "")
	}

	row("Subtotal", r.money(b.Subtotal), false)
	if b.GroupDiscount > 0 {
		row("Group discount", "-"+r.money(b.GroupDiscount), false)
	}
	if b.ChildrenDiscount > 0 {
		row("Children discount", "-"+r.money(b.ChildrenDiscount), false)
	}
	row("Total", r.money(b.FinalTotal), true)
}

func (r *Renderer) output(pdf *gofpdf.Fpdf, kind Kind, number string) (*Document, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrRender, kind, number, err)
	}
	return &Document{
		Kind:     kind,
		Number:   number,
		Filename: fmt.Sprintf("%s-%s.pdf", kind, number),
		Content:  buf.Bytes(),
	}, nil
}

func (r *Renderer) money(amount float64) string {
	return FormatMoney(amount, r.issuer.Currency)
}

// FormatMoney prints an amount with 2 decimals and thousands separators, e.g. "1,234.50 EUR"
func FormatMoney(amount float64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	text := fmt.Sprintf("%.2f", amount)
	intPart, frac, _ := strings.Cut(text, ".")

	var grouped strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(c)
	}

	return fmt.Sprintf("%s%s.%s %s", sign, grouped.String(), frac, currency)
}

func formatDates(t domain.TripDetails) string {
	if t.StartDate == nil {
		return "-"
	}
	start := t.StartDate.Format(domain.DateFormat)
	if t.EndDate == nil || t.EndDate.Equal(*t.StartDate) {
		return start
	}
	return start + " - " + t.EndDate.Format(domain.DateFormat)
}
