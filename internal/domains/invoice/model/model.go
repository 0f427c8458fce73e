package model

import (
	"time"

	"passat/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID            = "id"
	FieldInvoiceNumber = "invoice_number"
	FieldBookingID     = "booking_id"
	FieldIssueDate     = "issue_date"
	FieldDueDate       = "due_date"
	FieldStatus        = "status"
	FieldTotal         = "total"
	FieldComment       = "comment"
)

const (
	StatusDraft     = "draft"
	StatusFinalized = "finalized"
	StatusPaid      = "paid"
)

// statusRank orders the invoice lifecycle. Transitions may only move forward:
// draft -> finalized -> paid.
var statusRank = map[string]int{
	StatusDraft:     0,
	StatusFinalized: 1,
	StatusPaid:      2,
}

// IsForwardTransition reports whether moving from one status to the next is a
// legal forward step. Only adjacent steps are allowed: an invoice cannot jump
// from draft straight to paid, since finalizing is what archives the document
// and announces it.
func IsForwardTransition(from, to string) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}

	toRank, ok := statusRank[to]
	if !ok {
		return false
	}

	return toRank == fromRank+1
}

// Invoice bills a booking. Its line items and total are a snapshot taken at
// creation time and are not kept in sync with later booking changes.
type Invoice struct {
	ID            string          `db:"id"`
	InvoiceNumber string          `db:"invoice_number"`
	BookingID     string          `db:"booking_id"`
	IssueDate     time.Time       `db:"issue_date"`
	DueDate       time.Time       `db:"due_date"`
	Status        string          `db:"status"`
	Total         decimal.Decimal `db:"total"`
	Comment       string          `db:"comment"`

	BookingNumber      string `db:"booking_number"       table:"bookings"  column:"booking_number"`
	CustomerFirstName  string `db:"customer_first_name"  table:"customers" column:"first_name"`
	CustomerLastName   string `db:"customer_last_name"   table:"customers" column:"last_name"`
	CustomerStreet     string `db:"customer_street"      table:"customers" column:"street"`
	CustomerPostalCode string `db:"customer_postal_code" table:"customers" column:"postal_code"`
	CustomerCity       string `db:"customer_city"        table:"customers" column:"city"`
	CustomerCountry    string `db:"customer_country"     table:"customers" column:"country"`
	model.Metadata
}

func (Invoice) GetJoinQuery() string {
	return `LEFT JOIN bookings ON bookings.id = invoices.booking_id
		LEFT JOIN customers ON customers.id = bookings.customer_id`
}

func (i *Invoice) CustomerFullName() string {
	return i.CustomerFirstName + " " + i.CustomerLastName
}
