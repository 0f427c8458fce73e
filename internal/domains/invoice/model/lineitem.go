package model

import (
	"passat/shared/model"

	"github.com/shopspring/decimal"
)

const (
	LineItemTableName  = "invoice_line_items"
	LineItemEntityName = "invoice_line_item"

	FieldLineItemID          = "id"
	FieldLineItemInvoiceID   = "invoice_id"
	FieldLineItemPosition    = "position"
	FieldLineItemDescription = "description"
	FieldLineItemQuantity    = "quantity"
	FieldLineItemUnitPrice   = "unit_price"
	FieldLineItemTotal       = "total"
)

// InvoiceLineItem is one billed position of an invoice: the room-nights line
// or the snapshot of an occupancy charge.
type InvoiceLineItem struct {
	ID          string          `db:"id"`
	InvoiceID   string          `db:"invoice_id"`
	Position    int             `db:"position"`
	Description string          `db:"description"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Total       decimal.Decimal `db:"total"`
	model.Metadata
}
