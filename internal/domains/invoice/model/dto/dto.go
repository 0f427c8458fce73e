package dto

import (
	"passat/internal/domains/invoice/model"
	"passat/shared"
	"passat/shared/constant"
	gDto "passat/shared/dto"

	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	DueDate   string `json:"due_date"   validate:"omitempty,date"`
	Comment   string `json:"comment"    validate:"omitempty,max=1000"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=finalized paid"`
}

type LineItemResponse struct {
	ID          string          `json:"id"`
	Position    int             `json:"position"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

func (r *LineItemResponse) FromModel(mod model.InvoiceLineItem) {
	r.ID = mod.ID
	r.Position = mod.Position
	r.Description = mod.Description
	r.Quantity = mod.Quantity
	r.UnitPrice = mod.UnitPrice
	r.Total = mod.Total
}

type InvoiceResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	BookingID     string             `json:"booking_id"`
	BookingNumber string             `json:"booking_number"`
	CustomerName  string             `json:"customer_name"`
	IssueDate     string             `json:"issue_date"`
	DueDate       string             `json:"due_date"`
	Status        string             `json:"status"`
	Total         decimal.Decimal    `json:"total"`
	Comment       string             `json:"comment"`
	LineItems     []LineItemResponse `json:"line_items,omitempty"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModel(mod model.Invoice) {
	r.ID = mod.ID
	r.InvoiceNumber = mod.InvoiceNumber
	r.BookingID = mod.BookingID
	r.BookingNumber = mod.BookingNumber
	r.CustomerName = mod.CustomerFullName()
	r.IssueDate = mod.IssueDate.Format(constant.DateOnlyFormat)
	r.DueDate = mod.DueDate.Format(constant.DateOnlyFormat)
	r.Status = mod.Status
	r.Total = mod.Total
	r.Comment = mod.Comment
	r.Metadata.FromModel(mod.Metadata)
}

func (r *InvoiceResponse) WithLineItems(models []model.InvoiceLineItem) {
	r.LineItems = make([]LineItemResponse, len(models))
	for i, mod := range models {
		r.LineItems[i].FromModel(mod)
	}
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod)
	}
}
