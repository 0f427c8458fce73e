package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passat/internal/domains/invoice/pdf"
)

func TestRender(t *testing.T) {
	doc := pdf.Document{
		InvoiceNumber: "RE-20260301-456",
		BookingNumber: "BU-20260301-123",
		IssueDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		RecipientName: "Erika Mustermann",
		Street:        "Heidestraße 17",
		PostalCode:    "10557",
		City:          "Berlin",
		Country:       "Deutschland",
		Total:         decimal.RequireFromString("417.00"),
		Comment:       "Zahlbar innerhalb von 14 Tagen.",
		Lines: []pdf.Line{
			{
				Position:    1,
				Description: "Raum 101 - 3 Nächte",
				Quantity:    3,
				UnitPrice:   decimal.RequireFromString("129.00"),
				Total:       decimal.RequireFromString("387.00"),
			},
			{
				Position:    2,
				Description: "Frühstück",
				Quantity:    2,
				UnitPrice:   decimal.RequireFromString("15.00"),
				Total:       decimal.RequireFromString("30.00"),
			},
		},
	}

	data, err := pdf.Render(doc)

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderWithoutLines(t *testing.T) {
	doc := pdf.Document{
		InvoiceNumber: "RE-20260301-457",
		IssueDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		RecipientName: "Erika Mustermann",
		Total:         decimal.Zero,
	}

	data, err := pdf.Render(doc)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
