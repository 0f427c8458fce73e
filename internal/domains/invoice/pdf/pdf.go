// Package pdf renders an invoice into a paginated A4 document: header,
// invoice number and dates, customer address block, line-item table and the
// grand total.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"passat/shared/constant"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	pageMargin  = 20.0
	lineHeight  = 6.0
	tableTop    = 110.0
	fontDefault = "Helvetica"
)

type Line struct {
	Position    int
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

type Document struct {
	InvoiceNumber string
	BookingNumber string
	IssueDate     time.Time
	DueDate       time.Time
	RecipientName string
	Street        string
	PostalCode    string
	City          string
	Country       string
	Lines         []Line
	Total         decimal.Decimal
	Comment       string
}

// Render produces the PDF bytes for an invoice document.
func Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	translate := pdf.UnicodeTranslatorFromDescriptor("")

	writeHeader(pdf, translate, doc)
	writeAddressBlock(pdf, translate, doc)
	writeMetaBlock(pdf, translate, doc)
	writeLineTable(pdf, translate, doc)
	writeTotal(pdf, translate, doc)

	if doc.Comment != "" {
		pdf.Ln(lineHeight * 2)
		pdf.SetFont(fontDefault, "I", 9)
		pdf.MultiCell(0, lineHeight-1, translate(doc.Comment), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func writeHeader(pdf *gofpdf.Fpdf, translate func(string) string, doc Document) {
	pdf.SetFont(fontDefault, "B", 18)
	pdf.CellFormat(0, 10, translate("Rechnung "+doc.InvoiceNumber), "", 1, "L", false, 0, "")
	pdf.SetFont(fontDefault, "", 10)
	pdf.CellFormat(0, lineHeight, translate("Buchung "+doc.BookingNumber), "", 1, "L", false, 0, "")
}

func writeAddressBlock(pdf *gofpdf.Fpdf, translate func(string) string, doc Document) {
	pdf.SetXY(pageMargin, 55)
	pdf.SetFont(fontDefault, "", 11)

	for _, line := range []string{
		doc.RecipientName,
		doc.Street,
		doc.PostalCode + " " + doc.City,
		doc.Country,
	} {
		pdf.CellFormat(0, lineHeight, translate(line), "", 1, "L", false, 0, "")
	}
}

func writeMetaBlock(pdf *gofpdf.Fpdf, translate func(string) string, doc Document) {
	pdf.SetXY(130, 55)
	pdf.SetFont(fontDefault, "", 10)
	pdf.CellFormat(0, lineHeight, translate("Rechnungsdatum: "+doc.IssueDate.Format(constant.DateOnlyFormat)), "", 1, "L", false, 0, "")
	pdf.SetX(130)
	pdf.CellFormat(0, lineHeight, translate("Fällig am: "+doc.DueDate.Format(constant.DateOnlyFormat)), "", 1, "L", false, 0, "")
}

func writeLineTable(pdf *gofpdf.Fpdf, translate func(string) string, doc Document) {
	widths := []float64{12, 93, 15, 25, 25}
	headers := []string{"Pos", "Beschreibung", "Menge", "Einzelpreis", "Gesamt"}
	aligns := []string{"C", "L", "C", "R", "R"}

	pdf.SetXY(pageMargin, tableTop)
	pdf.SetFont(fontDefault, "B", 10)
	pdf.SetFillColor(230, 230, 230)

	for i, header := range headers {
		pdf.CellFormat(widths[i], lineHeight+1, translate(header), "1", 0, aligns[i], true, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetFont(fontDefault, "", 10)

	for _, line := range doc.Lines {
		cells := []string{
			fmt.Sprintf("%d", line.Position),
			line.Description,
			fmt.Sprintf("%d", line.Quantity),
			formatAmount(line.UnitPrice),
			formatAmount(line.Total),
		}

		for i, cell := range cells {
			pdf.CellFormat(widths[i], lineHeight+1, translate(cell), "1", 0, aligns[i], false, 0, "")
		}

		pdf.Ln(-1)
	}
}

func writeTotal(pdf *gofpdf.Fpdf, translate func(string) string, doc Document) {
	pdf.SetFont(fontDefault, "B", 11)
	pdf.CellFormat(120, lineHeight+2, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(25, lineHeight+2, translate("Gesamtbetrag"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(25, lineHeight+2, translate(formatAmount(doc.Total)), "1", 1, "R", false, 0, "")
}

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " €"
}
