// Package payslip renders payroll breakdowns as PDF documents.
package payslip

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// LineItem is one labelled amount on the payslip.
type LineItem struct {
	Name   string
	Amount decimal.Decimal
}

// Payslip carries everything the PDF needs; the caller resolves amounts
// beforehand so this package stays free of payroll rules.
type Payslip struct {
	CompanyName   string
	EmployeeName  string
	EmployeeEmail string
	Month         time.Month
	Year          int

	Components []LineItem
	Deductions []LineItem

	MonthlySalary decimal.Decimal
	PresentDays   int
	TotalDays     int
	PayableSalary decimal.Decimal
}

// SortedItems returns items ordered by name for a stable layout.
func SortedItems(items map[string]decimal.Decimal) []LineItem {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	sorted := make([]LineItem, 0, len(items))
	for _, name := range names {
		sorted = append(sorted, LineItem{Name: name, Amount: items[name]})
	}
	return sorted
}

// Render produces the PDF document as bytes.
func Render(p Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, p.CompanyName)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Payslip for %s %d", p.Month, p.Year))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", p.EmployeeName))
	pdf.Ln(6)
	if p.EmployeeEmail != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Email: %s", p.EmployeeEmail))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	renderSection(pdf, "Earnings", p.Components)
	renderSection(pdf, "Deductions", p.Deductions)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(120, 7, "Monthly salary")
	pdf.CellFormat(50, 7, p.MonthlySalary.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(6)
	pdf.Cell(120, 7, fmt.Sprintf("Payable days: %d of %d", p.PresentDays, p.TotalDays))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(120, 8, "Net payable")
	pdf.CellFormat(50, 8, p.PayableSalary.StringFixed(2), "T", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func renderSection(pdf *gofpdf.Fpdf, title string, items []LineItem) {
	if len(items) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		pdf.Cell(120, 6, item.Name)
		pdf.CellFormat(50, 6, item.Amount.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.Ln(5)
	}
	pdf.Ln(4)
}
