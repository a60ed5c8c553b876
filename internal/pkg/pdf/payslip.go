package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PayslipData carries everything a rendered payslip shows. Callers map
// their payout rows into it so this package stays free of domain imports.
type PayslipData struct {
	CompanyName  string
	EmployeeName string
	Department   string
	Designation  string
	Month        time.Month
	Year         int

	BasicSalary          decimal.Decimal
	WorkingDays          int
	LateDays             int
	LateDeduction        decimal.Decimal
	AbsentDays           int
	AbsentDeduction      decimal.Decimal
	UnpaidLeaveDays      int
	UnpaidLeaveDeduction decimal.Decimal
	TotalDeductions      decimal.Decimal
	NetSalary            decimal.Decimal
}

// RenderPayslip writes a single-page A4 payslip PDF to w.
func RenderPayslip(w io.Writer, data PayslipData) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(40, 10, "Payslip")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 8, data.CompanyName)
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Employee: %s", data.EmployeeName))
	doc.Ln(7)
	if data.Department != "" || data.Designation != "" {
		doc.Cell(0, 8, fmt.Sprintf("%s / %s", data.Department, data.Designation))
		doc.Ln(7)
	}
	doc.Cell(0, 8, fmt.Sprintf("Period: %s %d", data.Month.String(), data.Year))
	doc.Ln(10)

	doc.Cell(0, 8, fmt.Sprintf("Basic salary: %s", data.BasicSalary.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Working days: %d", data.WorkingDays))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Late days: %d (deduction %s)", data.LateDays, data.LateDeduction.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Absent days: %d (deduction %s)", data.AbsentDays, data.AbsentDeduction.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Unpaid leave days: %d (deduction %s)", data.UnpaidLeaveDays, data.UnpaidLeaveDeduction.StringFixed(2)))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, fmt.Sprintf("Total deductions: %s", data.TotalDeductions.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Net salary: %s", data.NetSalary.StringFixed(2)))

	return doc.Output(w)
}
