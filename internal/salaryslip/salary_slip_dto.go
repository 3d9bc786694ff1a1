package salaryslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amounts decode from a JSON number or a numeric string ("1000"), so form
// drafts can be posted as-is.

type CreateSalarySlipRequest struct {
	EmployeeNumber    string           `json:"employeeNumber" binding:"required"`
	DaysWorked        *decimal.Decimal `json:"daysWorked" binding:"required"`
	BasicPay          *decimal.Decimal `json:"basicPay" binding:"required"`
	GradePay          *decimal.Decimal `json:"gradePay" binding:"required"`
	DearnessAllowance *decimal.Decimal `json:"dearnessAllowance" binding:"required"`
	DearnessPay       *decimal.Decimal `json:"dearnessPay" binding:"required"`
	HRA               *decimal.Decimal `json:"hra" binding:"required"`
	SpecialPay        *decimal.Decimal `json:"specialPay" binding:"required"`
	OtherAllowance    *decimal.Decimal `json:"otherAllowance" binding:"required"`
}

// UpdateSalarySlipRequest is a partial body: nil fields are left untouched.
// id and createdAt are not bindable.
type UpdateSalarySlipRequest struct {
	EmployeeNumber    *string          `json:"employeeNumber"`
	DaysWorked        *decimal.Decimal `json:"daysWorked"`
	BasicPay          *decimal.Decimal `json:"basicPay"`
	GradePay          *decimal.Decimal `json:"gradePay"`
	DearnessAllowance *decimal.Decimal `json:"dearnessAllowance"`
	DearnessPay       *decimal.Decimal `json:"dearnessPay"`
	HRA               *decimal.Decimal `json:"hra"`
	SpecialPay        *decimal.Decimal `json:"specialPay"`
	OtherAllowance    *decimal.Decimal `json:"otherAllowance"`
}

// Columns maps the supplied fields to their column names.
func (r UpdateSalarySlipRequest) Columns() map[string]any {
	cols := make(map[string]any)
	if r.EmployeeNumber != nil {
		cols["employee_number"] = *r.EmployeeNumber
	}

	amounts := []struct {
		column string
		value  *decimal.Decimal
	}{
		{"days_worked", r.DaysWorked},
		{"basic_pay", r.BasicPay},
		{"grade_pay", r.GradePay},
		{"dearness_allowance", r.DearnessAllowance},
		{"dearness_pay", r.DearnessPay},
		{"hra", r.HRA},
		{"special_pay", r.SpecialPay},
		{"other_allowance", r.OtherAllowance},
	}
	for _, a := range amounts {
		if a.value != nil {
			cols[a.column] = *a.value
		}
	}
	return cols
}

type SalarySlipResponse struct {
	ID                string    `json:"id"`
	EmployeeNumber    string    `json:"employeeNumber"`
	DaysWorked        float64   `json:"daysWorked"`
	BasicPay          float64   `json:"basicPay"`
	GradePay          float64   `json:"gradePay"`
	DearnessAllowance float64   `json:"dearnessAllowance"`
	DearnessPay       float64   `json:"dearnessPay"`
	HRA               float64   `json:"hra"`
	SpecialPay        float64   `json:"specialPay"`
	OtherAllowance    float64   `json:"otherAllowance"`
	CreatedAt         time.Time `json:"createdAt"`
}
