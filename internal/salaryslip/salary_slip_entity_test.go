package salaryslip_test

import (
	"encoding/json"
	"testing"

	"go-salaryslip/internal/salaryslip"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSalarySlip_Total(t *testing.T) {
	slip := salaryslip.SalarySlip{
		BasicPay:          decimal.RequireFromString("1000"),
		GradePay:          decimal.RequireFromString("200"),
		DearnessAllowance: decimal.RequireFromString("150"),
		DearnessPay:       decimal.RequireFromString("50"),
		HRA:               decimal.RequireFromString("300"),
		SpecialPay:        decimal.RequireFromString("100"),
		OtherAllowance:    decimal.RequireFromString("25"),
		DaysWorked:        decimal.RequireFromString("999"),
	}

	assert.Equal(t, "1825.00", slip.Total().StringFixed(2))
}

func TestUpdateSalarySlipRequest_Columns(t *testing.T) {
	var req salaryslip.UpdateSalarySlipRequest
	err := json.Unmarshal([]byte(`{"employeeNumber":"E9","hra":"12.5","specialPay":3}`), &req)
	assert.NoError(t, err)

	cols := req.Columns()

	assert.Len(t, cols, 3)
	assert.Equal(t, "E9", cols["employee_number"])
	assert.Equal(t, "12.5", cols["hra"].(decimal.Decimal).String())
	assert.Equal(t, "3", cols["special_pay"].(decimal.Decimal).String())
}
