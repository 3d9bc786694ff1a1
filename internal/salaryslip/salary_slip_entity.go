package salaryslip

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalarySlip struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeNumber    string          `gorm:"size:64;not null;index"`
	DaysWorked        decimal.Decimal `gorm:"type:numeric;not null"`
	BasicPay          decimal.Decimal `gorm:"type:numeric;not null"`
	GradePay          decimal.Decimal `gorm:"type:numeric;not null"`
	DearnessAllowance decimal.Decimal `gorm:"type:numeric;not null"`
	DearnessPay       decimal.Decimal `gorm:"type:numeric;not null"`
	HRA               decimal.Decimal `gorm:"column:hra;type:numeric;not null"`
	SpecialPay        decimal.Decimal `gorm:"type:numeric;not null"`
	OtherAllowance    decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt         time.Time       `gorm:"autoCreateTime;index"`
}

func (SalarySlip) TableName() string {
	return "salary_slips"
}

// PayComponents returns the seven amounts that make up the total, in display order.
func (s SalarySlip) PayComponents() []decimal.Decimal {
	return []decimal.Decimal{
		s.BasicPay,
		s.GradePay,
		s.DearnessAllowance,
		s.DearnessPay,
		s.HRA,
		s.SpecialPay,
		s.OtherAllowance,
	}
}

func (s SalarySlip) Total() decimal.Decimal {
	return decimal.Sum(decimal.Zero, s.PayComponents()...)
}
