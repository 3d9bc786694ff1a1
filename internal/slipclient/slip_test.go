package slipclient

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	slip := Slip{
		EmployeeNumber:    "E001",
		DaysWorked:        30,
		BasicPay:          1000,
		GradePay:          200,
		DearnessAllowance: 150,
		DearnessPay:       100,
		HRA:               300,
		SpecialPay:        50,
		OtherAllowance:    25,
	}

	assert.Equal(t, 1825.0, Total(slip))
	assert.Equal(t, "1825.00", FormatTotal(Total(slip)))
}

func TestFormatTotal(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0.00"},
		{"float noise", 0.1 + 0.2, "0.30"},
		{"pads", 10.5, "10.50"},
		{"negative", -12.5, "-12.50"},
		{"nan", math.NaN(), "NaN"},
		{"infinity", math.Inf(1), "Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTotal(tt.in))
		})
	}
}

func TestDraftTotal(t *testing.T) {
	t.Run("blank inputs count as zero", func(t *testing.T) {
		d := Draft{BasicPay: "1000", HRA: "300"}
		assert.Equal(t, "1300.00", FormatTotal(DraftTotal(d)))
	})

	t.Run("non-numeric input poisons the total", func(t *testing.T) {
		d := Draft{BasicPay: "1000", GradePay: "abc"}
		assert.Equal(t, "NaN", FormatTotal(DraftTotal(d)))
	})

	t.Run("days worked is ignored", func(t *testing.T) {
		d := Draft{DaysWorked: "abc", BasicPay: "5"}
		assert.Equal(t, "5.00", FormatTotal(DraftTotal(d)))
	})
}

func TestToNumber(t *testing.T) {
	assert.Equal(t, 0.0, toNumber(""))
	assert.Equal(t, 0.0, toNumber("   "))
	assert.Equal(t, 12.5, toNumber(" 12.5 "))
	assert.Equal(t, 0.5, toNumber(".5"))
	assert.Equal(t, 5.0, toNumber("5."))
	assert.Equal(t, 1500.0, toNumber("1.5e3"))
	assert.Equal(t, 255.0, toNumber("0xff"))
	assert.True(t, math.IsInf(toNumber("-Infinity"), -1))

	for _, in := range []string{"abc", "1_000", "inf", "NaN", "1e", "+", "1.2.3", "0x"} {
		assert.True(t, math.IsNaN(toNumber(in)), in)
	}
}

func TestFilterByEmployeeNumber(t *testing.T) {
	slips := []Slip{
		{ID: "1", EmployeeNumber: "E007"},
		{ID: "2", EmployeeNumber: "E107"},
		{ID: "3", EmployeeNumber: "E001"},
	}

	for _, term := range []string{"E007", "e007"} {
		got := FilterByEmployeeNumber(slips, term)
		assert.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	}

	got := FilterByEmployeeNumber(slips, "07")
	assert.Equal(t, []string{"1", "2"}, ids(got))

	assert.Len(t, FilterByEmployeeNumber(slips, ""), 3)
	assert.Empty(t, FilterByEmployeeNumber(slips, "x"))
}

func TestDraftFromSlip(t *testing.T) {
	d := DraftFromSlip(Slip{ID: "abc", EmployeeNumber: "E001", DaysWorked: 30, BasicPay: 1000.5})

	assert.Equal(t, "abc", d.ID)
	assert.Equal(t, "E001", d.EmployeeNumber)
	assert.Equal(t, "30", d.DaysWorked)
	assert.Equal(t, "1000.5", d.BasicPay)
	assert.Equal(t, "0", d.HRA)
}

func ids(slips []Slip) []string {
	out := make([]string, 0, len(slips))
	for _, s := range slips {
		out = append(out, s.ID)
	}
	return out
}
