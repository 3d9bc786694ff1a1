package slipclient

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Slip is a salary slip as served by the API.
type Slip struct {
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

// Draft holds the form inputs verbatim. ID is set only while editing.
type Draft struct {
	ID                string `json:"-"`
	EmployeeNumber    string `json:"employeeNumber"`
	DaysWorked        string `json:"daysWorked"`
	BasicPay          string `json:"basicPay"`
	GradePay          string `json:"gradePay"`
	DearnessAllowance string `json:"dearnessAllowance"`
	DearnessPay       string `json:"dearnessPay"`
	HRA               string `json:"hra"`
	SpecialPay        string `json:"specialPay"`
	OtherAllowance    string `json:"otherAllowance"`
}

// DraftFromSlip copies a listed record into form inputs.
func DraftFromSlip(s Slip) Draft {
	return Draft{
		ID:                s.ID,
		EmployeeNumber:    s.EmployeeNumber,
		DaysWorked:        formatNumber(s.DaysWorked),
		BasicPay:          formatNumber(s.BasicPay),
		GradePay:          formatNumber(s.GradePay),
		DearnessAllowance: formatNumber(s.DearnessAllowance),
		DearnessPay:       formatNumber(s.DearnessPay),
		HRA:               formatNumber(s.HRA),
		SpecialPay:        formatNumber(s.SpecialPay),
		OtherAllowance:    formatNumber(s.OtherAllowance),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s Slip) payComponents() []float64 {
	return []float64{
		s.BasicPay,
		s.GradePay,
		s.DearnessAllowance,
		s.DearnessPay,
		s.HRA,
		s.SpecialPay,
		s.OtherAllowance,
	}
}

// Total sums the seven pay components. Days worked is not part of it.
func Total(s Slip) float64 {
	var total float64
	for _, v := range s.payComponents() {
		total += v
	}
	return total
}

// DraftTotal sums the draft's pay inputs. Blank inputs count as zero and any
// non-numeric input makes the whole total NaN.
func DraftTotal(d Draft) float64 {
	var total float64
	for _, v := range []string{
		d.BasicPay,
		d.GradePay,
		d.DearnessAllowance,
		d.DearnessPay,
		d.HRA,
		d.SpecialPay,
		d.OtherAllowance,
	} {
		total += toNumber(v)
	}
	return total
}

// FormatTotal renders a total with exactly two decimals.
func FormatTotal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FilterByEmployeeNumber keeps the slips whose employee number contains term,
// ignoring case. An empty term keeps everything.
func FilterByEmployeeNumber(slips []Slip, term string) []Slip {
	needle := strings.ToLower(term)
	out := make([]Slip, 0, len(slips))
	for _, s := range slips {
		if strings.Contains(strings.ToLower(s.EmployeeNumber), needle) {
			out = append(out, s)
		}
	}
	return out
}

// toNumber coerces a form input the way a browser number field reports it.
func toNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	if !isDecimalLiteral(s) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range still yields ±Inf from ParseFloat
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

// isDecimalLiteral accepts [+-]digits[.digits][e[+-]digits] with at least
// one mantissa digit, rejecting the extra forms strconv allows.
func isDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
