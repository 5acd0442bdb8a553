package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job is a submitted work record. Area, hours and fee are fixed-point values
// with two fractional digits.
type Job struct {
	ID          string
	JobNumber   string
	ClientName  string
	JobRef      string
	M2Area      decimal.Decimal
	HoursWorked decimal.Decimal
	DesignFee   decimal.Decimal
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	decimalScale     = 2
	decimalIntDigits = 8
)

// FitsColumn reports whether d can be stored without rounding in a
// decimal(10,2) column.
func FitsColumn(d decimal.Decimal) bool {
	if d.Exponent() < -decimalScale && !d.Equal(d.Round(decimalScale)) {
		return false
	}
	limit := decimal.New(1, decimalIntDigits)
	return d.Abs().LessThan(limit)
}
