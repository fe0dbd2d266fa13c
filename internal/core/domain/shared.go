package domain

import (
	"fmt"
	"math"
)

// Amount is a money value in kopecks. Keeping prices integral avoids
// float drift when rows round-trip through the NUMERIC(10,2) column.
type Amount int64

func NewAmountFromKopecks(kopecks int64) Amount {
	return Amount(kopecks)
}

// AmountFromFloat converts a two-decimal price into kopecks.
// Callers validate precision with ValidatePrice before converting.
func AmountFromFloat(value float64) Amount {
	return Amount(math.Round(value * 100))
}

func (a Amount) Float() float64 {
	return float64(a) / 100
}

func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", int64(a)/100, int64(a)%100)
}

// FieldError is a single violated rule attached to the form field that
// caused it. The same values travel through the API error body and back
// onto the client form.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}
