// Package numeric provides a missing-tolerant numeric type for financial
// line items plus common numeric utility functions.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/finflags/flag-probe/pkg/constants"
)

// Amount is an optional numeric value. A missing or malformed line item
// unmarshals to an absent Amount; both absent and zero surface as 0 through
// OrZero but remain distinguishable via Present.
type Amount struct {
	value   float64
	present bool
}

// FromFloat returns a present Amount holding v.
func FromFloat(v float64) Amount {
	return Amount{value: v, present: true}
}

// Absent returns an Amount carrying no value.
func Absent() Amount {
	return Amount{}
}

// Present reports whether the amount carried a usable numeric value.
func (a Amount) Present() bool {
	return a.present
}

// OrZero returns the held value, or 0 when absent.
func (a Amount) OrZero() float64 {
	if !a.present {
		return 0
	}
	return a.value
}

// UnmarshalJSON accepts JSON numbers and numeric strings. Any other token
// (non-numeric string, bool, null, object, array) leaves the Amount absent
// rather than failing the whole record.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*a = Amount{}
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Amount{}
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			*a = Amount{}
			return nil
		}
		*a = Amount{value: parsed, present: true}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*a = Amount{}
		return nil
	}
	*a = Amount{value: f, present: true}
	return nil
}

// MarshalJSON writes the held value, or null when absent.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.present {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}
