package internal

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

type Decimal struct {
	value apd.Decimal
}

func NewDecimal(s string) (Decimal, error) {
	var d apd.Decimal
	_, _, err := d.SetString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal: %w", err)
	}
	return Decimal{value: d}, nil
}

// NewDecimalFromCell parses a spreadsheet cell into a Decimal, tolerating
// thousands separators. Blank cells and cells that fail to parse become
// zero: a missing forecast value is zero volume, not an error.
func NewDecimalFromCell(cell string) Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if cleaned == "" {
		return Decimal{}
	}
	d, err := NewDecimal(cleaned)
	if err != nil {
		return Decimal{}
	}
	return d
}

func NewDecimalFromInt64(i int64) Decimal {
	var d apd.Decimal
	d.SetInt64(i)
	return Decimal{value: d}
}

func (d Decimal) String() string {
	return d.value.String()
}

func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

func (d Decimal) IsNegative() bool {
	return d.value.Negative && !d.value.IsZero()
}

func (d Decimal) Cmp(other Decimal) int {
	return d.value.Cmp(&other.value)
}

// Add returns the sum of d and other.
func (d Decimal) Add(other Decimal) Decimal {
	var result apd.Decimal
	ctx := apd.BaseContext.WithPrecision(34)
	ctx.Add(&result, &d.value, &other.value)
	return Decimal{value: result}
}

// Sub returns the difference of d minus other.
func (d Decimal) Sub(other Decimal) Decimal {
	var result apd.Decimal
	ctx := apd.BaseContext.WithPrecision(34)
	ctx.Sub(&result, &d.value, &other.value)
	return Decimal{value: result}
}

// Div returns the quotient of d divided by other.
func (d Decimal) Div(other Decimal) Decimal {
	var result apd.Decimal
	ctx := apd.BaseContext.WithPrecision(34)
	ctx.Quo(&result, &d.value, &other.value)
	return Decimal{value: result}
}

// Float64 returns the nearest float64 representation of d.
func (d Decimal) Float64() float64 {
	f, err := d.value.Float64()
	if err != nil {
		return 0
	}
	return f
}

// ShareOf returns d divided by total as a float64 ratio. A zero total
// yields exactly 0 rather than NaN or infinity: a group with no volume
// has no shares.
func (d Decimal) ShareOf(total Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return d.Div(total).Float64()
}
