package game

import (
	"fmt"
	"math"
)

// Chips is a monetary amount in integer minor units (cents). All chip
// arithmetic inside the engine is integral; floating point appears only at
// the configuration and display boundaries.
type Chips int64

// ChipsFromFloat converts a decimal currency amount (e.g. from a config
// file) to minor units, rounding to the nearest cent.
func ChipsFromFloat(v float64) Chips {
	return Chips(math.Round(v * 100))
}

// Float returns the decimal currency value of the amount
func (c Chips) Float() float64 {
	return float64(c) / 100
}

// String formats the amount as dollars and cents (e.g. "$1.50")
func (c Chips) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}
