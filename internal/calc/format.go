package calc

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// USD formats an amount as locale-grouped US dollars with zero decimal
// places, matching how the tools render currency.
func USD(amount float64) string {
	return "$" + humanize.CommafWithDigits(amount, 0)
}

// Percent formats a rate with two decimal places and a trailing % sign.
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}
