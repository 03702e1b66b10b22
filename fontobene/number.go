package fontobene

import (
	"fmt"
	"math"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of decimals of FontoBene numbers.
const Precision = 2

// Number formats a coordinate, angle or advance value in the compact decimal
// form of FontoBene: rounded to two decimals, without trailing zeros, without
// a decimal point for integral values, and with the redundant leading zero
// before the decimal point stripped ("0.5" becomes ".5", "-0.5" becomes
// "-.5"). The output is locale-independent.
func Number(f float64) string {
	f = math.Round(f*100.0) / 100.0
	if f == 0.0 {
		// also catches negative zero
		return "0"
	}
	// rounding is done above; Decimal's precision counts significant digits,
	// so pass 0 to keep all digits and only strip the redundant zeros
	return string(minify.Decimal([]byte(fmt.Sprintf("%.*f", Precision, f)), 0))
}
