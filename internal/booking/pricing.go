// Package booking holds the pure pieces of the booking workflow: submitted
// amount parsing and narrative assembly. Keeping them free of HTTP and
// storage concerns makes them directly testable.
package booking

import (
	"strconv"
	"strings"
)

// Amount parses a price component submitted by the client. The booking form
// historically sent prices as text and treated anything non-numeric as zero
// rather than rejecting the submission, so a parse failure yields 0, not an
// error. Valid numeric input is returned as-is.
func Amount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Total computes the estimated booking total from the submitted base price
// and add-on sum. The result is fixed on the booking at creation time and
// never recomputed afterwards.
func Total(basePrice, addonTotal string) (base, addons, total float64) {
	base = Amount(basePrice)
	addons = Amount(addonTotal)
	return base, addons, base + addons
}
