package view

import (
	"math"
	"strconv"
	"strings"

	"collection-orders/internal/model"
)

// minorUnitThreshold is the cutoff of the unit-detection heuristic: stored
// amounts above it are assumed to be kopecks and divided by 100 before
// display. Amounts at or below it are taken as rubles already. The shop
// database mixes both units, so this stays a heuristic rather than a rule.
const minorUnitThreshold = 1000

// FormatMoney renders an amount as a ruble string with space-grouped
// thousands and a comma decimal separator, e.g. 2786000 -> "27 860,00 ₽".
func FormatMoney(v float64) string {
	if math.Abs(v) > minorUnitThreshold {
		v /= 100
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}

	return sign + b.String() + "," + frac + " ₽"
}

// OrderPrice picks the amount shown for a purchase: the second pricing tier
// when set, the first otherwise, zero when neither is.
func OrderPrice(p *model.Purchase) float64 {
	if p.PriceForSP2 > 0 {
		return p.PriceForSP2
	}
	if p.PriceForSP1 > 0 {
		return p.PriceForSP1
	}
	return 0
}
