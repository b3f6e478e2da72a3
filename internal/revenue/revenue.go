// Package revenue does the small amount of arithmetic the Pulse screens show
// over sample data: totals, client shares, month-over-month change and the
// landing page ROI estimate.
package revenue

import (
	"math"

	"github.com/dustin/go-humanize"

	"github.com/five82/pulse/internal/content"
)

// Total sums client revenue.
func Total(clients []content.Client) int {
	sum := 0
	for _, c := range clients {
		sum += c.Revenue
	}
	return sum
}

// Share returns part as a fraction of total. A zero total yields 0.
func Share(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total)
}

// Shares returns each client's fraction of the combined revenue, in order.
func Shares(clients []content.Client) []float64 {
	total := Total(clients)
	out := make([]float64, len(clients))
	for i, c := range clients {
		out[i] = Share(c.Revenue, total)
	}
	return out
}

// TopClientPercent is the rounded share of the first client, which the
// catalog lists largest first.
func TopClientPercent(clients []content.Client) int {
	if len(clients) == 0 {
		return 0
	}
	return int(math.Round(Share(clients[0].Revenue, Total(clients)) * 100))
}

// MonthChange returns the percentage change of the last month against the
// one before it. Fewer than two months, or a zero base, yield 0.
func MonthChange(months []content.MonthTotal) float64 {
	if len(months) < 2 {
		return 0
	}
	prev := months[len(months)-2].Amount
	if prev == 0 {
		return 0
	}
	last := months[len(months)-1].Amount
	return float64(last-prev) / float64(prev) * 100
}

// Window returns the trailing months shown for a time-range selector value.
// Unknown ranges show everything.
func Window(months []content.MonthTotal, r Range) []content.MonthTotal {
	n := len(months)
	switch r {
	case Range7D:
		n = 2
	case Range30D:
		n = 3
	case Range90D:
		n = 4
	}
	if n > len(months) {
		n = len(months)
	}
	return months[len(months)-n:]
}

// Range is a dashboard time-range selector value.
type Range int

const (
	Range7D Range = iota
	Range30D
	Range90D
	RangeYTD
)

// Ranges lists selector values in display order.
var Ranges = []Range{Range7D, Range30D, Range90D, RangeYTD}

func (r Range) String() string {
	switch r {
	case Range7D:
		return "7D"
	case Range30D:
		return "30D"
	case Range90D:
		return "90D"
	case RangeYTD:
		return "YTD"
	default:
		return "?"
	}
}

// USD formats whole dollars with thousands separators, e.g. "$8,420".
func USD(amount int) string {
	if amount < 0 {
		return "-$" + humanize.Comma(int64(-amount))
	}
	return "$" + humanize.Comma(int64(amount))
}
