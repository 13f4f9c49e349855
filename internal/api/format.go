package api

import (
	"fmt"
	"strings"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

// FormatRupiah renders a price with Indonesian thousands separators:
// 3620 becomes "3.620".
func FormatRupiah(v int64) string {
	s := fmt.Sprintf("%d", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// priceLine renders the dashboard header line: "Rp 3.620 (+1.97%)".
func priceLine(price int64, changePct float64) string {
	sign := ""
	if changePct >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("Rp %s (%s%.2f%%)", FormatRupiah(price), sign, changePct)
}

// entryString renders the buy band, flagging a run-away price.
func entryString(plan *model.TradePlan) string {
	if plan == nil || plan.EntryLow <= 0 {
		return "-"
	}
	s := fmt.Sprintf("%s - %s", FormatRupiah(plan.EntryLow), FormatRupiah(plan.EntryHigh))
	if plan.WaitPullback {
		s += "\n(Wait Pullback)"
	}
	return s
}

// takeProfitString renders the ladder, or the hold instruction for
// strategies without one.
func takeProfitString(plan *model.TradePlan) string {
	if plan == nil {
		return "-"
	}
	if len(plan.TakeProfits) == 0 {
		if plan.Hold != "" {
			return plan.Hold
		}
		return "-"
	}
	parts := make([]string, len(plan.TakeProfits))
	for i, tp := range plan.TakeProfits {
		parts[i] = fmt.Sprintf("TP%d: %s", i+1, FormatRupiah(tp))
	}
	return strings.Join(parts, "\n")
}
