package api

import (
	"testing"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{3620, "3.620"},
		{50000, "50.000"},
		{1234567, "1.234.567"},
		{-3620, "-3.620"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(tc.in); got != tc.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPriceLine(t *testing.T) {
	if got := priceLine(3620, 1.97); got != "Rp 3.620 (+1.97%)" {
		t.Errorf("priceLine = %q", got)
	}
	if got := priceLine(3620, -0.5); got != "Rp 3.620 (-0.50%)" {
		t.Errorf("priceLine = %q", got)
	}
}

func TestEntryString(t *testing.T) {
	plan := &model.TradePlan{EntryLow: 3500, EntryHigh: 3553}
	if got := entryString(plan); got != "3.500 - 3.553" {
		t.Errorf("entry = %q", got)
	}

	plan.WaitPullback = true
	if got := entryString(plan); got != "3.500 - 3.553\n(Wait Pullback)" {
		t.Errorf("entry with pullback = %q", got)
	}

	if got := entryString(nil); got != "-" {
		t.Errorf("nil plan entry = %q", got)
	}
}

func TestTakeProfitString(t *testing.T) {
	plan := &model.TradePlan{TakeProfits: []int64{3675, 3850, 4025}}
	want := "TP1: 3.675\nTP2: 3.850\nTP3: 4.025"
	if got := takeProfitString(plan); got != want {
		t.Errorf("ladder = %q, want %q", got, want)
	}

	hold := &model.TradePlan{Hold: "Long-term hold (dividends & growth)"}
	if got := takeProfitString(hold); got != hold.Hold {
		t.Errorf("hold = %q", got)
	}

	if got := takeProfitString(nil); got != "-" {
		t.Errorf("nil plan = %q", got)
	}
}
