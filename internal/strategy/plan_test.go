package strategy

import (
	"testing"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

func TestBuildPlan_SwingLadder(t *testing.T) {
	plan := BuildPlan(model.StrategySwing, 3620, 3500)
	if plan.EntryLow != 3500 {
		t.Errorf("entry low=%d, want 3500", plan.EntryLow)
	}
	if plan.EntryHigh != 3553 { // 3500 · 1.015, rounded
		t.Errorf("entry high=%d, want 3553", plan.EntryHigh)
	}
	if plan.StopLoss != 3325 { // 3500 · 0.95
		t.Errorf("stop loss=%d, want 3325", plan.StopLoss)
	}
	want := []int64{3675, 3850, 4025} // +5%, +10%, +15%
	if len(plan.TakeProfits) != 3 {
		t.Fatalf("expected 3 targets, got %v", plan.TakeProfits)
	}
	for i, tp := range want {
		if plan.TakeProfits[i] != tp {
			t.Errorf("tp%d=%d, want %d", i+1, plan.TakeProfits[i], tp)
		}
	}
	if plan.Hold != "" {
		t.Errorf("ladder strategies carry no hold instruction, got %q", plan.Hold)
	}
	// 3620 > 3553 · 1.01: price already escaped the entry band.
	if !plan.WaitPullback {
		t.Error("expected wait-pullback flag when price escaped the entry band")
	}
}

func TestBuildPlan_HoldStrategies(t *testing.T) {
	ara := BuildPlan(model.StrategyARA, 100, 95)
	if len(ara.TakeProfits) != 0 || ara.Hold == "" {
		t.Errorf("ARA plan should hold, got %+v", ara)
	}
	if ara.StopLoss != 86 { // 95 · 0.90, rounded half-up
		t.Errorf("ARA stop=%d, want 86", ara.StopLoss)
	}

	invest := BuildPlan(model.StrategyInvest, 100, 95)
	if invest.StopLoss != 81 { // 95 · 0.85, rounded
		t.Errorf("invest stop=%d, want 81", invest.StopLoss)
	}
	if invest.Hold == "" {
		t.Error("invest plan should carry a hold instruction")
	}
}

func TestBuildPlan_PriceInsideBand(t *testing.T) {
	plan := BuildPlan(model.StrategyBSJP, 3510, 3500)
	if plan.WaitPullback {
		t.Error("price inside the entry band must not flag a pullback wait")
	}
}

func TestBuildPlan_ZeroSupportAnchorsAtPrice(t *testing.T) {
	plan := BuildPlan(model.StrategyScalping, 200, 0)
	if plan.EntryLow != 200 {
		t.Errorf("zero support should anchor the band at price, got %d", plan.EntryLow)
	}
	if plan.StopLoss != 194 { // 200 · 0.97
		t.Errorf("stop=%d, want 194", plan.StopLoss)
	}
}

func TestBuildPlan_ZeroPrice(t *testing.T) {
	plan := BuildPlan(model.StrategySwing, 0, 0)
	if plan.Hold == "" || plan.EntryLow != 0 {
		t.Errorf("zero price should yield a wait plan, got %+v", plan)
	}
}
