package progress

import (
	"testing"

	"github.com/milk9111/critterswap/prefabs"
)

func TestEmbeddedUnlockRule(t *testing.T) {
	src, err := prefabs.LoadScript("unlock.tengo")
	if err != nil {
		t.Fatal(err)
	}
	rule, err := NewRule(src)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		collected int
		want      int
	}{
		{0, 1},
		{2, 1},
		{3, 2},
		{6, 3},
		{30, 3},
	}
	for _, tc := range tests {
		got, err := rule.Unlocked(tc.collected, 3)
		if err != nil {
			t.Fatalf("collected=%d: %v", tc.collected, err)
		}
		if got != tc.want {
			t.Fatalf("collected=%d: expected %d unlocked, got %d", tc.collected, tc.want, got)
		}
	}
}

func TestRuleResultIsClamped(t *testing.T) {
	rule, err := NewRule([]byte(`unlocked = collected - 10`))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := rule.Unlocked(0, 3); got != 1 {
		t.Fatalf("expected floor of 1, got %d", got)
	}
	if got, _ := rule.Unlocked(100, 3); got != 3 {
		t.Fatalf("expected roster size cap, got %d", got)
	}
}

func TestRuleCompileError(t *testing.T) {
	if _, err := NewRule([]byte(`unlocked = (`)); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestNilRuleUnlocksOne(t *testing.T) {
	var rule *Rule
	if got, err := rule.Unlocked(9, 3); err != nil || got != 1 {
		t.Fatalf("expected 1 with no rule, got %d %v", got, err)
	}
}

func TestRuleReadsEveryGlobal(t *testing.T) {
	rule, err := NewRule([]byte("unlocked = roster_size - collected"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := rule.Unlocked(1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Fatalf("expected 3 unlocked, got %d", got)
	}
}
