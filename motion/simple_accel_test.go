package motion

import (
	"testing"

	"github.com/milk9111/critterswap/input"
)

func TestSimpleAccelApproachesTarget(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		grounded bool
		want     []float64
	}{
		{"forward_grounded", 1, true, []float64{2.5, 5, 5}},
		{"forward_airborne", 1, false, []float64{2.5, 5, 5}},
		{"half_back", -0.5, true, []float64{-2.5, -2.5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSimpleAccel(DefaultSimpleAccelTuning())
			s.OnMove(0, input.Vector{X: tc.x})
			for i, want := range tc.want {
				step := s.Advance(Frame{Now: float64(i) * 0.1, Dt: 0.1, Grounded: tc.grounded})
				if !approx(step.VelocityX, want) {
					t.Fatalf("frame %d: expected %v, got %v", i, want, step.VelocityX)
				}
			}
		})
	}
}

func TestSimpleAccelFacing(t *testing.T) {
	s := NewSimpleAccel(DefaultSimpleAccelTuning())
	if effects := s.OnMove(0, input.Vector{X: 0.3}); !containsEffect(effects, Facing(false)) {
		t.Fatalf("expected facing right, got %+v", effects)
	}
	if effects := s.OnMove(0, input.Vector{}); len(effects) != 0 {
		t.Fatalf("expected no facing change at rest, got %+v", effects)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		want    Kind
		wantErr bool
	}{
		{"hop", KindHop, false},
		{"Frog", KindHop, false},
		{"charge_sprint", KindChargeSprint, false},
		{" snail ", KindChargeSprint, false},
		{"fish", KindSimpleAccel, false},
		{"bird", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseKind(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
