package suspension

import (
	"math"
	"testing"

	"github.com/Faultbox/stance/internal/engine/scene"
)

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestElasticOut(t *testing.T) {
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0},
		{0.15, 1 + math.Pow(2, -1.5)},
		{1, 1 + math.Pow(2, -10)*0.5},
	}

	for _, tt := range tests {
		if got := ElasticOut(tt.t); !near(got, tt.want, 1e-9) {
			t.Errorf("ElasticOut(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestElasticOutOvershoots(t *testing.T) {
	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = math.Max(peak, ElasticOut(float64(i)/100))
	}
	if peak <= 1 {
		t.Errorf("peak = %v, expected overshoot above 1", peak)
	}
}

func TestAdvanceClampsProgress(t *testing.T) {
	s := NewState(0.4, 0.5)

	s, _ = Advance(s, 0.4, 0.25)
	if s.Progress != 0.25 {
		t.Errorf("progress = %v, want 0.25", s.Progress)
	}
	if s.Settled() {
		t.Error("should still be transitioning")
	}

	s, h := Advance(s, 0.4, 5)
	if s.Progress != 1 {
		t.Errorf("progress = %v, want clamped to 1", s.Progress)
	}
	if !s.Settled() {
		t.Error("should be settled")
	}
	if want := 0.5 + (0.4-0.5)*ElasticOut(1); !near(h, want, 1e-12) {
		t.Errorf("settled height = %v, want %v", h, want)
	}
}

func TestAdvanceRetargetIsContinuous(t *testing.T) {
	s := NewState(0.40, 0.30)
	s, before := Advance(s, 0.40, 0.5)
	if s.Progress != 0.5 {
		t.Fatalf("progress = %v, want 0.5", s.Progress)
	}

	s, after := Advance(s, 0.55, 0)

	if s.Initial != before {
		t.Errorf("initial height = %v, want pre-retarget height %v", s.Initial, before)
	}
	if s.Target != 0.55 || s.Progress != 0 {
		t.Errorf("state after retarget = %+v", s)
	}
	if !near(after, before, 1e-12) {
		t.Errorf("height jumped from %v to %v on retarget", before, after)
	}
}

func TestAdvanceSameTargetDoesNotRestart(t *testing.T) {
	s := NewState(0.4, 0.5)
	s, _ = Advance(s, 0.4, 0.3)
	s, _ = Advance(s, 0.4, 0.3)
	if !near(s.Progress, 0.6, 1e-12) {
		t.Errorf("progress = %v, want 0.6", s.Progress)
	}
	if s.Initial != 0.5 {
		t.Errorf("initial = %v, want 0.5", s.Initial)
	}
}

func TestAdvanceInvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		dt     float64
	}{
		{"nan target", math.NaN(), 0.1},
		{"negative infinite target", math.Inf(-1), 0.1},
		{"positive infinite target", math.Inf(1), 0.1},
		{"negative dt", 0.4, -1},
		{"nan dt", 0.4, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(0.4, 0.5)
			s, _ = Advance(s, 0.4, 0.2)

			next, h := Advance(s, tt.target, tt.dt)
			if next.Target != 0.4 {
				t.Errorf("target = %v, want last valid 0.4", next.Target)
			}
			if math.IsNaN(h) || math.IsInf(h, 0) {
				t.Errorf("height = %v, want finite", h)
			}
			if next.Progress < s.Progress {
				t.Errorf("progress went backwards: %v -> %v", s.Progress, next.Progress)
			}
		})
	}
}

func TestNewStateInvalidStart(t *testing.T) {
	s := NewState(0.4, math.NaN())
	if s.Height != 0.4 || s.Initial != 0.4 {
		t.Errorf("state = %+v, want start at target", s)
	}
}

func TestAnimatorWritesNode(t *testing.T) {
	body := scene.NewGroup("Body")
	a := NewAnimator(body, 0.4, 0.5, nil)

	if body.Position.Y != 0.5 {
		t.Errorf("initial node height = %v, want 0.5", body.Position.Y)
	}

	for i := 0; i < 120; i++ {
		a.Tick(0.4, 1.0/60)
	}

	if !a.State().Settled() {
		t.Error("animation should be settled after two seconds")
	}
	if body.Position.Y != a.Height() {
		t.Errorf("node height %v != animator height %v", body.Position.Y, a.Height())
	}
	if !near(body.Position.Y, 0.4, 1e-3) {
		t.Errorf("settled height = %v, want ~0.4", body.Position.Y)
	}
}

func TestAnimatorBind(t *testing.T) {
	a := NewAnimator(nil, 0.4, 0.5, nil)
	a.Tick(0.4, 0.1)

	body := scene.NewGroup("Body")
	a.Bind(body)
	if body.Position.Y != a.Height() {
		t.Errorf("bound node height = %v, want %v", body.Position.Y, a.Height())
	}
}

func TestAnimatorInvalidTargetKeepsRunning(t *testing.T) {
	a := NewAnimator(nil, 0.4, 0.5, nil)
	h := a.Tick(math.NaN(), 0.1)
	if math.IsNaN(h) {
		t.Fatal("animator produced NaN")
	}
	if a.State().Target != 0.4 {
		t.Errorf("target = %v, want 0.4", a.State().Target)
	}
}
