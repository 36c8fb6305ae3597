package gamemath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLengthAndAngle(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		length, angle  float64
	}{
		{"Down", 100, 100, 100, 200, 100, 90},
		{"Right", 0, 0, 3, 4, 5, 53.13010235415598},
		{"Left", 10, 0, 0, 0, 10, 180},
		{"Up", 0, 10, 0, 0, 10, -90},
		{"Zero", 5, 5, 5, 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Length(tt.x0, tt.y0, tt.x1, tt.y1); math.Abs(got-tt.length) > 1e-9 {
				t.Errorf("Length() = %v, want %v", got, tt.length)
			}
			if got := DegAngle(tt.x0, tt.y0, tt.x1, tt.y1); math.Abs(got-tt.angle) > 1e-9 {
				t.Errorf("DegAngle() = %v, want %v", got, tt.angle)
			}
		})
	}
}

func TestNormalizeDeg(t *testing.T) {
	got := []float64{NormalizeDeg(-90), NormalizeDeg(360), NormalizeDeg(725), NormalizeDeg(0)}
	want := []float64{270, 0, 5, 0}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("NormalizeDeg mismatch (-want +got):\n%s", diff)
	}
}

func TestRandomIntegerBoundsGiveIntegers(t *testing.T) {
	r := NewSeededRandom(42)
	seen := map[float64]bool{}
	for i := 0; i < 1000; i++ {
		v := r.Between(4, 6)
		if v != math.Trunc(v) || v < 4 || v > 6 {
			t.Fatalf("Between(4, 6) = %v", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("Between(4, 6) produced %d distinct values, want 3", len(seen))
	}
}

func TestRandomFloatBounds(t *testing.T) {
	r := NewSeededRandom(42)
	for i := 0; i < 1000; i++ {
		v := r.Between(0.07, 0.05)
		if v < 0.05 || v > 0.07 {
			t.Fatalf("Between(0.07, 0.05) = %v", v)
		}
	}
}

func TestRandomDegenerate(t *testing.T) {
	r := NewSeededRandom(1)
	if v := r.Between(3, 3); v != 3 {
		t.Errorf("Between(3, 3) = %v", v)
	}
	if v := r.IntBetween(9, 2); v < 2 || v > 9 {
		t.Errorf("IntBetween(9, 2) = %v", v)
	}
	if v := r.Between(math.NaN(), 1); !math.IsNaN(v) {
		t.Errorf("Between(NaN, 1) = %v, want NaN", v)
	}
}

func TestSeededRandomIsDeterministic(t *testing.T) {
	a, b := NewSeededRandom(9), NewSeededRandom(9)
	for i := 0; i < 50; i++ {
		if x, y := a.Between(0, 1.5), b.Between(0, 1.5); x != y {
			t.Fatalf("draw %d differs: %v != %v", i, x, y)
		}
	}
}

func TestProjectileFrictionless(t *testing.T) {
	// Straight up at 100 px/s against 10 px/s^2 of gravity pulling down.
	p := NewProjectile(0, 0, 100, 270, 10, 90, 0, 60)
	if !p.Frictionless() {
		t.Fatal("zero friction must use the closed form")
	}

	x, y := p.At(2)
	diff(t, []float64{x, y}, []float64{0, -200 + 20}, cmpopts.EquateApprox(0, 1e-9))

	angle, speed := p.Heading()
	diff(t, []float64{angle, speed}, []float64{270, 80}, cmpopts.EquateApprox(0, 1e-9))

	// Past the apex the heading flips downward.
	p.At(20)
	angle, speed = p.Heading()
	diff(t, []float64{angle, speed}, []float64{90, 100}, cmpopts.EquateApprox(0, 1e-9))
}

func TestProjectileFrictionSteps(t *testing.T) {
	// 4 steps per second, 1 px per step, half the velocity lost each step.
	p := NewProjectile(0, 0, 4, 0, 0, 90, 0.5, 4)

	x, y := p.At(0.5) // two whole steps: 0.5 + 0.25
	diff(t, []float64{x, y}, []float64{0.75, 0}, cmpopts.EquateApprox(0, 1e-12))

	x, _ = p.At(0.625) // half a step further at 0.25 px/step
	if math.Abs(x-0.875) > 1e-12 {
		t.Errorf("x = %v, want 0.875", x)
	}

	angle, speed := p.Heading()
	diff(t, []float64{angle, speed}, []float64{0, 1}, cmpopts.EquateApprox(0, 1e-12))
}

func TestProjectileFrictionTerminalFall(t *testing.T) {
	p := NewProjectile(0, 0, 0, 0, 3600, 90, 0.1, 60)
	p.At(30)
	_, speed := p.Heading()
	// Terminal step velocity v satisfies v = (v + a) * 0.9 with a = 1 px/step^2.
	want := 9.0 * 60
	if math.Abs(speed-want) > 1e-6 {
		t.Errorf("terminal speed = %v, want %v", speed, want)
	}
}

func diff(t *testing.T, got, want []float64, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}
