package f32

import (
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var backends = []Backend{PortableBackend{}, HardwareBackend{}}

func TestRounding_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		fn   func(Backend, float32) float32
		x    float32
		want float32
	}{
		{"floor(2.7) = 2", Backend.Floor, 2.7, 2},
		{"floor(-2.7) = -3", Backend.Floor, -2.7, -3},
		{"floor(-2) = -2", Backend.Floor, -2, -2},
		{"floor(-0.5) = -1", Backend.Floor, -0.5, -1},
		{"ceil(-2.7) = -2", Backend.Ceil, -2.7, -2},
		{"ceil(2.7) = 3", Backend.Ceil, 2.7, 3},
		{"ceil(2) = 2", Backend.Ceil, 2, 2},
		{"ceil(0.5) = 1", Backend.Ceil, 0.5, 1},
		{"round(2.5) = 3", Backend.Round, 2.5, 3},
		{"round(-2.5) = -3", Backend.Round, -2.5, -3},
		{"round(0.5) = 1", Backend.Round, 0.5, 1},
		{"round(2.4999) = 2", Backend.Round, 2.4999, 2},
		{"round(0.49999997) = 0", Backend.Round, 0.49999997, 0},
		{"trunc(-2.7) = -2", Backend.Trunc, -2.7, -2},
		{"trunc(2.7) = 2", Backend.Trunc, 2.7, 2},
	}

	for _, b := range backends {
		for _, tt := range tests {
			t.Run(b.Name()+"/"+tt.name, func(t *testing.T) {
				if got := tt.fn(b, tt.x); got != tt.want {
					t.Errorf("%v = %v, want %v", tt.name, got, tt.want)
				}
			})
		}
	}
}

func TestRounding_Table(t *testing.T) {
	xs := []float32{-3.5, -2.5, -1.75, -1, -0.25, 0, 0.25, 1, 1.5, 2.5, 3.75, 1e6 + 0.5}
	want := map[string][]float32{
		"Trunc": {-3, -2, -1, -1, 0, 0, 0, 1, 1, 2, 3, 1e6},
		"Floor": {-4, -3, -2, -1, -1, 0, 0, 1, 1, 2, 3, 1e6},
		"Ceil":  {-3, -2, -1, -1, 0, 0, 1, 1, 2, 3, 4, 1e6 + 1},
		"Round": {-4, -3, -2, -1, 0, 0, 0, 1, 2, 3, 4, 1e6 + 1},
	}

	for _, b := range backends {
		fns := map[string]func(float32) float32{
			"Trunc": b.Trunc,
			"Floor": b.Floor,
			"Ceil":  b.Ceil,
			"Round": b.Round,
		}
		for name, fn := range fns {
			got := make([]float32, len(xs))
			for i, x := range xs {
				got[i] = fn(x)
			}
			if diff := cmp.Diff(want[name], got); diff != "" {
				t.Errorf("%s %s mismatch (-want +got):\n%s", b.Name(), name, diff)
			}
		}
	}
}

func TestRounding_Integral(t *testing.T) {
	// Integral inputs are fixed points of every rounding rule.
	check := func(b Backend, x float32) {
		t.Helper()
		if got := b.Trunc(x); got != x {
			t.Errorf("%s Trunc(%v) = %v", b.Name(), x, got)
		}
		if got := b.Floor(x); got != x {
			t.Errorf("%s Floor(%v) = %v", b.Name(), x, got)
		}
		if got := b.Ceil(x); got != x {
			t.Errorf("%s Ceil(%v) = %v", b.Name(), x, got)
		}
		if got := b.Round(x); got != x {
			t.Errorf("%s Round(%v) = %v", b.Name(), x, got)
		}
	}

	for _, b := range backends {
		for k := -70000; k <= 70000; k++ {
			check(b, float32(k))
		}
		for _, x := range []float32{1 << 22, -(1 << 22), 1<<22 - 1, -(1<<22 - 1), 123457, -987654} {
			check(b, x)
		}
	}
}

func TestRounding_MatchesStdlib(t *testing.T) {
	for _, b := range backends {
		for i := -20000; i <= 20000; i++ {
			x := float32(i) * 0.0137
			if got, want := b.Floor(x), float32(stdmath.Floor(float64(x))); got != want {
				t.Fatalf("%s Floor(%v) = %v, want %v", b.Name(), x, got, want)
			}
			if got, want := b.Ceil(x), float32(stdmath.Ceil(float64(x))); got != want {
				t.Fatalf("%s Ceil(%v) = %v, want %v", b.Name(), x, got, want)
			}
			if got, want := b.Round(x), float32(stdmath.Round(float64(x))); got != want {
				t.Fatalf("%s Round(%v) = %v, want %v", b.Name(), x, got, want)
			}
			if got, want := b.Trunc(x), float32(stdmath.Trunc(float64(x))); got != want {
				t.Fatalf("%s Trunc(%v) = %v, want %v", b.Name(), x, got, want)
			}
		}
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		x, e, want float32
	}{
		{5.5, 2, 1.5},
		{-5.5, 2, 0.5},
		{5.5, -2, -0.5},
		{-5.5, -2, -1.5},
		{6, 3, 0},
		{0.75, 1, 0.75},
	}

	for _, tt := range tests {
		if got := Mod(tt.x, tt.e); got != tt.want {
			t.Errorf("Mod(%v, %v) = %v, want %v", tt.x, tt.e, got, tt.want)
		}
	}
}

func TestFract(t *testing.T) {
	for i := -5000; i <= 5000; i++ {
		x := float32(i) * 0.731
		got := Fract(x)
		if got != x-Floor(x) {
			t.Fatalf("Fract(%v) = %v, want x - Floor(x) = %v", x, got, x-Floor(x))
		}
		if got < 0 || got >= 1 {
			t.Fatalf("Fract(%v) = %v, outside [0, 1)", x, got)
		}
	}

	if got := Fract(-2.25); got != 0.75 {
		t.Errorf("Fract(-2.25) = %v, want 0.75", got)
	}
}
