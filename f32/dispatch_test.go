package f32

import (
	"runtime"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelPortable, "portable"},
		{LevelSSE41, "sse4.1"},
		{LevelARM64, "arm64"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestNoHardwareEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"false", false},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("XMATH_PORTABLE", tt.val)
			if got := NoHardwareEnv(); got != tt.want {
				t.Errorf("NoHardwareEnv() with XMATH_PORTABLE=%q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestCurrentBackend(t *testing.T) {
	level := CurrentLevel()
	t.Logf("level=%s backend=%s accurate=%v", level, CurrentBackend().Name(), Accurate())

	if CurrentName() != level.String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), level.String())
	}

	wantBackend := "hardware"
	if level == LevelPortable {
		wantBackend = "portable"
	}
	if got := CurrentBackend().Name(); got != wantBackend {
		t.Errorf("CurrentBackend().Name() = %q at level %s, want %q", got, level, wantBackend)
	}

	if forcePortable && level != LevelPortable {
		t.Errorf("built with xmath_portable but level is %s", level)
	}
	if level == LevelARM64 && runtime.GOARCH != "arm64" {
		t.Errorf("level %s on GOARCH=%s", level, runtime.GOARCH)
	}
	if level == LevelSSE41 && runtime.GOARCH != "amd64" {
		t.Errorf("level %s on GOARCH=%s", level, runtime.GOARCH)
	}
}

func TestBackends_Agree(t *testing.T) {
	// Away from rounding boundaries both backends produce the same integers.
	p, h := PortableBackend{}, HardwareBackend{}
	for _, x := range linspace(-1000.3, 1000.3, 10001) {
		if p.Floor(x) != h.Floor(x) || p.Ceil(x) != h.Ceil(x) || p.Round(x) != h.Round(x) || p.Trunc(x) != h.Trunc(x) {
			t.Fatalf("backends disagree at x=%v", x)
		}
	}
}
