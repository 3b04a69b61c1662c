package f32

import (
	"os"
	"strconv"

	"github.com/xmath-go/xmath/internal/cpuinfo"
)

// Level identifies which Backend the package selected.
type Level int

const (
	// LevelPortable indicates the bit-trick PortableBackend.
	LevelPortable Level = iota

	// LevelSSE41 indicates HardwareBackend on amd64 with SSE4.1 rounding.
	LevelSSE41

	// LevelARM64 indicates HardwareBackend on arm64 (FRINT*, FSQRT).
	LevelARM64
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelPortable:
		return "portable"
	case LevelSSE41:
		return "sse4.1"
	case LevelARM64:
		return "arm64"
	default:
		return "unknown"
	}
}

// currentLevel and backend are set once by init() and never change.
var (
	currentLevel Level
	backend      Backend = PortableBackend{}
)

func init() {
	if forcePortable || NoHardwareEnv() {
		setPortable()
		return
	}

	switch cpuinfo.Accel() {
	case cpuinfo.AccelSSE41:
		currentLevel = LevelSSE41
		backend = HardwareBackend{}
	case cpuinfo.AccelARM64:
		currentLevel = LevelARM64
		backend = HardwareBackend{}
	default:
		setPortable()
	}
}

func setPortable() {
	currentLevel = LevelPortable
	backend = PortableBackend{}
}

// CurrentLevel returns the backend level selected for this process.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns the name of the selected level, e.g. "sse4.1".
func CurrentName() string {
	return currentLevel.String()
}

// CurrentBackend returns the Backend behind Trunc, Floor, Ceil, Round, Sqrt
// and Rsqrt.
func CurrentBackend() Backend {
	return backend
}

// Accurate reports whether the package was built with the xmath_acc tag,
// which enables the extra refinement pass in Sqrt, Rsqrt, Exp2 and Log2.
func Accurate() bool {
	return accurate
}

// NoHardwareEnv checks if the XMATH_PORTABLE environment variable is set.
// When set, the portable backend is used regardless of CPU capabilities.
func NoHardwareEnv() bool {
	val := os.Getenv("XMATH_PORTABLE")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
