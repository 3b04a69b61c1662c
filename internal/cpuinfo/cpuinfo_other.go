//go:build !amd64 && !arm64

package cpuinfo

func accel() string {
	return AccelNone
}

func features() []Feature {
	return nil
}
