//go:build arm64

package cpuinfo

import "golang.org/x/sys/cpu"

// FRINTZ/FRINTM/FRINTP and FSQRT are part of the ARMv8-A base FP unit.
func accel() string {
	return AccelARM64
}

func features() []Feature {
	return []Feature{
		{"FP", cpu.ARM64.HasFP, "FRINT*, FSQRT"},
		{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"FPHP", cpu.ARM64.HasFPHP, "FP16 scalar"},
		{"ASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON"},
		{"SVE", cpu.ARM64.HasSVE, ""},
	}
}
