//go:build amd64

package cpuinfo

import "golang.org/x/sys/cpu"

// ROUNDSS/ROUNDSD arrived with SSE4.1; SQRTSS is baseline SSE.
func accel() string {
	if cpu.X86.HasSSE41 {
		return AccelSSE41
	}
	return AccelNone
}

func features() []Feature {
	return []Feature{
		{"SSE2", cpu.X86.HasSSE2, "baseline, SQRTSS"},
		{"SSE41", cpu.X86.HasSSE41, "ROUNDSS/ROUNDSD"},
		{"SSE42", cpu.X86.HasSSE42, ""},
		{"AVX", cpu.X86.HasAVX, ""},
		{"AVX2", cpu.X86.HasAVX2, ""},
		{"FMA", cpu.X86.HasFMA, "fused multiply-add"},
		{"AVX512F", cpu.X86.HasAVX512F, ""},
	}
}
