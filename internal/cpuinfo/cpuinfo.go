// Copyright 2025 xmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cpuinfo reports the CPU features relevant to scalar float32
// rounding and square roots, as detected by golang.org/x/sys/cpu.
package cpuinfo

// Accel values returned by Accel.
const (
	AccelNone  = ""
	AccelSSE41 = "sse4.1"
	AccelARM64 = "arm64"
)

// Feature is one row of the diagnostic feature dump.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Accel returns the instruction family providing single-instruction
// truncate/floor/ceil and square root on this CPU, or AccelNone.
func Accel() string {
	return accel()
}

// Features returns the detected features of the running CPU. The list is
// empty on architectures without a probe.
func Features() []Feature {
	return features()
}
