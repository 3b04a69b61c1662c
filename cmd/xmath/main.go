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

// Command xmath inspects the f32 approximations on the current machine.
//
// Usage:
//
//	xmath info                               # selected backend, accuracy tier, CPU features
//	xmath eval atan2 1 -1                    # one value next to its reference
//	xmath sweep sqrt --from 1e-3 --to 1e3 --log
//	xmath sweep all                          # every unary function over its default range
//	xmath sweep --config sweeps.toml         # batch of sweeps with thresholds
//
// A sweep whose error exceeds its threshold is highlighted and makes the
// command exit with status 1. Without --max-abs or --max-rel the documented
// bound of each function is the threshold.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
