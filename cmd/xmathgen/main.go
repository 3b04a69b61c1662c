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

// Command xmathgen generates the constant table of package f32 from a TOML
// description of bit patterns.
//
// Usage:
//
//	xmathgen --input constants.toml --output zconstants.go
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/xmathgen --input constants.toml --output zconstants.go
//
// Each [[float]] entry becomes a package variable built with FromBits, each
// [[magic]] entry a uint32 constant. Names are converted from snake_case to
// lower camel case.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var (
	inputFile  = pflag.StringP("input", "i", "", "Input TOML constants file (required)")
	outputFile = pflag.StringP("output", "o", "zconstants.go", "Output Go file")
	verbose    = pflag.BoolP("verbose", "v", false, "Enable debug logging")
)

func main() {
	pflag.Parse()
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: --input flag is required\n\n")
		pflag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		InputFile:  *inputFile,
		OutputFile: *outputFile,
	}
	if err := gen.Run(); err != nil {
		log.Errorf("Generating %s: %v", *outputFile, err)
		os.Exit(1)
	}
	log.Infof("Generated %s from %s", *outputFile, *inputFile)
}
