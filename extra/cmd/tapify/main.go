// Copyright 2022 Nigel Tao.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

// tapify prints rotated block interpolation taps, one table per angle, as C
// array bodies.
//
// Flags must come before the angles. The first numeric argument ends the
// flags, so a negative start angle such as -45 is not taken for a flag.

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/nigeltao/tapify/extra/lib/tapify"
)

var (
	verbose = flag.Bool("v", false, "Log debug diagnostics to stderr")
)

var errUsage = errors.New("Usage: tapify [-v] startAngle endAngle angleStep blockSize > taps.txt")

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	args, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}
	if *verbose {
		tapify.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	return run(args, os.Stdout)
}

// parseFlags parses the flags of args up to the first argument that parses
// as a number, and returns the positional arguments.
func parseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	n := len(args)
	for i, a := range args {
		if _, err := strconv.ParseFloat(a, 64); err == nil {
			n = i
			break
		}
	}
	if err := fs.Parse(args[:n]); err != nil {
		return nil, err
	}
	return slices.Concat(fs.Args(), args[n:]), nil
}

func run(args []string, w io.Writer) error {
	if len(args) != 4 {
		return errUsage
	}
	var f [3]float64
	for i := range f {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return err
		}
		f[i] = v
	}
	size, err := strconv.Atoi(args[3])
	if err != nil {
		return err
	}
	return tapify.WriteSweep(w, tapify.Sweep{Start: f[0], End: f[1], Step: f[2]}, size)
}
