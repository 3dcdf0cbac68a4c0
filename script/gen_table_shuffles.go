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

//go:build ignore

package main

// This program prints the shuffle tables for a 16x16 block rotated by
// tapify.ShuffleAngle degrees, followed by the (row, slot, col, y, x) tuples
// they were built from.
//
// Usage: go run script/gen_table_shuffles.go [-v] [-dump=false] [-pixels]

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/nigeltao/tapify/extra/lib/tapify"
)

var (
	dump    = flag.Bool("dump", true, "Print the raw tuples after the shuffle tables")
	pixels  = flag.Bool("pixels", false, "Print every destination pixel's taps first")
	verbose = flag.Bool("v", false, "Log debug diagnostics to stderr")
)

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("Usage: go run script/gen_table_shuffles.go [-v] [-dump=false] [-pixels]")
	}
	if *verbose {
		tapify.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	b, err := tapify.BlockTaps(tapify.ShuffleAngle, tapify.ShuffleBlockSize)
	if err != nil {
		return err
	}
	if *pixels {
		if err := tapify.WritePixelDump(os.Stdout, b); err != nil {
			return err
		}
	}
	g := tapify.Group(b)
	if err := tapify.WriteShuffles(os.Stdout, tapify.EncodeShuffles(g)); err != nil {
		return err
	}
	if *dump {
		return tapify.WriteGroupingDump(os.Stdout, g)
	}
	return nil
}
