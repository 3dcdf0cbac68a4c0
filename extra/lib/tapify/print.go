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

package tapify

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// WriteBlock writes b as a C array body: a comment naming the angle, then
// one line of (row, col, weight) triples per destination pixel.
//
// The layout matches the tables already generated for the decoder, down to
// the spacing, so that regenerated tables diff cleanly.
func WriteBlock(w io.Writer, b *Block) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, " // angle of %s degrees\n", formatAngle(b.Angle))
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			for _, t := range b.At(y, x) {
				fmt.Fprintf(bw, " %2d, %2d, %5d,  ", t.Row, t.Col, t.Weight)
			}
			fmt.Fprintf(bw, " // %2d,%2d \n", y, x)
		}
	}
	return bw.Flush()
}

// WriteSweep writes one block of the given size per angle of s.
func WriteSweep(w io.Writer, s Sweep, size int) error {
	angles, err := s.Angles()
	if err != nil {
		return err
	}
	Logger().Debug("tapify: sweep", "start", s.Start, "end", s.End, "step", s.Step, "blocks", len(angles))
	for _, a := range angles {
		b, err := BlockTaps(a, size)
		if err != nil {
			return err
		}
		if err := WriteBlock(w, b); err != nil {
			return fmt.Errorf("tapify: writing %v degree block: %w", a, err)
		}
	}
	return nil
}

// formatAngle formats a like the existing table comments do: twelve
// significant digits, and always a decimal point for finite values.
func formatAngle(a float64) string {
	s := strconv.FormatFloat(a, 'g', 12, 64)
	if math.IsInf(a, 0) || math.IsNaN(a) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}
