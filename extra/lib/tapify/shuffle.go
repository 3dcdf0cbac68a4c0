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
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// The fixed parameters of the shuffle tables.
const (
	ShuffleAngle     = 45.0
	ShuffleBlockSize = 16
)

// MaskLen is the length of a Shuffle mask: one hex digit per byte lane of a
// 16 byte shuffle.
const MaskLen = 16

// Pixel is a destination pixel of a Block.
type Pixel struct {
	Y, X int
}

// GroupKey identifies the source sample that a weight slot reads.
type GroupKey struct {
	Row, Slot, Col int
}

func compareGroupKeys(a, b GroupKey) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Slot, b.Slot); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}

// Grouping maps each (source row, slot, source column) to the destination
// pixels whose tap in that slot reads that source sample.
type Grouping map[GroupKey][]Pixel

// Group inverts b. Pixels are listed in row-major destination order.
func Group(b *Block) Grouping {
	g := Grouping{}
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			for j, t := range b.At(y, x) {
				k := GroupKey{Row: t.Row, Slot: j, Col: t.Col}
				g[k] = append(g[k], Pixel{Y: y, X: x})
			}
		}
	}
	return g
}

// Keys returns g's keys sorted by row, then slot, then column.
func (g Grouping) Keys() []GroupKey {
	keys := make([]GroupKey, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareGroupKeys)
	return keys
}

// Shuffle is the encoded column pattern of one (source row, slot) group.
type Shuffle struct {
	Row, Slot int
	// Mask has MaskLen hex digits. Each digit is the destination column of
	// the first pixel that reads the corresponding source column.
	Mask string
	// Col is the last source column folded into Mask.
	Col int
}

// Label returns the table identifier for s.
func (s Shuffle) Label() string {
	return fmt.Sprintf("shuffle_%d_%d_%s", s.Row, s.Slot, s.Mask)
}

func newShuffle(row, slot int, mask []byte, col int) Shuffle {
	if len(mask) > MaskLen {
		Logger().Debug("tapify: truncated shuffle mask",
			"row", row, "slot", slot, "mask", string(mask), "dropped", len(mask)-MaskLen)
	}
	m := make([]byte, MaskLen)
	n := copy(m, mask)
	for ; n < MaskLen; n++ {
		m[n] = '0'
	}
	return Shuffle{Row: row, Slot: slot, Mask: string(m), Col: col}
}

// EncodeShuffles encodes g's (source row, slot) groups in key order.
//
// Within a group, each source column appends the hex digit of its first
// destination pixel's column. A column more than one past the previous one
// (or past zero, for the first column of a group) is preceded by a "0" for
// each skipped column. Only the first destination of a key is encoded. A
// group spanning more than MaskLen lanes is truncated.
func EncodeShuffles(g Grouping) []Shuffle {
	keys := g.Keys()
	var (
		out            []Shuffle
		mask           []byte
		row, slot, col int
		open           bool
	)
	for _, k := range keys {
		px := g[k]
		if len(px) == 0 {
			continue
		}
		if open && (k.Row != row || k.Slot != slot) {
			out = append(out, newShuffle(row, slot, mask, col))
			mask, col = mask[:0], 0
		}
		row, slot, open = k.Row, k.Slot, true
		for i := col; i < k.Col-1; i++ {
			mask = append(mask, '0')
		}
		mask = append(mask, strconv.FormatInt(int64(px[0].X), 16)[0])
		col = k.Col
	}
	if open {
		out = append(out, newShuffle(row, slot, mask, col))
	}
	Logger().Debug("tapify: encoded shuffles", "keys", len(keys), "shuffles", len(out))
	return out
}

// WriteShuffles writes one "label col" line per shuffle.
func WriteShuffles(w io.Writer, shuffles []Shuffle) error {
	bw := bufio.NewWriter(w)
	for _, s := range shuffles {
		fmt.Fprintf(bw, "%s %d\n", s.Label(), s.Col)
	}
	return bw.Flush()
}

// WriteGroupingDump writes "row slot col y x" for the first destination
// pixel of every key of g, in key order.
func WriteGroupingDump(w io.Writer, g Grouping) error {
	bw := bufio.NewWriter(w)
	for _, k := range g.Keys() {
		if px := g[k]; len(px) > 0 {
			fmt.Fprintf(bw, "%d %d %d %d %d\n", k.Row, k.Slot, k.Col, px[0].Y, px[0].X)
		}
	}
	return bw.Flush()
}

// WritePixelDump writes "y x slot row col weight" for every tap of b.
func WritePixelDump(w io.Writer, b *Block) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			for j, t := range b.At(y, x) {
				fmt.Fprintf(bw, "%d %d %d %d %d %d\n", y, x, j, t.Row, t.Col, t.Weight)
			}
		}
	}
	return bw.Flush()
}
