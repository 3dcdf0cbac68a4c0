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

// ----------------

// Package tapify computes the sub-pixel interpolation taps used by rotated
// block motion compensation.
//
// For a query point between integer grid samples, the four surrounding
// samples each get an inverse-distance weight. Weights are 16.16 fixed point
// and the four weights of a point always sum to Scale.
package tapify

import (
	"errors"
	"math"
)

// Scale is the fixed-point weight that represents 1.0.
const Scale = 1 << 16

// These errors can be returned by BlockTaps and Sweep.Angles.
var (
	ErrBlockSize = errors.New("tapify: block size must be positive")
	ErrStep      = errors.New("tapify: sweep step must be positive and not too small")
)

// Point is a continuous (row, column) position.
type Point struct {
	Row, Col float64
}

// GridPoint is an integer (row, column) sample position. It may lie outside
// of the block that produced it.
type GridPoint struct {
	Row, Col int
}

func (g GridPoint) point() Point {
	return Point{Row: float64(g.Row), Col: float64(g.Col)}
}

// Tap is one sample's contribution to an interpolated value.
type Tap struct {
	GridPoint
	Weight int
}

// The slots of a TapSet.
const (
	UpperLeft = iota
	UpperRight
	LowerLeft
	LowerRight
	NumSlots
)

// TapSet holds the four taps of one query point, indexed by UpperLeft,
// UpperRight, LowerLeft and LowerRight.
type TapSet [NumSlots]Tap

// Sum returns the total weight of the set. Sets returned by Taps always sum to
// Scale.
func (s TapSet) Sum() int {
	return s[0].Weight + s[1].Weight + s[2].Weight + s[3].Weight
}

// Distance returns the inverse Euclidean distance between p and q, or 1.0
// when they coincide.
func Distance(p, q Point) float64 {
	if p == q {
		return 1.0
	}
	dr, dc := p.Row-q.Row, p.Col-q.Col
	return 1 / math.Sqrt(dr*dr+dc*dc)
}

// Taps returns the four grid samples around p and their weights.
//
// A coordinate that is already integral has equal floor and ceiling, so the
// corners on that axis are duplicated. Each duplicate is weighted on its own.
// The first three weights are rounded and the LowerRight weight takes the
// remainder, so the sum is exactly Scale.
func Taps(p Point) TapSet {
	r0, r1 := int(math.Floor(p.Row)), int(math.Ceil(p.Row))
	c0, c1 := int(math.Floor(p.Col)), int(math.Ceil(p.Col))
	s := TapSet{
		UpperLeft:  {GridPoint: GridPoint{r0, c0}},
		UpperRight: {GridPoint: GridPoint{r0, c1}},
		LowerLeft:  {GridPoint: GridPoint{r1, c0}},
		LowerRight: {GridPoint: GridPoint{r1, c1}},
	}

	var d [NumSlots]float64
	sum := 0.0
	for i := range s {
		d[i] = Distance(s[i].point(), p)
		sum += d[i]
	}

	rest := Scale
	for i := UpperLeft; i < LowerRight; i++ {
		s[i].Weight = int((Scale*d[i] + sum/2) / sum)
		rest -= s[i].Weight
	}
	s[LowerRight].Weight = rest
	return s
}
