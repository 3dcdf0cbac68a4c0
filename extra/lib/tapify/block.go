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
	"math"

	"golang.org/x/image/math/f64"
)

// degreesPerRadian is the conversion used by the tables already checked in
// to the decoder. Using math.Pi would move a handful of samples that sit
// exactly on a grid line.
const degreesPerRadian = 57.2957795

// sweepEpsilon absorbs the rounding error of (End-Start)/Step.
const sweepEpsilon = 1e-9

// maxSweepAngles bounds the number of angles in a Sweep.
const maxSweepAngles = 1 << 20

// Rotation returns the affine transform that rotates an offset from a block's
// center by degrees and then moves it back into block coordinates. The input
// to the transform is the offset (y-radius, x-radius), in (row, column)
// order.
func Rotation(degrees, radius float64) f64.Aff3 {
	theta := degrees / degreesPerRadian
	sin, cos := math.Sincos(theta)
	return f64.Aff3{
		cos, -sin, radius,
		sin, cos, radius,
	}
}

func transform(m *f64.Aff3, p Point) Point {
	return Point{
		Row: m[0]*p.Row + m[1]*p.Col + m[2],
		Col: m[3]*p.Row + m[4]*p.Col + m[5],
	}
}

// Block is the set of taps for every destination pixel of a square block
// rotated by Angle degrees.
type Block struct {
	Angle float64
	Size  int
	// Taps is in row-major order: Taps[y*Size+x].
	Taps []TapSet
}

// At returns the taps for destination pixel (y, x).
func (b *Block) At(y, x int) TapSet {
	return b.Taps[y*b.Size+x]
}

// BlockTaps computes the taps of a size by size block rotated about its
// center. For even sizes the center is a half-integer point.
func BlockTaps(degrees float64, size int) (*Block, error) {
	if size < 1 {
		return nil, ErrBlockSize
	}
	radius := (float64(size) - 1) / 2
	m := Rotation(degrees, radius)
	b := &Block{
		Angle: degrees,
		Size:  size,
		Taps:  make([]TapSet, 0, size*size),
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := transform(&m, Point{
				Row: float64(y) - radius,
				Col: float64(x) - radius,
			})
			b.Taps = append(b.Taps, Taps(p))
		}
	}
	Logger().Debug("tapify: block taps", "angle", degrees, "size", size)
	return b, nil
}

// Sweep is an inclusive range of angles, in degrees.
type Sweep struct {
	Start, End, Step float64
}

// Angles returns Start, Start+Step, ... up to and including End. The count is
// derived from (End-Start)/Step up front rather than by accumulating Step, so
// an End that Step divides exactly is always included.
//
// It returns ErrStep if Step is not positive, or is so small relative to the
// range that the sweep would have more than a million angles.
func (s Sweep) Angles() ([]float64, error) {
	if !(s.Step > 0) {
		return nil, ErrStep
	}
	if s.End < s.Start {
		return nil, nil
	}
	q := math.Floor((s.End-s.Start)/s.Step + sweepEpsilon)
	if !(q < maxSweepAngles) {
		return nil, ErrStep
	}
	n := int(q) + 1
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = s.Start + float64(i)*s.Step
	}
	return angles, nil
}
