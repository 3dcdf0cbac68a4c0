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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBlockIdentity(t *testing.T) {
	b, err := BlockTaps(0, 2)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, WriteBlock(buf, b))

	const want = "" +
		" // angle of 0.0 degrees\n" +
		"  0,  0, 16384,    0,  0, 16384,    0,  0, 16384,    0,  0, 16384,   //  0, 0 \n" +
		"  0,  1, 16384,    0,  1, 16384,    0,  1, 16384,    0,  1, 16384,   //  0, 1 \n" +
		"  1,  0, 16384,    1,  0, 16384,    1,  0, 16384,    1,  0, 16384,   //  1, 0 \n" +
		"  1,  1, 16384,    1,  1, 16384,    1,  1, 16384,    1,  1, 16384,   //  1, 1 \n"
	assert.Equal(t, want, buf.String())
}

func TestWriteBlockRotated(t *testing.T) {
	b, err := BlockTaps(45, 4)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, WriteBlock(buf, b))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+16)
	assert.Equal(t, " // angle of 45.0 degrees", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "   //  0, 0 "), lines[1])
	assert.True(t, strings.HasSuffix(lines[16], "   //  3, 3 "), lines[16])
	for _, line := range lines[1:] {
		assert.Equal(t, 4*3+1, strings.Count(line, ","), line)
	}
}

func TestWriteSweep(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteSweep(buf, Sweep{0, 90, 45}, 2))

	var headers []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, " // angle of") {
			headers = append(headers, line)
		}
	}
	assert.Equal(t, []string{
		" // angle of 0.0 degrees",
		" // angle of 45.0 degrees",
		" // angle of 90.0 degrees",
	}, headers)
	assert.Equal(t, 3*(1+4), strings.Count(buf.String(), "\n"))
}

func TestWriteSweepErrors(t *testing.T) {
	assert.ErrorIs(t, WriteSweep(&bytes.Buffer{}, Sweep{0, 90, 0}, 2), ErrStep)
	assert.ErrorIs(t, WriteSweep(&bytes.Buffer{}, Sweep{0, 90, 45}, 0), ErrBlockSize)
}

func TestFormatAngle(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{45, "45.0"},
		{22.5, "22.5"},
		{-7.5, "-7.5"},
		{0.1 + 0.2, "0.3"},
		{360, "360.0"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, formatAngle(tc.in))
	}
}
