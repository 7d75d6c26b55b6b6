// Copyright 2025 Blink Labs Software
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

package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumEmptyPayload(t *testing.T) {
	// First four bytes of sha256d("")
	assert.Equal(t, [4]byte{0x5d, 0xf6, 0xe0, 0xe2}, Checksum(nil))
}

func TestCheckedDataRoundTrip(t *testing.T) {
	payload := []byte{0x64, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	var buf bytes.Buffer
	written, err := WriteCheckedData(&buf, payload)
	require.NoError(t, err)
	assert.Equal(t, 8+len(payload), written)
	assert.Equal(t, written, buf.Len())
	decoded, err := ReadCheckedData(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestCheckedDataEmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	written, err := WriteCheckedData(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, written)
	assert.Equal(
		t,
		[]byte{0x00, 0x00, 0x00, 0x00, 0x5d, 0xf6, 0xe0, 0xe2},
		buf.Bytes(),
	)
}

func TestCheckedDataCorruption(t *testing.T) {
	payload := []byte("consensus-critical bytes")
	var buf bytes.Buffer
	_, err := WriteCheckedData(&buf, payload)
	require.NoError(t, err)
	// Flipping any single bit in the payload region must fail the checksum
	for i := 8; i < buf.Len(); i++ {
		for bit := 0; bit < 8; bit++ {
			corrupted := bytes.Clone(buf.Bytes())
			corrupted[i] ^= 1 << bit
			_, err := ReadCheckedData(bytes.NewReader(corrupted))
			assert.ErrorIs(t, err, ErrChecksumMismatch)
		}
	}
}

func TestCheckedDataTruncated(t *testing.T) {
	payload := []byte("truncated")
	var buf bytes.Buffer
	_, err := WriteCheckedData(&buf, payload)
	require.NoError(t, err)
	_, err = ReadCheckedData(bytes.NewReader(buf.Bytes()[:buf.Len()-2]))
	assert.Error(t, err)
}

func TestCheckedDataOversizedLength(t *testing.T) {
	// Hostile length prefix; no payload of that size follows
	frame := []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00}
	_, err := ReadCheckedData(bytes.NewReader(frame))
	assert.ErrorIs(t, err, ErrOversizedAllocation)
}
