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
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ChecksumSize is the number of checksum bytes carried in a checked frame
const ChecksumSize = 4

// checkedFrameOverhead is the length prefix plus the checksum
const checkedFrameOverhead = 4 + ChecksumSize

// Checksum returns the frame checksum for data: the first four bytes of its
// double SHA-256 digest
func Checksum(data []byte) [ChecksumSize]byte {
	var sum [ChecksumSize]byte
	copy(sum[:], chainhash.DoubleHashB(data))
	return sum
}

// WriteCheckedData writes data wrapped in a checked frame: a 4-byte
// little-endian length, the 4-byte checksum of data, then data itself. It
// returns the total number of bytes written
func WriteCheckedData(w io.Writer, data []byte) (int, error) {
	if err := WriteUint32(w, uint32(len(data))); err != nil {
		return 0, err
	}
	sum := Checksum(data)
	if _, err := w.Write(sum[:]); err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	return checkedFrameOverhead + len(data), nil
}

// ReadCheckedData reads a checked frame and returns the verified payload
// bytes. The length prefix is validated against the allocation ceiling
// before the payload buffer is allocated, and the payload must hash to the
// checksum carried in the frame
func ReadCheckedData(r io.Reader) ([]byte, error) {
	length, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	if err := EnsureAllocation(uint64(length), 1); err != nil {
		return nil, err
	}
	var expected [ChecksumSize]byte
	if _, err := io.ReadFull(r, expected[:]); err != nil {
		return nil, err
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	if computed := Checksum(data); computed != expected {
		return nil, ChecksumMismatchError{
			Expected: expected,
			Computed: computed,
		}
	}
	return data, nil
}
