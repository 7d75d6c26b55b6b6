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

// The codec package implements the primitive consensus encoding used by
// every message on the wire: fixed-width little-endian integers, compact
// variable-length integers, length-prefixed byte strings, and the
// length+checksum framing that wraps message payloads
package codec

import (
	"io"
	"math"
	"math/bits"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MaxAllocSize is the largest allocation any single length-prefixed
// collection may request during decoding. Length fields come straight off
// the wire, so every decode path sizing an allocation from one must check
// against this ceiling before allocating.
const MaxAllocSize = 4_000_000

// EnsureAllocation validates that allocating count elements of elemSize
// bytes each stays within MaxAllocSize. The multiplication is overflow-safe.
func EnsureAllocation(count uint64, elemSize uint64) error {
	hi, lo := bits.Mul64(count, elemSize)
	if hi != 0 || lo > MaxAllocSize {
		requested := lo
		if hi != 0 {
			requested = math.MaxUint64
		}
		return OversizedAllocationError{
			Requested: requested,
			Max:       MaxAllocSize,
		}
	}
	return nil
}

func ReadUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func WriteUint8(w io.Writer, val uint8) error {
	_, err := w.Write([]byte{val})
	return err
}

func ReadUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return uint16(buf[0]) | uint16(buf[1])<<8, nil
}

func WriteUint16(w io.Writer, val uint16) error {
	buf := []byte{byte(val), byte(val >> 8)}
	_, err := w.Write(buf)
	return err
}

func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0]) | uint32(buf[1])<<8 |
		uint32(buf[2])<<16 | uint32(buf[3])<<24, nil
}

func WriteUint32(w io.Writer, val uint32) error {
	buf := []byte{
		byte(val),
		byte(val >> 8),
		byte(val >> 16),
		byte(val >> 24),
	}
	_, err := w.Write(buf)
	return err
}

func ReadUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	ret := uint64(0)
	for i := 7; i >= 0; i-- {
		ret = ret<<8 | uint64(buf[i])
	}
	return ret, nil
}

func WriteUint64(w io.Writer, val uint64) error {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(val >> (8 * i))
	}
	_, err := w.Write(buf[:])
	return err
}

func ReadInt32(r io.Reader) (int32, error) {
	val, err := ReadUint32(r)
	return int32(val), err
}

func WriteInt32(w io.Writer, val int32) error {
	return WriteUint32(w, uint32(val))
}

func ReadInt64(r io.Reader) (int64, error) {
	val, err := ReadUint64(r)
	return int64(val), err
}

func WriteInt64(w io.Writer, val int64) error {
	return WriteUint64(w, uint64(val))
}

// ReadBool reads a single byte and interprets any non-zero value as true
func ReadBool(r io.Reader) (bool, error) {
	val, err := ReadUint8(r)
	return val != 0, err
}

func WriteBool(w io.Writer, val bool) error {
	if val {
		return WriteUint8(w, 1)
	}
	return WriteUint8(w, 0)
}

// ReadHash reads a 32-byte hash in wire (little-endian) order
func ReadHash(r io.Reader) (chainhash.Hash, error) {
	var hash chainhash.Hash
	if _, err := io.ReadFull(r, hash[:]); err != nil {
		return hash, err
	}
	return hash, nil
}

func WriteHash(w io.Writer, hash chainhash.Hash) error {
	_, err := w.Write(hash[:])
	return err
}
