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
)

// ReadVarInt reads a variable-length integer. The encoding must be
// canonical: a value small enough for a shorter encoding read from a longer
// one fails with ErrNonCanonicalVarInt
func ReadVarInt(r io.Reader) (uint64, error) {
	discriminant, err := ReadUint8(r)
	if err != nil {
		return 0, err
	}
	switch discriminant {
	case 0xff:
		val, err := ReadUint64(r)
		if err != nil {
			return 0, err
		}
		if val < 0x100000000 {
			return 0, ErrNonCanonicalVarInt
		}
		return val, nil
	case 0xfe:
		val, err := ReadUint32(r)
		if err != nil {
			return 0, err
		}
		if val < 0x10000 {
			return 0, ErrNonCanonicalVarInt
		}
		return uint64(val), nil
	case 0xfd:
		val, err := ReadUint16(r)
		if err != nil {
			return 0, err
		}
		if val < 0xfd {
			return 0, ErrNonCanonicalVarInt
		}
		return uint64(val), nil
	default:
		return uint64(discriminant), nil
	}
}

// WriteVarInt writes a variable-length integer using the smallest possible
// encoding
func WriteVarInt(w io.Writer, val uint64) error {
	switch {
	case val < 0xfd:
		return WriteUint8(w, uint8(val))
	case val <= 0xffff:
		if err := WriteUint8(w, 0xfd); err != nil {
			return err
		}
		return WriteUint16(w, uint16(val))
	case val <= 0xffffffff:
		if err := WriteUint8(w, 0xfe); err != nil {
			return err
		}
		return WriteUint32(w, uint32(val))
	default:
		if err := WriteUint8(w, 0xff); err != nil {
			return err
		}
		return WriteUint64(w, val)
	}
}

// VarIntSerializeSize returns the number of bytes WriteVarInt would emit
func VarIntSerializeSize(val uint64) int {
	switch {
	case val < 0xfd:
		return 1
	case val <= 0xffff:
		return 3
	case val <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// ReadVarBytes reads a variable-length byte string, validating the length
// prefix against the allocation ceiling before allocating
func ReadVarBytes(r io.Reader) ([]byte, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if err := EnsureAllocation(count, 1); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	buf := make([]byte, count)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteVarBytes writes a byte string prefixed with its length as a varint
func WriteVarBytes(w io.Writer, data []byte) error {
	if err := WriteVarInt(w, uint64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

func ReadVarString(r io.Reader) (string, error) {
	buf, err := ReadVarBytes(r)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func WriteVarString(w io.Writer, val string) error {
	return WriteVarBytes(w, []byte(val))
}
