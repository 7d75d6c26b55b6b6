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
	"errors"
	"fmt"
)

// OversizedAllocationError indicates a wire length field that would force an
// allocation above MaxAllocSize
type OversizedAllocationError struct {
	Requested uint64
	Max       uint64
}

func (e OversizedAllocationError) Error() string {
	return fmt.Sprintf(
		"oversized vector allocation: requested %d bytes, maximum %d bytes",
		e.Requested,
		e.Max,
	)
}

// Sentinel error for oversized allocations so callers can use errors.Is
var ErrOversizedAllocation = errors.New("oversized vector allocation")

func (OversizedAllocationError) Is(target error) bool {
	return target == ErrOversizedAllocation
}

// ChecksumMismatchError indicates payload bytes that do not match the
// checksum carried in their frame
type ChecksumMismatchError struct {
	Expected [ChecksumSize]byte
	Computed [ChecksumSize]byte
}

func (e ChecksumMismatchError) Error() string {
	return fmt.Sprintf(
		"checksum mismatch: frame carries %x, payload hashes to %x",
		e.Expected,
		e.Computed,
	)
}

// Sentinel error for checksum mismatches so callers can use errors.Is
var ErrChecksumMismatch = errors.New("checksum mismatch")

func (ChecksumMismatchError) Is(target error) bool {
	return target == ErrChecksumMismatch
}

// ErrNonCanonicalVarInt indicates a variable-length integer that used more
// bytes than its value requires
var ErrNonCanonicalVarInt = errors.New("non-canonical varint encoding")
