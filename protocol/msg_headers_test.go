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

package protocol

import (
	"bytes"
	"errors"
	"testing"

	"github.com/blinklabs-io/gobitcoin/codec"
	"github.com/blinklabs-io/gobitcoin/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadersRoundTrip(t *testing.T) {
	msg := &MsgHeaders{
		Headers: []ledger.BlockHeader{
			{
				Version:   2,
				PrevBlock: fillHash(1),
				Timestamp: 1231469665,
				Bits:      0x1d00ffff,
				Nonce:     42,
			},
			{
				Version:   2,
				PrevBlock: fillHash(2),
				Timestamp: 1231470000,
				Bits:      0x1d00ffff,
				Nonce:     7,
			},
		},
	}
	var buf bytes.Buffer
	err := msg.Encode(&buf)
	require.NoError(t, err)
	// count (1) + 2 x (header + placeholder byte)
	assert.Equal(t, 1+2*(ledger.BlockHeaderSize+1), buf.Len())
	// Each header is followed by a zero placeholder byte
	assert.Equal(t, byte(0x00), buf.Bytes()[1+ledger.BlockHeaderSize])
	var decoded MsgHeaders
	err = decoded.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, msg.Headers, decoded.Headers)
}

func TestHeadersNonZeroPlaceholder(t *testing.T) {
	header := ledger.BlockHeader{Version: 2, Timestamp: 1231469665}
	var buf bytes.Buffer
	err := codec.WriteVarInt(&buf, 1)
	require.NoError(t, err)
	err = header.Encode(&buf)
	require.NoError(t, err)
	// Structurally valid header, but the placeholder claims a transaction
	buf.WriteByte(0x01)
	var msg MsgHeaders
	err = msg.Decode(bytes.NewReader(buf.Bytes()))
	var violationErr ProtocolViolationError
	require.True(t, errors.As(err, &violationErr))
	assert.Equal(
		t,
		"headers message should not contain transactions",
		violationErr.Message,
	)
}

func TestHeadersOversizedCount(t *testing.T) {
	// A count whose allocation would exceed the ceiling must fail before
	// any per-header decode runs, so no header bytes are provided at all
	var buf bytes.Buffer
	err := codec.WriteVarInt(&buf, codec.MaxAllocSize/ledger.BlockHeaderSize+1)
	require.NoError(t, err)
	var msg MsgHeaders
	err = msg.Decode(bytes.NewReader(buf.Bytes()))
	var oversizedErr codec.OversizedAllocationError
	require.True(t, errors.As(err, &oversizedErr))
	assert.Equal(t, uint64(codec.MaxAllocSize), oversizedErr.Max)
	assert.Greater(t, oversizedErr.Requested, uint64(codec.MaxAllocSize))
}

func TestHeadersOversizedCountInsideEnvelope(t *testing.T) {
	// The same hostile count wrapped in a valid checked frame
	var payload bytes.Buffer
	err := codec.WriteVarInt(&payload, uint64(0xffffffffffffffff))
	require.NoError(t, err)
	var buf bytes.Buffer
	err = codec.WriteUint32(&buf, mainnetMagic)
	require.NoError(t, err)
	err = CommandHeaders.Encode(&buf)
	require.NoError(t, err)
	_, err = codec.WriteCheckedData(&buf, payload.Bytes())
	require.NoError(t, err)
	_, err = DecodeEnvelope(buf.Bytes())
	assert.ErrorIs(t, err, codec.ErrOversizedAllocation)
}
