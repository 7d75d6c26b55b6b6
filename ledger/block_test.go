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

package ledger

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/blinklabs-io/gobitcoin/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to allow inline hex decoding without capturing the error
func hexDecode(data string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	data = strings.TrimSpace(data)
	decoded, err := hex.DecodeString(data)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

const genesisHeaderHex = "01000000000000000000000000000000000000000000000000000000000000000000000" +
	"03ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa4b1e5e4a29ab5f49ffff001d1dac2b7c"

func TestBlockHeaderGenesisVector(t *testing.T) {
	raw := hexDecode(genesisHeaderHex)
	require.Len(t, raw, BlockHeaderSize)
	var header BlockHeader
	err := header.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, int32(1), header.Version)
	assert.Equal(t, uint32(1231006505), header.Timestamp)
	assert.Equal(t, uint32(0x1d00ffff), header.Bits)
	assert.Equal(t, uint32(2083236893), header.Nonce)
	assert.Equal(
		t,
		"000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f",
		header.Hash().String(),
	)
	var buf bytes.Buffer
	err = header.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, raw, buf.Bytes())
}

func TestBlockRoundTrip(t *testing.T) {
	block := Block{
		Header: BlockHeader{
			Version:   2,
			Timestamp: 1231469665,
			Bits:      0x1d00ffff,
			Nonce:     2573394689,
		},
		Transactions: []Transaction{
			{
				Version: 1,
				TxIn: []TxIn{
					{
						PreviousOutPoint: OutPoint{Index: 0xffffffff},
						SignatureScript:  []byte{0x04, 0xff, 0xff, 0x00, 0x1d},
						Sequence:         0xffffffff,
					},
				},
				TxOut: []TxOut{
					{
						Value:    5000000000,
						PkScript: []byte{0x51},
					},
				},
			},
		},
	}
	var buf bytes.Buffer
	err := block.Encode(&buf)
	require.NoError(t, err)
	var decoded Block
	err = decoded.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, block, decoded)
	assert.Equal(t, block.Header.Hash(), decoded.Hash())
}

func TestBlockOversizedTxCount(t *testing.T) {
	var buf bytes.Buffer
	header := BlockHeader{Version: 1}
	err := header.Encode(&buf)
	require.NoError(t, err)
	// Transaction count that would require more than the allocation ceiling
	err = codec.WriteVarInt(&buf, codec.MaxAllocSize)
	require.NoError(t, err)
	var block Block
	err = block.Decode(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, codec.ErrOversizedAllocation)
}
