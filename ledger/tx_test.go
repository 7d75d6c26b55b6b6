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
	"testing"

	"github.com/blinklabs-io/gobitcoin/codec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyTxHex = "0100000001a15d57094aa7a21a28cb20b59aab8fc7d1149a3bdbcddba9c622e4f5f6a99ece010000006c49" +
	"3046022100f93bb0e7d8db7bd46e40132d1f8242026e045f03a0efe71bbb8e3f475e970d790221009337cd7f1f92" +
	"9f00cc6ff01f03729b069a7c21b59b1736ddfee5db5946c5da8c0121033b9b137ee87d5a812d6f506efdd37f0aff" +
	"a7ffc310711c06c7f3e097c9447c52ffffffff0100e1f505000000001976a9140389035a9225b3839e2bbf32d826" +
	"a1e222031fd888ac00000000"

func TestTransactionLegacyVector(t *testing.T) {
	raw := hexDecode(legacyTxHex)
	var tx Transaction
	err := tx.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, int32(1), tx.Version)
	require.Len(t, tx.TxIn, 1)
	require.Len(t, tx.TxOut, 1)
	assert.Equal(t, uint32(1), tx.TxIn[0].PreviousOutPoint.Index)
	assert.Equal(t, int64(100000000), tx.TxOut[0].Value)
	assert.False(t, tx.HasWitness())
	assert.Equal(t, tx.TxHash(), tx.WitnessHash())
	var buf bytes.Buffer
	err = tx.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, raw, buf.Bytes())
}

func TestTransactionWitnessRoundTrip(t *testing.T) {
	tx := Transaction{
		Version: 2,
		TxIn: []TxIn{
			{
				PreviousOutPoint: OutPoint{
					Hash:  chainhash.Hash{0x01, 0x02, 0x03},
					Index: 1,
				},
				Witness: TxWitness{
					{0x30, 0x45, 0x02, 0x21},
					{0x02, 0xab},
				},
				Sequence: 0xfffffffd,
			},
		},
		TxOut: []TxOut{
			{
				Value:    21000,
				PkScript: []byte{0x00, 0x14, 0xde, 0xad, 0xbe, 0xef},
			},
		},
		LockTime: 500000,
	}
	require.True(t, tx.HasWitness())
	var buf bytes.Buffer
	err := tx.Encode(&buf)
	require.NoError(t, err)
	// Marker and flag bytes directly after the version
	assert.Equal(t, byte(0x00), buf.Bytes()[4])
	assert.Equal(t, byte(0x01), buf.Bytes()[5])
	var decoded Transaction
	err = decoded.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, tx, decoded)
	// Witness data is excluded from the txid but not the wtxid
	assert.NotEqual(t, tx.TxHash(), tx.WitnessHash())
}

func TestTransactionInvalidWitnessFlag(t *testing.T) {
	var buf bytes.Buffer
	err := codec.WriteInt32(&buf, 1)
	require.NoError(t, err)
	// Extended format marker followed by an unsupported flag byte
	buf.Write([]byte{0x00, 0x02})
	var tx Transaction
	err = tx.Decode(bytes.NewReader(buf.Bytes()))
	assert.ErrorContains(t, err, "invalid witness flag")
}

func TestTransactionOversizedInputCount(t *testing.T) {
	var buf bytes.Buffer
	err := codec.WriteInt32(&buf, 1)
	require.NoError(t, err)
	err = codec.WriteVarInt(&buf, codec.MaxAllocSize)
	require.NoError(t, err)
	var tx Transaction
	err = tx.Decode(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, codec.ErrOversizedAllocation)
}
