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

// The ledger package contains the chain data types carried inside protocol
// messages: block headers, blocks, and transactions
package ledger

import (
	"bytes"
	"io"

	"github.com/blinklabs-io/gobitcoin/codec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BlockHeaderSize is the serialized size of a block header in bytes
const BlockHeaderSize = 80

// BlockHeader describes a block header on the wire
type BlockHeader struct {
	Version    int32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
}

func (h *BlockHeader) Encode(w io.Writer) error {
	if err := codec.WriteInt32(w, h.Version); err != nil {
		return err
	}
	if err := codec.WriteHash(w, h.PrevBlock); err != nil {
		return err
	}
	if err := codec.WriteHash(w, h.MerkleRoot); err != nil {
		return err
	}
	if err := codec.WriteUint32(w, h.Timestamp); err != nil {
		return err
	}
	if err := codec.WriteUint32(w, h.Bits); err != nil {
		return err
	}
	return codec.WriteUint32(w, h.Nonce)
}

func (h *BlockHeader) Decode(r io.Reader) error {
	var err error
	if h.Version, err = codec.ReadInt32(r); err != nil {
		return err
	}
	if h.PrevBlock, err = codec.ReadHash(r); err != nil {
		return err
	}
	if h.MerkleRoot, err = codec.ReadHash(r); err != nil {
		return err
	}
	if h.Timestamp, err = codec.ReadUint32(r); err != nil {
		return err
	}
	if h.Bits, err = codec.ReadUint32(r); err != nil {
		return err
	}
	h.Nonce, err = codec.ReadUint32(r)
	return err
}

// Hash returns the block hash: the double SHA-256 digest of the serialized
// header
func (h *BlockHeader) Hash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderSize))
	_ = h.Encode(buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Block describes a full block: a header plus its transactions
type Block struct {
	Header       BlockHeader
	Transactions []Transaction
}

func (b *Block) Encode(w io.Writer) error {
	if err := b.Header.Encode(w); err != nil {
		return err
	}
	if err := codec.WriteVarInt(w, uint64(len(b.Transactions))); err != nil {
		return err
	}
	for i := range b.Transactions {
		if err := b.Transactions[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (b *Block) Decode(r io.Reader) error {
	if err := b.Header.Decode(r); err != nil {
		return err
	}
	count, err := codec.ReadVarInt(r)
	if err != nil {
		return err
	}
	if err := codec.EnsureAllocation(count, minTxSize); err != nil {
		return err
	}
	b.Transactions = make([]Transaction, 0, count)
	for i := uint64(0); i < count; i++ {
		var tx Transaction
		if err := tx.Decode(r); err != nil {
			return err
		}
		b.Transactions = append(b.Transactions, tx)
	}
	return nil
}

// Hash returns the block hash of the contained header
func (b *Block) Hash() chainhash.Hash {
	return b.Header.Hash()
}
