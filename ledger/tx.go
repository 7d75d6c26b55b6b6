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
	"fmt"
	"io"

	"github.com/blinklabs-io/gobitcoin/codec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// Minimum serialized sizes, used to bound allocations from wire counts
	minTxInSize  = 41 // outpoint (36) + empty script (1) + sequence (4)
	minTxOutSize = 9  // value (8) + empty script (1)
	minTxSize    = 10 // version (4) + two empty counts (2) + lock time (4)

	// Marker and flag bytes that introduce witness data in a serialized
	// transaction (BIP 144)
	witnessMarker = 0x00
	witnessFlag   = 0x01
)

// OutPoint references a specific output of a previous transaction
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

func (o *OutPoint) Encode(w io.Writer) error {
	if err := codec.WriteHash(w, o.Hash); err != nil {
		return err
	}
	return codec.WriteUint32(w, o.Index)
}

func (o *OutPoint) Decode(r io.Reader) error {
	var err error
	if o.Hash, err = codec.ReadHash(r); err != nil {
		return err
	}
	o.Index, err = codec.ReadUint32(r)
	return err
}

// TxWitness holds the witness stack for a single transaction input
type TxWitness [][]byte

// TxIn describes a transaction input
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Witness          TxWitness
	Sequence         uint32
}

// TxOut describes a transaction output
type TxOut struct {
	Value    int64
	PkScript []byte
}

// Transaction describes a transaction on the wire, with or without witness
// data
type Transaction struct {
	Version  int32
	TxIn     []TxIn
	TxOut    []TxOut
	LockTime uint32
}

// HasWitness returns true if any input carries witness data
func (t *Transaction) HasWitness() bool {
	for i := range t.TxIn {
		if len(t.TxIn[i].Witness) > 0 {
			return true
		}
	}
	return false
}

// Encode serializes the transaction, using the extended (BIP 144) format
// when any input carries witness data
func (t *Transaction) Encode(w io.Writer) error {
	return t.encode(w, t.HasWitness())
}

func (t *Transaction) encode(w io.Writer, withWitness bool) error {
	if err := codec.WriteInt32(w, t.Version); err != nil {
		return err
	}
	if withWitness {
		if _, err := w.Write([]byte{witnessMarker, witnessFlag}); err != nil {
			return err
		}
	}
	if err := codec.WriteVarInt(w, uint64(len(t.TxIn))); err != nil {
		return err
	}
	for i := range t.TxIn {
		txIn := &t.TxIn[i]
		if err := txIn.PreviousOutPoint.Encode(w); err != nil {
			return err
		}
		if err := codec.WriteVarBytes(w, txIn.SignatureScript); err != nil {
			return err
		}
		if err := codec.WriteUint32(w, txIn.Sequence); err != nil {
			return err
		}
	}
	if err := codec.WriteVarInt(w, uint64(len(t.TxOut))); err != nil {
		return err
	}
	for i := range t.TxOut {
		txOut := &t.TxOut[i]
		if err := codec.WriteInt64(w, txOut.Value); err != nil {
			return err
		}
		if err := codec.WriteVarBytes(w, txOut.PkScript); err != nil {
			return err
		}
	}
	if withWitness {
		for i := range t.TxIn {
			witness := t.TxIn[i].Witness
			if err := codec.WriteVarInt(w, uint64(len(witness))); err != nil {
				return err
			}
			for _, item := range witness {
				if err := codec.WriteVarBytes(w, item); err != nil {
					return err
				}
			}
		}
	}
	return codec.WriteUint32(w, t.LockTime)
}

func (t *Transaction) Decode(r io.Reader) error {
	var err error
	if t.Version, err = codec.ReadInt32(r); err != nil {
		return err
	}
	inCount, err := codec.ReadVarInt(r)
	if err != nil {
		return err
	}
	// A zero input count marks the extended format: a flag byte follows,
	// then the real input count
	withWitness := false
	if inCount == witnessMarker {
		flag, err := codec.ReadUint8(r)
		if err != nil {
			return err
		}
		if flag != witnessFlag {
			return fmt.Errorf("invalid witness flag 0x%02x", flag)
		}
		withWitness = true
		if inCount, err = codec.ReadVarInt(r); err != nil {
			return err
		}
	}
	if err := codec.EnsureAllocation(inCount, minTxInSize); err != nil {
		return err
	}
	t.TxIn = make([]TxIn, 0, inCount)
	for i := uint64(0); i < inCount; i++ {
		var txIn TxIn
		if err := txIn.PreviousOutPoint.Decode(r); err != nil {
			return err
		}
		if txIn.SignatureScript, err = codec.ReadVarBytes(r); err != nil {
			return err
		}
		if txIn.Sequence, err = codec.ReadUint32(r); err != nil {
			return err
		}
		t.TxIn = append(t.TxIn, txIn)
	}
	outCount, err := codec.ReadVarInt(r)
	if err != nil {
		return err
	}
	if err := codec.EnsureAllocation(outCount, minTxOutSize); err != nil {
		return err
	}
	t.TxOut = make([]TxOut, 0, outCount)
	for i := uint64(0); i < outCount; i++ {
		var txOut TxOut
		if txOut.Value, err = codec.ReadInt64(r); err != nil {
			return err
		}
		if txOut.PkScript, err = codec.ReadVarBytes(r); err != nil {
			return err
		}
		t.TxOut = append(t.TxOut, txOut)
	}
	if withWitness {
		for i := range t.TxIn {
			itemCount, err := codec.ReadVarInt(r)
			if err != nil {
				return err
			}
			if err := codec.EnsureAllocation(itemCount, 1); err != nil {
				return err
			}
			witness := make(TxWitness, 0, itemCount)
			for j := uint64(0); j < itemCount; j++ {
				item, err := codec.ReadVarBytes(r)
				if err != nil {
					return err
				}
				witness = append(witness, item)
			}
			t.TxIn[i].Witness = witness
		}
	}
	t.LockTime, err = codec.ReadUint32(r)
	return err
}

// TxHash returns the transaction hash: the double SHA-256 digest of the
// transaction serialized without witness data
func (t *Transaction) TxHash() chainhash.Hash {
	var buf bytes.Buffer
	_ = t.encode(&buf, false)
	return chainhash.DoubleHashH(buf.Bytes())
}

// WitnessHash returns the digest of the full serialization, including any
// witness data. For transactions without witness data it equals TxHash
func (t *Transaction) WitnessHash() chainhash.Hash {
	var buf bytes.Buffer
	_ = t.Encode(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}
