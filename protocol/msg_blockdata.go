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
	"io"

	"github.com/blinklabs-io/gobitcoin/codec"
	"github.com/blinklabs-io/gobitcoin/ledger"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// InvType identifies the object referenced by an inventory entry
type InvType uint32

const (
	InvTypeError         InvType = 0
	InvTypeTx            InvType = 1
	InvTypeBlock         InvType = 2
	InvTypeFilteredBlock InvType = 3

	// InvWitnessFlag requests the witness serialization of the object
	InvWitnessFlag InvType = 1 << 30

	InvTypeWitnessTx    = InvTypeTx | InvWitnessFlag
	InvTypeWitnessBlock = InvTypeBlock | InvWitnessFlag
)

func (t InvType) String() string {
	switch t {
	case InvTypeError:
		return "error"
	case InvTypeTx:
		return "tx"
	case InvTypeBlock:
		return "block"
	case InvTypeFilteredBlock:
		return "filteredblock"
	case InvTypeWitnessTx:
		return "witnesstx"
	case InvTypeWitnessBlock:
		return "witnessblock"
	}
	return "unknown"
}

// invEntrySize is the serialized size of one inventory entry: type (4) +
// hash (32)
const invEntrySize = 36

// Inventory references a single object by type and hash
type Inventory struct {
	Type InvType
	Hash chainhash.Hash
}

func writeInvList(w io.Writer, items []Inventory) error {
	if err := codec.WriteVarInt(w, uint64(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := codec.WriteUint32(w, uint32(item.Type)); err != nil {
			return err
		}
		if err := codec.WriteHash(w, item.Hash); err != nil {
			return err
		}
	}
	return nil
}

func readInvList(r io.Reader) ([]Inventory, error) {
	count, err := codec.ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if err := codec.EnsureAllocation(count, invEntrySize); err != nil {
		return nil, err
	}
	items := make([]Inventory, 0, count)
	for i := uint64(0); i < count; i++ {
		var item Inventory
		invType, err := codec.ReadUint32(r)
		if err != nil {
			return nil, err
		}
		item.Type = InvType(invType)
		if item.Hash, err = codec.ReadHash(r); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// MsgInv advertises objects known to the sender
type MsgInv struct {
	Inventory []Inventory
}

func (m *MsgInv) Command() Command {
	return CommandInv
}

func (m *MsgInv) Encode(w io.Writer) error {
	return writeInvList(w, m.Inventory)
}

func (m *MsgInv) Decode(r io.Reader) error {
	var err error
	m.Inventory, err = readInvList(r)
	return err
}

// MsgGetData requests objects advertised in a previous inv
type MsgGetData struct {
	Inventory []Inventory
}

func (m *MsgGetData) Command() Command {
	return CommandGetData
}

func (m *MsgGetData) Encode(w io.Writer) error {
	return writeInvList(w, m.Inventory)
}

func (m *MsgGetData) Decode(r io.Reader) error {
	var err error
	m.Inventory, err = readInvList(r)
	return err
}

// MsgNotFound answers a getdata for objects the sender does not have
type MsgNotFound struct {
	Inventory []Inventory
}

func (m *MsgNotFound) Command() Command {
	return CommandNotFound
}

func (m *MsgNotFound) Encode(w io.Writer) error {
	return writeInvList(w, m.Inventory)
}

func (m *MsgNotFound) Decode(r io.Reader) error {
	var err error
	m.Inventory, err = readInvList(r)
	return err
}

func writeLocator(w io.Writer, hashes []chainhash.Hash) error {
	if err := codec.WriteVarInt(w, uint64(len(hashes))); err != nil {
		return err
	}
	for _, hash := range hashes {
		if err := codec.WriteHash(w, hash); err != nil {
			return err
		}
	}
	return nil
}

func readLocator(r io.Reader) ([]chainhash.Hash, error) {
	count, err := codec.ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if err := codec.EnsureAllocation(count, chainhash.HashSize); err != nil {
		return nil, err
	}
	hashes := make([]chainhash.Hash, 0, count)
	for i := uint64(0); i < count; i++ {
		hash, err := codec.ReadHash(r)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, hash)
	}
	return hashes, nil
}

// MsgGetBlocks requests inv entries for blocks after the best locator match
type MsgGetBlocks struct {
	ProtocolVersion uint32
	LocatorHashes   []chainhash.Hash
	StopHash        chainhash.Hash
}

func (m *MsgGetBlocks) Command() Command {
	return CommandGetBlocks
}

func (m *MsgGetBlocks) Encode(w io.Writer) error {
	if err := codec.WriteUint32(w, m.ProtocolVersion); err != nil {
		return err
	}
	if err := writeLocator(w, m.LocatorHashes); err != nil {
		return err
	}
	return codec.WriteHash(w, m.StopHash)
}

func (m *MsgGetBlocks) Decode(r io.Reader) error {
	var err error
	if m.ProtocolVersion, err = codec.ReadUint32(r); err != nil {
		return err
	}
	if m.LocatorHashes, err = readLocator(r); err != nil {
		return err
	}
	m.StopHash, err = codec.ReadHash(r)
	return err
}

// MsgGetHeaders requests headers for blocks after the best locator match
type MsgGetHeaders struct {
	ProtocolVersion uint32
	LocatorHashes   []chainhash.Hash
	StopHash        chainhash.Hash
}

func (m *MsgGetHeaders) Command() Command {
	return CommandGetHeaders
}

func (m *MsgGetHeaders) Encode(w io.Writer) error {
	if err := codec.WriteUint32(w, m.ProtocolVersion); err != nil {
		return err
	}
	if err := writeLocator(w, m.LocatorHashes); err != nil {
		return err
	}
	return codec.WriteHash(w, m.StopHash)
}

func (m *MsgGetHeaders) Decode(r io.Reader) error {
	var err error
	if m.ProtocolVersion, err = codec.ReadUint32(r); err != nil {
		return err
	}
	if m.LocatorHashes, err = readLocator(r); err != nil {
		return err
	}
	m.StopHash, err = codec.ReadHash(r)
	return err
}

// MsgMemPool requests the contents of the remote mempool. It carries no
// payload
type MsgMemPool struct {
	emptyPayload
}

func (m *MsgMemPool) Command() Command {
	return CommandMemPool
}

// MsgTx relays a single transaction
type MsgTx struct {
	Tx ledger.Transaction
}

func (m *MsgTx) Command() Command {
	return CommandTx
}

func (m *MsgTx) Encode(w io.Writer) error {
	return m.Tx.Encode(w)
}

func (m *MsgTx) Decode(r io.Reader) error {
	return m.Tx.Decode(r)
}

// MsgBlock relays a full block
type MsgBlock struct {
	Block ledger.Block
}

func (m *MsgBlock) Command() Command {
	return CommandBlock
}

func (m *MsgBlock) Encode(w io.Writer) error {
	return m.Block.Encode(w)
}

func (m *MsgBlock) Decode(r io.Reader) error {
	return m.Block.Decode(r)
}
