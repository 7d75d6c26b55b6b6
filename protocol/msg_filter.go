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

// Compact block filter messages (BIP 157)

package protocol

import (
	"io"

	"github.com/blinklabs-io/gobitcoin/codec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MsgGetCFilters requests compact filters for a range of blocks
type MsgGetCFilters struct {
	FilterType  uint8
	StartHeight uint32
	StopHash    chainhash.Hash
}

func (m *MsgGetCFilters) Command() Command {
	return CommandGetCFilters
}

func (m *MsgGetCFilters) Encode(w io.Writer) error {
	if err := codec.WriteUint8(w, m.FilterType); err != nil {
		return err
	}
	if err := codec.WriteUint32(w, m.StartHeight); err != nil {
		return err
	}
	return codec.WriteHash(w, m.StopHash)
}

func (m *MsgGetCFilters) Decode(r io.Reader) error {
	var err error
	if m.FilterType, err = codec.ReadUint8(r); err != nil {
		return err
	}
	if m.StartHeight, err = codec.ReadUint32(r); err != nil {
		return err
	}
	m.StopHash, err = codec.ReadHash(r)
	return err
}

// MsgCFilter delivers the compact filter for a single block
type MsgCFilter struct {
	FilterType uint8
	BlockHash  chainhash.Hash
	Filter     []byte
}

func (m *MsgCFilter) Command() Command {
	return CommandCFilter
}

func (m *MsgCFilter) Encode(w io.Writer) error {
	if err := codec.WriteUint8(w, m.FilterType); err != nil {
		return err
	}
	if err := codec.WriteHash(w, m.BlockHash); err != nil {
		return err
	}
	return codec.WriteVarBytes(w, m.Filter)
}

func (m *MsgCFilter) Decode(r io.Reader) error {
	var err error
	if m.FilterType, err = codec.ReadUint8(r); err != nil {
		return err
	}
	if m.BlockHash, err = codec.ReadHash(r); err != nil {
		return err
	}
	m.Filter, err = codec.ReadVarBytes(r)
	return err
}

// MsgGetCFHeaders requests filter headers for a range of blocks
type MsgGetCFHeaders struct {
	FilterType  uint8
	StartHeight uint32
	StopHash    chainhash.Hash
}

func (m *MsgGetCFHeaders) Command() Command {
	return CommandGetCFHeaders
}

func (m *MsgGetCFHeaders) Encode(w io.Writer) error {
	if err := codec.WriteUint8(w, m.FilterType); err != nil {
		return err
	}
	if err := codec.WriteUint32(w, m.StartHeight); err != nil {
		return err
	}
	return codec.WriteHash(w, m.StopHash)
}

func (m *MsgGetCFHeaders) Decode(r io.Reader) error {
	var err error
	if m.FilterType, err = codec.ReadUint8(r); err != nil {
		return err
	}
	if m.StartHeight, err = codec.ReadUint32(r); err != nil {
		return err
	}
	m.StopHash, err = codec.ReadHash(r)
	return err
}

// MsgCFHeaders delivers a chain of filter hashes for a range of blocks
type MsgCFHeaders struct {
	FilterType           uint8
	StopHash             chainhash.Hash
	PreviousFilterHeader chainhash.Hash
	FilterHashes         []chainhash.Hash
}

func (m *MsgCFHeaders) Command() Command {
	return CommandCFHeaders
}

func (m *MsgCFHeaders) Encode(w io.Writer) error {
	if err := codec.WriteUint8(w, m.FilterType); err != nil {
		return err
	}
	if err := codec.WriteHash(w, m.StopHash); err != nil {
		return err
	}
	if err := codec.WriteHash(w, m.PreviousFilterHeader); err != nil {
		return err
	}
	return writeLocator(w, m.FilterHashes)
}

func (m *MsgCFHeaders) Decode(r io.Reader) error {
	var err error
	if m.FilterType, err = codec.ReadUint8(r); err != nil {
		return err
	}
	if m.StopHash, err = codec.ReadHash(r); err != nil {
		return err
	}
	if m.PreviousFilterHeader, err = codec.ReadHash(r); err != nil {
		return err
	}
	m.FilterHashes, err = readLocator(r)
	return err
}

// MsgGetCFCheckpt requests evenly spaced filter header checkpoints
type MsgGetCFCheckpt struct {
	FilterType uint8
	StopHash   chainhash.Hash
}

func (m *MsgGetCFCheckpt) Command() Command {
	return CommandGetCFCheckpt
}

func (m *MsgGetCFCheckpt) Encode(w io.Writer) error {
	if err := codec.WriteUint8(w, m.FilterType); err != nil {
		return err
	}
	return codec.WriteHash(w, m.StopHash)
}

func (m *MsgGetCFCheckpt) Decode(r io.Reader) error {
	var err error
	if m.FilterType, err = codec.ReadUint8(r); err != nil {
		return err
	}
	m.StopHash, err = codec.ReadHash(r)
	return err
}

// MsgCFCheckpt delivers filter header checkpoints
type MsgCFCheckpt struct {
	FilterType    uint8
	StopHash      chainhash.Hash
	FilterHeaders []chainhash.Hash
}

func (m *MsgCFCheckpt) Command() Command {
	return CommandCFCheckpt
}

func (m *MsgCFCheckpt) Encode(w io.Writer) error {
	if err := codec.WriteUint8(w, m.FilterType); err != nil {
		return err
	}
	if err := codec.WriteHash(w, m.StopHash); err != nil {
		return err
	}
	return writeLocator(w, m.FilterHeaders)
}

func (m *MsgCFCheckpt) Decode(r io.Reader) error {
	var err error
	if m.FilterType, err = codec.ReadUint8(r); err != nil {
		return err
	}
	if m.StopHash, err = codec.ReadHash(r); err != nil {
		return err
	}
	m.FilterHeaders, err = readLocator(r)
	return err
}
