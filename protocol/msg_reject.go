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
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// RejectReason is the machine-readable code in a reject message
type RejectReason uint8

const (
	RejectReasonMalformed   RejectReason = 0x01
	RejectReasonInvalid     RejectReason = 0x10
	RejectReasonObsolete    RejectReason = 0x11
	RejectReasonDuplicate   RejectReason = 0x12
	RejectReasonNonstandard RejectReason = 0x40
	RejectReasonDust        RejectReason = 0x41
	RejectReasonFee         RejectReason = 0x42
	RejectReasonCheckpoint  RejectReason = 0x43
)

// MsgReject reports a rejected message back to its sender. Hash refers to
// the rejected object and is always present on the wire
type MsgReject struct {
	Message string
	Code    RejectReason
	Reason  string
	Hash    chainhash.Hash
}

func (m *MsgReject) Command() Command {
	return CommandReject
}

func (m *MsgReject) Encode(w io.Writer) error {
	if err := codec.WriteVarString(w, m.Message); err != nil {
		return err
	}
	if err := codec.WriteUint8(w, uint8(m.Code)); err != nil {
		return err
	}
	if err := codec.WriteVarString(w, m.Reason); err != nil {
		return err
	}
	return codec.WriteHash(w, m.Hash)
}

func (m *MsgReject) Decode(r io.Reader) error {
	var err error
	if m.Message, err = codec.ReadVarString(r); err != nil {
		return err
	}
	code, err := codec.ReadUint8(r)
	if err != nil {
		return err
	}
	m.Code = RejectReason(code)
	if m.Reason, err = codec.ReadVarString(r); err != nil {
		return err
	}
	m.Hash, err = codec.ReadHash(r)
	return err
}

// MsgAlert carries a legacy signed alert payload. The payload is opaque at
// this layer
type MsgAlert struct {
	Payload []byte
}

func (m *MsgAlert) Command() Command {
	return CommandAlert
}

func (m *MsgAlert) Encode(w io.Writer) error {
	return codec.WriteVarBytes(w, m.Payload)
}

func (m *MsgAlert) Decode(r io.Reader) error {
	var err error
	m.Payload, err = codec.ReadVarBytes(r)
	return err
}
