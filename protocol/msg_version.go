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
	"github.com/blinklabs-io/gobitcoin/protocol/common"
)

// MsgVersion announces a peer's capabilities during the connection
// handshake. The embedded addresses carry no timestamp in this context
type MsgVersion struct {
	ProtocolVersion int32
	Services        common.ServiceFlags
	Timestamp       int64
	Receiver        common.NetAddress
	Sender          common.NetAddress
	Nonce           uint64
	UserAgent       string
	StartHeight     int32
	Relay           bool
}

func (m *MsgVersion) Command() Command {
	return CommandVersion
}

func (m *MsgVersion) Encode(w io.Writer) error {
	if err := codec.WriteInt32(w, m.ProtocolVersion); err != nil {
		return err
	}
	if err := codec.WriteUint64(w, uint64(m.Services)); err != nil {
		return err
	}
	if err := codec.WriteInt64(w, m.Timestamp); err != nil {
		return err
	}
	if err := m.Receiver.Encode(w); err != nil {
		return err
	}
	if err := m.Sender.Encode(w); err != nil {
		return err
	}
	if err := codec.WriteUint64(w, m.Nonce); err != nil {
		return err
	}
	if err := codec.WriteVarString(w, m.UserAgent); err != nil {
		return err
	}
	if err := codec.WriteInt32(w, m.StartHeight); err != nil {
		return err
	}
	return codec.WriteBool(w, m.Relay)
}

func (m *MsgVersion) Decode(r io.Reader) error {
	var err error
	if m.ProtocolVersion, err = codec.ReadInt32(r); err != nil {
		return err
	}
	services, err := codec.ReadUint64(r)
	if err != nil {
		return err
	}
	m.Services = common.ServiceFlags(services)
	if m.Timestamp, err = codec.ReadInt64(r); err != nil {
		return err
	}
	if err := m.Receiver.Decode(r); err != nil {
		return err
	}
	if err := m.Sender.Decode(r); err != nil {
		return err
	}
	if m.Nonce, err = codec.ReadUint64(r); err != nil {
		return err
	}
	if m.UserAgent, err = codec.ReadVarString(r); err != nil {
		return err
	}
	if m.StartHeight, err = codec.ReadInt32(r); err != nil {
		return err
	}
	m.Relay, err = codec.ReadBool(r)
	return err
}

// MsgVerack acknowledges a version message. It carries no payload
type MsgVerack struct {
	emptyPayload
}

func (m *MsgVerack) Command() Command {
	return CommandVerack
}
