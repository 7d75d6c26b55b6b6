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

// addrEntrySize is the serialized size of one addr list entry: timestamp
// (4) + services (8) + IP (16) + port (2)
const addrEntrySize = 30

// TimestampedAddress is one entry in an addr payload: a peer address plus
// the time it was last known to be active
type TimestampedAddress struct {
	Timestamp uint32
	Address   common.NetAddress
}

// MsgAddr relays known peer addresses
type MsgAddr struct {
	Addresses []TimestampedAddress
}

func (m *MsgAddr) Command() Command {
	return CommandAddr
}

func (m *MsgAddr) Encode(w io.Writer) error {
	if err := codec.WriteVarInt(w, uint64(len(m.Addresses))); err != nil {
		return err
	}
	for i := range m.Addresses {
		entry := &m.Addresses[i]
		if err := codec.WriteUint32(w, entry.Timestamp); err != nil {
			return err
		}
		if err := entry.Address.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *MsgAddr) Decode(r io.Reader) error {
	count, err := codec.ReadVarInt(r)
	if err != nil {
		return err
	}
	if err := codec.EnsureAllocation(count, addrEntrySize); err != nil {
		return err
	}
	m.Addresses = make([]TimestampedAddress, 0, count)
	for i := uint64(0); i < count; i++ {
		var entry TimestampedAddress
		if entry.Timestamp, err = codec.ReadUint32(r); err != nil {
			return err
		}
		if err := entry.Address.Decode(r); err != nil {
			return err
		}
		m.Addresses = append(m.Addresses, entry)
	}
	return nil
}

// MsgGetAddr requests known peer addresses. It carries no payload
type MsgGetAddr struct {
	emptyPayload
}

func (m *MsgGetAddr) Command() Command {
	return CommandGetAddr
}
