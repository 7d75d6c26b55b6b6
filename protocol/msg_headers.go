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
)

// MsgHeaders carries a batch of block headers. On the wire each header is
// followed by a single placeholder byte where a full block would carry its
// transaction count; it is always zero in a headers message
type MsgHeaders struct {
	Headers []ledger.BlockHeader
}

func (m *MsgHeaders) Command() Command {
	return CommandHeaders
}

func (m *MsgHeaders) Encode(w io.Writer) error {
	if err := codec.WriteVarInt(w, uint64(len(m.Headers))); err != nil {
		return err
	}
	for i := range m.Headers {
		if err := m.Headers[i].Encode(w); err != nil {
			return err
		}
		if err := codec.WriteUint8(w, 0); err != nil {
			return err
		}
	}
	return nil
}

func (m *MsgHeaders) Decode(r io.Reader) error {
	count, err := codec.ReadVarInt(r)
	if err != nil {
		return err
	}
	// The count comes straight off the wire, so it must be validated
	// against the allocation ceiling before any storage is reserved
	if err := codec.EnsureAllocation(count, ledger.BlockHeaderSize); err != nil {
		return err
	}
	m.Headers = make([]ledger.BlockHeader, 0, count)
	for i := uint64(0); i < count; i++ {
		var header ledger.BlockHeader
		if err := header.Decode(r); err != nil {
			return err
		}
		placeholder, err := codec.ReadUint8(r)
		if err != nil {
			return err
		}
		if placeholder != 0 {
			return ProtocolViolationError{
				Message: "headers message should not contain transactions",
			}
		}
		m.Headers = append(m.Headers, header)
	}
	return nil
}

// MsgSendHeaders asks the peer to announce new blocks with headers instead
// of inv. It carries no payload
type MsgSendHeaders struct {
	emptyPayload
}

func (m *MsgSendHeaders) Command() Command {
	return CommandSendHeaders
}
