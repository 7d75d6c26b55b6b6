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
)

// MsgPing probes a connection for liveness
type MsgPing struct {
	Nonce uint64
}

func (m *MsgPing) Command() Command {
	return CommandPing
}

func (m *MsgPing) Encode(w io.Writer) error {
	return codec.WriteUint64(w, m.Nonce)
}

func (m *MsgPing) Decode(r io.Reader) error {
	var err error
	m.Nonce, err = codec.ReadUint64(r)
	return err
}

// MsgPong answers a ping, echoing its nonce
type MsgPong struct {
	Nonce uint64
}

func (m *MsgPong) Command() Command {
	return CommandPong
}

func (m *MsgPong) Encode(w io.Writer) error {
	return codec.WriteUint64(w, m.Nonce)
}

func (m *MsgPong) Decode(r io.Reader) error {
	var err error
	m.Nonce, err = codec.ReadUint64(r)
	return err
}
