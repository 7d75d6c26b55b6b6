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

// The protocol package implements the wire envelope and the full set of
// protocol messages: the 12-byte command codec, one concrete type per
// message kind, and the command dispatch used to decode inbound frames
package protocol

import (
	"io"
)

// Provide a common interface for message payloads
type Message interface {
	Command() Command
	Encode(io.Writer) error
	Decode(io.Reader) error
}

// NewMsgFromCommand returns an empty message of the concrete type matching
// the given command, ready to be decoded into. This is the total mapping
// from command to decode path: every supported command maps to exactly one
// message type, and anything else fails with UnrecognizedCommandError
func NewMsgFromCommand(cmd Command) (Message, error) {
	switch cmd {
	case CommandVersion:
		return &MsgVersion{}, nil
	case CommandVerack:
		return &MsgVerack{}, nil
	case CommandAddr:
		return &MsgAddr{}, nil
	case CommandInv:
		return &MsgInv{}, nil
	case CommandGetData:
		return &MsgGetData{}, nil
	case CommandNotFound:
		return &MsgNotFound{}, nil
	case CommandGetBlocks:
		return &MsgGetBlocks{}, nil
	case CommandGetHeaders:
		return &MsgGetHeaders{}, nil
	case CommandMemPool:
		return &MsgMemPool{}, nil
	case CommandTx:
		return &MsgTx{}, nil
	case CommandBlock:
		return &MsgBlock{}, nil
	case CommandHeaders:
		return &MsgHeaders{}, nil
	case CommandSendHeaders:
		return &MsgSendHeaders{}, nil
	case CommandGetAddr:
		return &MsgGetAddr{}, nil
	case CommandPing:
		return &MsgPing{}, nil
	case CommandPong:
		return &MsgPong{}, nil
	case CommandGetCFilters:
		return &MsgGetCFilters{}, nil
	case CommandCFilter:
		return &MsgCFilter{}, nil
	case CommandGetCFHeaders:
		return &MsgGetCFHeaders{}, nil
	case CommandCFHeaders:
		return &MsgCFHeaders{}, nil
	case CommandGetCFCheckpt:
		return &MsgGetCFCheckpt{}, nil
	case CommandCFCheckpt:
		return &MsgCFCheckpt{}, nil
	case CommandAlert:
		return &MsgAlert{}, nil
	case CommandReject:
		return &MsgReject{}, nil
	default:
		return nil, UnrecognizedCommandError{Command: string(cmd)}
	}
}

// emptyPayload is embedded by messages that carry no payload bytes
type emptyPayload struct{}

func (emptyPayload) Encode(io.Writer) error {
	return nil
}

func (emptyPayload) Decode(io.Reader) error {
	return nil
}
