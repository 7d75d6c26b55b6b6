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
)

// CommandSize is the fixed width of a command on the wire. Shorter commands
// are NUL-padded
const CommandSize = 12

// Command is the human-readable ASCII tag naming a message kind
type Command string

const (
	CommandVersion      Command = "version"
	CommandVerack       Command = "verack"
	CommandAddr         Command = "addr"
	CommandInv          Command = "inv"
	CommandGetData      Command = "getdata"
	CommandNotFound     Command = "notfound"
	CommandGetBlocks    Command = "getblocks"
	CommandGetHeaders   Command = "getheaders"
	CommandMemPool      Command = "mempool"
	CommandTx           Command = "tx"
	CommandBlock        Command = "block"
	CommandHeaders      Command = "headers"
	CommandSendHeaders  Command = "sendheaders"
	CommandGetAddr      Command = "getaddr"
	CommandPing         Command = "ping"
	CommandPong         Command = "pong"
	CommandGetCFilters  Command = "getcfilters"
	CommandCFilter      Command = "cfilter"
	CommandGetCFHeaders Command = "getcfheaders"
	CommandCFHeaders    Command = "cfheaders"
	CommandGetCFCheckpt Command = "getcfcheckpt"
	CommandCFCheckpt    Command = "cfcheckpt"
	CommandAlert        Command = "alert"
	CommandReject       Command = "reject"
)

// Encode writes the command as exactly CommandSize NUL-padded bytes
func (c Command) Encode(w io.Writer) error {
	if len(c) > CommandSize {
		return CommandTooLongError{Command: string(c)}
	}
	var buf [CommandSize]byte
	copy(buf[:], c)
	_, err := w.Write(buf[:])
	return err
}

// DecodeCommand reads a fixed CommandSize bytes and builds the command from
// the non-zero bytes in order
func DecodeCommand(r io.Reader) (Command, error) {
	var buf [CommandSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return "", err
	}
	ret := make([]byte, 0, CommandSize)
	for _, b := range buf {
		if b > 0 {
			ret = append(ret, b)
		}
	}
	return Command(ret), nil
}

func (c Command) String() string {
	return string(c)
}
