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
	"bytes"
	"io"

	"github.com/blinklabs-io/gobitcoin/codec"
)

// EnvelopeHeaderSize is the fixed byte count preceding the payload: network
// magic (4) + command (12) + payload length (4) + checksum (4)
const EnvelopeHeaderSize = 24

// Envelope is the outer frame for a single protocol message: the network
// magic identifying which network the message targets, plus the payload
type Envelope struct {
	NetworkMagic uint32
	Payload      Message
}

// NewEnvelope returns an Envelope wrapping the given payload
func NewEnvelope(networkMagic uint32, payload Message) *Envelope {
	return &Envelope{
		NetworkMagic: networkMagic,
		Payload:      payload,
	}
}

// Command returns the command of the wrapped payload
func (e *Envelope) Command() Command {
	return e.Payload.Command()
}

// Encode writes the envelope: magic, the NUL-padded command, then the
// payload wrapped in a length+checksum frame. It returns the total number
// of bytes written
func (e *Envelope) Encode(w io.Writer) (int, error) {
	if err := codec.WriteUint32(w, e.NetworkMagic); err != nil {
		return 0, err
	}
	if err := e.Payload.Command().Encode(w); err != nil {
		return 0, err
	}
	var payload bytes.Buffer
	if err := e.Payload.Encode(&payload); err != nil {
		return 0, err
	}
	frameLen, err := codec.WriteCheckedData(w, payload.Bytes())
	if err != nil {
		return 0, err
	}
	return 4 + CommandSize + frameLen, nil
}

// Bytes returns the serialized envelope
func (e *Envelope) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := e.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeEnvelope decodes an envelope from data, requiring the entire input
// to be consumed. Trailing bytes fail with ErrTrailingData
func DecodeEnvelope(data []byte) (*Envelope, error) {
	env, consumed, err := DecodeEnvelopePartial(data)
	if err != nil {
		return nil, err
	}
	if consumed != len(data) {
		return nil, ErrTrailingData
	}
	return env, nil
}

// DecodeEnvelopePartial decodes one envelope from a prefix of data and
// returns the number of bytes consumed, leaving any remainder for the
// caller. Decoding is all-or-nothing: on any error no envelope is returned
func DecodeEnvelopePartial(data []byte) (*Envelope, int, error) {
	r := bytes.NewReader(data)
	env, err := decodeEnvelope(r)
	if err != nil {
		return nil, 0, err
	}
	return env, len(data) - r.Len(), nil
}

func decodeEnvelope(r io.Reader) (*Envelope, error) {
	magic, err := codec.ReadUint32(r)
	if err != nil {
		return nil, err
	}
	cmd, err := DecodeCommand(r)
	if err != nil {
		return nil, err
	}
	// The payload is checksum-verified before any dispatch happens, so an
	// unknown command is only reported for an intact frame
	payload, err := codec.ReadCheckedData(r)
	if err != nil {
		return nil, err
	}
	msg, err := NewMsgFromCommand(cmd)
	if err != nil {
		return nil, err
	}
	// Delegated decode failures propagate verbatim
	if err := msg.Decode(bytes.NewReader(payload)); err != nil {
		return nil, err
	}
	return &Envelope{
		NetworkMagic: magic,
		Payload:      msg,
	}, nil
}
