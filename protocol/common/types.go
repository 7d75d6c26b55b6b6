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

// The common package contains wire types shared by multiple protocol
// messages
package common

import (
	"io"
	"net"
	"strings"

	"github.com/blinklabs-io/gobitcoin/codec"
)

// ServiceFlags identifies the services advertised by a peer
type ServiceFlags uint64

const (
	ServiceFlagNetwork        ServiceFlags = 1 << 0
	ServiceFlagGetUtxo        ServiceFlags = 1 << 1
	ServiceFlagBloom          ServiceFlags = 1 << 2
	ServiceFlagWitness        ServiceFlags = 1 << 3
	ServiceFlagCompactFilters ServiceFlags = 1 << 6
	ServiceFlagNetworkLimited ServiceFlags = 1 << 10
)

var serviceFlagNames = []struct {
	flag ServiceFlags
	name string
}{
	{ServiceFlagNetwork, "Network"},
	{ServiceFlagGetUtxo, "GetUtxo"},
	{ServiceFlagBloom, "Bloom"},
	{ServiceFlagWitness, "Witness"},
	{ServiceFlagCompactFilters, "CompactFilters"},
	{ServiceFlagNetworkLimited, "NetworkLimited"},
}

func (f ServiceFlags) String() string {
	if f == 0 {
		return "None"
	}
	var names []string
	for _, known := range serviceFlagNames {
		if f&known.flag != 0 {
			names = append(names, known.name)
			f &^= known.flag
		}
	}
	if f != 0 {
		names = append(names, "Unknown")
	}
	return strings.Join(names, "|")
}

// ipSize is the fixed width of an address on the wire. IPv4 addresses are
// carried in IPv6-mapped form
const ipSize = 16

// NetAddress describes a peer address as carried inside version and addr
// payloads: services, a 16-byte IP, and a big-endian port
type NetAddress struct {
	Services ServiceFlags
	IP       net.IP
	Port     uint16
}

func (a *NetAddress) Encode(w io.Writer) error {
	if err := codec.WriteUint64(w, uint64(a.Services)); err != nil {
		return err
	}
	var ip [ipSize]byte
	if mapped := a.IP.To16(); mapped != nil {
		copy(ip[:], mapped)
	}
	if _, err := w.Write(ip[:]); err != nil {
		return err
	}
	// Port is the one big-endian field in the protocol
	_, err := w.Write([]byte{byte(a.Port >> 8), byte(a.Port)})
	return err
}

func (a *NetAddress) Decode(r io.Reader) error {
	services, err := codec.ReadUint64(r)
	if err != nil {
		return err
	}
	a.Services = ServiceFlags(services)
	ip := make([]byte, ipSize)
	if _, err := io.ReadFull(r, ip); err != nil {
		return err
	}
	a.IP = net.IP(ip)
	var port [2]byte
	if _, err := io.ReadFull(r, port[:]); err != nil {
		return err
	}
	a.Port = uint16(port[0])<<8 | uint16(port[1])
	return nil
}
