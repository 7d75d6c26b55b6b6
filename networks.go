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

package gobitcoin

// Network definitions
var (
	NetworkMainnet = Network{
		Name:        "mainnet",
		Magic:       0xd9b4bef9,
		DefaultPort: 8333,
	}
	NetworkTestnet3 = Network{
		Name:        "testnet3",
		Magic:       0x0709110b,
		DefaultPort: 18333,
	}
	NetworkSignet = Network{
		Name:        "signet",
		Magic:       0x40cf030a,
		DefaultPort: 38333,
	}
	NetworkRegtest = Network{
		Name:        "regtest",
		Magic:       0xdab5bffa,
		DefaultPort: 18444,
	}

	NetworkInvalid = Network{
		Name:  "invalid",
		Magic: 0,
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet3,
	NetworkSignet,
	NetworkRegtest,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByMagic returns a predefined network by its wire magic
func NetworkByMagic(magic uint32) Network {
	for _, network := range networks {
		if network.Magic == magic {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a Bitcoin network
type Network struct {
	Name        string
	Magic       uint32 // first four bytes of every message on the network
	DefaultPort uint
}

func (n Network) String() string {
	return n.Name
}
