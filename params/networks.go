// Copyright 2018 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.
// Package params holds the named network profiles and the environment
// configuration shared by the client and the deployer.
package params

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pixil98/go-errors"
)

// DefaultContract is the address of the deployed MyEpicGame on the test
// network.
var DefaultContract = common.HexToAddress("0xad5a23a5dD3cfd85d42c627e91261b00Bda36eF1")

// Network describes a chain the game can be deployed to.
type Network struct {
	Name    string
	ChainID uint64
	Testnet bool
	URLVar  string // environment variable holding the node URL
}

// Version returns the network id as a wallet reports it.
func (n *Network) Version() string {
	return strconv.FormatUint(n.ChainID, 10)
}

// BigChainID returns the chain id for transaction signing.
func (n *Network) BigChainID() *big.Int {
	return new(big.Int).SetUint64(n.ChainID)
}

// Known networks.
var (
	RinkebyNetwork = &Network{Name: "rinkeby", ChainID: 4, Testnet: true, URLVar: "STAGING_ALCHEMY_KEY"}
	MainnetNetwork = &Network{Name: "mainnet", ChainID: 1, URLVar: "PROD_ALCHEMY_KEY"}

	// TestNetwork is the network the client expects wallets to be on.
	TestNetwork = RinkebyNetwork

	networks = map[string]*Network{
		RinkebyNetwork.Name: RinkebyNetwork,
		MainnetNetwork.Name: MainnetNetwork,
	}
)

// LookupNetwork returns the network with the given name.
func LookupNetwork(name string) (*Network, error) {
	n, ok := networks[name]
	if !ok {
		return nil, fmt.Errorf("unknown network %q (have %v)", name, NetworkNames())
	}
	return n, nil
}

// NetworkNames lists the known network names in order.
func NetworkNames() []string {
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profile is a network together with the credentials needed to use it.
type Profile struct {
	Network    *Network
	URL        string
	PrivateKey string
	Contract   common.Address
}

// Validate checks the profile is usable. The private key is only required
// when withKey is set; players may sign through a keystore instead.
func (p *Profile) Validate(withKey bool) error {
	el := errors.NewErrorList()

	if p.Network == nil {
		el.Add(fmt.Errorf("network is required"))
	} else if p.URL == "" {
		el.Add(fmt.Errorf("%s: node url is required (set %s)", p.Network.Name, p.Network.URLVar))
	}
	if withKey && p.PrivateKey == "" {
		el.Add(fmt.Errorf("private key is required (set PRIVATE_KEY)"))
	}
	if p.Contract == (common.Address{}) {
		el.Add(fmt.Errorf("contract address is required"))
	}

	return el.Err()
}
