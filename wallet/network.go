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
package wallet

import (
	"context"
)

// CheckNetwork compares the wallet's network with the expected network id.
// On mismatch warn is called exactly once and false is returned. Failures
// to read the network are returned without warning.
func CheckNetwork(ctx context.Context, p Provider, expected string, warn func(got, want string)) (bool, error) {
	got, err := p.NetworkVersion(ctx)
	if err != nil {
		return false, err
	}
	if got != expected {
		warn(got, expected)
		return false, nil
	}
	return true, nil
}
