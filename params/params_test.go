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
package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{"STAGING_ALCHEMY_KEY", "PROD_ALCHEMY_KEY", "PRIVATE_KEY", "CONTRACT_ADDRESS"}

// clearEnv unsets the configuration variables for the duration of the test.
func clearEnv(t *testing.T) {
	for _, name := range envVars {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLookupNetwork(t *testing.T) {
	n, err := LookupNetwork("rinkeby")
	require.NoError(t, err)
	assert.Equal(t, "4", n.Version())
	assert.True(t, n.Testnet)
	assert.Equal(t, int64(4), n.BigChainID().Int64())

	n, err = LookupNetwork("mainnet")
	require.NoError(t, err)
	assert.Equal(t, "1", n.Version())

	_, err = LookupNetwork("ropsten")
	assert.Error(t, err)
	assert.Equal(t, []string{"mainnet", "rinkeby"}, NetworkNames())
}

func TestLoadEnvFromFile(t *testing.T) {
	clearEnv(t)
	file := filepath.Join(t.TempDir(), ".env")
	content := "STAGING_ALCHEMY_KEY=https://eth-rinkeby.example/v2/abc\n" +
		"PROD_ALCHEMY_KEY=https://eth-mainnet.example/v2/def\n" +
		"PRIVATE_KEY=0x01\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	cfg, err := LoadEnv(file)
	require.NoError(t, err)
	assert.Equal(t, "https://eth-rinkeby.example/v2/abc", cfg.StagingURL)
	assert.Equal(t, "https://eth-mainnet.example/v2/def", cfg.ProdURL)

	p, err := cfg.Profile("rinkeby")
	require.NoError(t, err)
	assert.Equal(t, "https://eth-rinkeby.example/v2/abc", p.URL)
	assert.Equal(t, "0x01", p.PrivateKey)
	assert.Equal(t, DefaultContract, p.Contract)
	assert.NoError(t, p.Validate(true))

	p, err = cfg.Profile("mainnet")
	require.NoError(t, err)
	assert.Equal(t, "https://eth-mainnet.example/v2/def", p.URL)
}

func TestLoadEnvMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTRACT_ADDRESS", "0x00000000000000000000000000000000000000bb")

	cfg, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	p, err := cfg.Profile("rinkeby")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xbb"), p.Contract)
	assert.Empty(t, p.URL)
}

func TestProfileBadContract(t *testing.T) {
	cfg := &Env{Contract: "not-an-address"}
	_, err := cfg.Profile("rinkeby")
	assert.Error(t, err)
}

func TestProfileValidate(t *testing.T) {
	t.Run("missing url and key", func(t *testing.T) {
		p := &Profile{Network: RinkebyNetwork, Contract: DefaultContract}
		assert.Error(t, p.Validate(true))
		assert.Error(t, p.Validate(false))
	})

	t.Run("key optional for players", func(t *testing.T) {
		p := &Profile{Network: MainnetNetwork, URL: "http://localhost:8545", Contract: DefaultContract}
		assert.NoError(t, p.Validate(false))
		assert.Error(t, p.Validate(true))
	})

	t.Run("no network", func(t *testing.T) {
		p := &Profile{}
		assert.Error(t, p.Validate(false))
	})
}
