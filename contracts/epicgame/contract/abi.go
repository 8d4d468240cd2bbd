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

// Package contract contains the ABI of the MyEpicGame contract.
// The deployable bytecode is not vendored; it is read from the hardhat
// artifact at deploy time (see epicgame.LoadArtifact).
package contract

// MyEpicGameABI is the ABI of the MyEpicGame contract.
const MyEpicGameABI = `[
	{
		"inputs": [
			{"name": "characterNames",     "type": "string[]"},
			{"name": "characterImageURIs", "type": "string[]"},
			{"name": "characterHp",        "type": "uint256[]"},
			{"name": "characterAttackDmg", "type": "uint256[]"},
			{"name": "bossName",           "type": "string"},
			{"name": "bossImageURI",       "type": "string"},
			{"name": "bossHp",             "type": "uint256"},
			{"name": "bossAttackDamage",   "type": "uint256"}
		],
		"payable": false,
		"type": "constructor"
	},
	{
		"constant": false,
		"inputs": [{"name": "_characterIndex", "type": "uint256"}],
		"name": "mintCharacterNFT",
		"outputs": [],
		"payable": false,
		"type": "function"
	},
	{
		"constant": false,
		"inputs": [],
		"name": "attackBoss",
		"outputs": [],
		"payable": false,
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "checkIfUserHasNFT",
		"outputs": [
			{
				"name": "",
				"type": "tuple",
				"components": [
					{"name": "characterIndex", "type": "uint256"},
					{"name": "name",           "type": "string"},
					{"name": "imageURI",       "type": "string"},
					{"name": "hp",             "type": "uint256"},
					{"name": "maxHp",          "type": "uint256"},
					{"name": "attackDamage",   "type": "uint256"}
				]
			}
		],
		"payable": false,
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "getAllDefaultCharacters",
		"outputs": [
			{
				"name": "",
				"type": "tuple[]",
				"components": [
					{"name": "characterIndex", "type": "uint256"},
					{"name": "name",           "type": "string"},
					{"name": "imageURI",       "type": "string"},
					{"name": "hp",             "type": "uint256"},
					{"name": "maxHp",          "type": "uint256"},
					{"name": "attackDamage",   "type": "uint256"}
				]
			}
		],
		"payable": false,
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "getBigBoss",
		"outputs": [
			{
				"name": "",
				"type": "tuple",
				"components": [
					{"name": "name",         "type": "string"},
					{"name": "imageURI",     "type": "string"},
					{"name": "hp",           "type": "uint256"},
					{"name": "maxHp",        "type": "uint256"},
					{"name": "attackDamage", "type": "uint256"}
				]
			}
		],
		"payable": false,
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "_tokenId", "type": "uint256"}],
		"name": "tokenURI",
		"outputs": [{"name": "", "type": "string"}],
		"payable": false,
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "", "type": "address"}],
		"name": "nftHolders",
		"outputs": [{"name": "", "type": "uint256"}],
		"payable": false,
		"type": "function"
	},
	{
		"anonymous": false,
		"inputs": [
			{"indexed": false, "name": "sender",         "type": "address"},
			{"indexed": false, "name": "tokenId",        "type": "uint256"},
			{"indexed": false, "name": "characterIndex", "type": "uint256"}
		],
		"name": "CharacterNFTMinted",
		"type": "event"
	},
	{
		"anonymous": false,
		"inputs": [
			{"indexed": false, "name": "sender",      "type": "address"},
			{"indexed": false, "name": "newBossHp",   "type": "uint256"},
			{"indexed": false, "name": "newPlayerHp", "type": "uint256"}
		],
		"name": "AttackComplete",
		"type": "event"
	}
]`
