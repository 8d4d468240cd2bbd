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

package game

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const jsonDataPrefix = "data:application/json;base64,"

// ErrUnsupportedTokenURI is returned for token URIs that are not inline
// base64 JSON documents.
var ErrUnsupportedTokenURI = errors.New("game: token URI is not a base64 JSON data URI")

// TokenAttribute is one entry of the OpenSea-style attributes list.
type TokenAttribute struct {
	TraitType string `json:"trait_type"`
	Value     int64  `json:"value"`
	MaxValue  int64  `json:"max_value,omitempty"`
}

// TokenMetadata is the document returned by tokenURI.
type TokenMetadata struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Attributes  []TokenAttribute `json:"attributes"`
}

// Attribute looks up an attribute by trait type.
func (m *TokenMetadata) Attribute(trait string) (TokenAttribute, bool) {
	for _, a := range m.Attributes {
		if a.TraitType == trait {
			return a, true
		}
	}
	return TokenAttribute{}, false
}

// ParseTokenURI decodes a data:application/json;base64 token URI.
func ParseTokenURI(uri string) (*TokenMetadata, error) {
	if !strings.HasPrefix(uri, jsonDataPrefix) {
		return nil, ErrUnsupportedTokenURI
	}
	doc, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, jsonDataPrefix))
	if err != nil {
		return nil, fmt.Errorf("game: token URI payload: %w", err)
	}
	meta := new(TokenMetadata)
	if err := json.Unmarshal(doc, meta); err != nil {
		return nil, fmt.Errorf("game: token URI document: %w", err)
	}
	return meta, nil
}
