// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

// TokenMetadata - descriptive fields attached to a token at mint
//
// hash fields are raw digests of off-band content, Issued is a unix
// timestamp in seconds and zero means unset
type TokenMetadata struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Media         string `json:"media,omitempty"`
	MediaHash     []byte `json:"media_hash,omitempty"`
	Copies        uint64 `json:"copies,omitempty"`
	Issued        uint64 `json:"issued,omitempty"`
	Extra         string `json:"extra,omitempty"`
	Reference     string `json:"reference,omitempty"`
	ReferenceHash []byte `json:"reference_hash,omitempty"`
}
