// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/ownership"
	"github.com/ufundraisers/fundraiserd/record"
	"github.com/ufundraisers/fundraiserd/storage"
)

// Mint - create a token with empty approvals inside an open transaction
//
// the caller owns the transaction so the mint commits together with
// whatever entity the token certifies; returns the number of bytes the
// mint adds to storage for cost accounting
func Mint(trx storage.Transaction, tokenId string, owner account.AccountId, metadata *record.TokenMetadata) (int, error) {
	key := []byte(tokenId)

	if trx.Has(storage.Pool.Tokens, key) {
		return 0, fault.TokenAlreadyExists
	}

	token := record.Token{
		Owner: owner,
	}
	packedToken := token.Pack()
	packedMetadata := metadata.Pack()

	trx.Put(storage.Pool.Tokens, key, packedToken)
	trx.Put(storage.Pool.TokenMetadata, key, packedMetadata)
	ownership.AddToken(trx, owner, tokenId)

	indexKey := storage.Pool.OwnerTokens.SubKey(owner.Bytes(), key)

	addedBytes := 2*len(key) + len(packedToken) + len(packedMetadata) + len(indexKey)
	return addedBytes, nil
}
