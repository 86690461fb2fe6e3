// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the owner-keyed secondary index
//
// maps an account to the set of fundraiser ids and token ids it owns;
// the index is only ever written inside the same transaction as the
// entity row it points to, so every indexed id has a backing row
package ownership

import (
	"encoding/binary"

	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/storage"
)

// fundraiser ids are fixed width so the set iterates in creation order
func fundraiserKey(fundraiserId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, fundraiserId)
	return key
}

// AddFundraiser - idempotent insert into an owner's fundraiser set
func AddFundraiser(trx storage.Transaction, owner account.AccountId, fundraiserId uint64) {
	pool := storage.Pool.OwnerFundraisers
	trx.Put(pool.Handle(), pool.SubKey(owner.Bytes(), fundraiserKey(fundraiserId)), []byte{})
}

// RemoveFundraiser - idempotent removal from an owner's fundraiser set
func RemoveFundraiser(trx storage.Transaction, owner account.AccountId, fundraiserId uint64) {
	pool := storage.Pool.OwnerFundraisers
	trx.Delete(pool.Handle(), pool.SubKey(owner.Bytes(), fundraiserKey(fundraiserId)))
}

// AddToken - idempotent insert into an owner's token set
func AddToken(trx storage.Transaction, owner account.AccountId, tokenId string) {
	pool := storage.Pool.OwnerTokens
	trx.Put(pool.Handle(), pool.SubKey(owner.Bytes(), []byte(tokenId)), []byte{})
}

// RemoveToken - idempotent removal from an owner's token set
func RemoveToken(trx storage.Transaction, owner account.AccountId, tokenId string) {
	pool := storage.Pool.OwnerTokens
	trx.Delete(pool.Handle(), pool.SubKey(owner.Bytes(), []byte(tokenId)))
}

// HasToken - check membership in an owner's token set
func HasToken(owner account.AccountId, tokenId string) bool {
	return storage.Pool.OwnerTokens.Has(owner.Bytes(), []byte(tokenId))
}

// Fundraisers - all fundraiser ids owned by one account, in creation
// order; empty for an unseen owner
func Fundraisers(owner account.AccountId) []uint64 {
	ids := []uint64{}
	_ = storage.Pool.OwnerFundraisers.Map(owner.Bytes(), func(member []byte, value []byte) error {
		if 8 == len(member) {
			ids = append(ids, binary.BigEndian.Uint64(member))
		}
		return nil
	})
	return ids
}

// Tokens - all token ids owned by one account; empty for an unseen
// owner
func Tokens(owner account.AccountId) []string {
	ids := []string{}
	_ = storage.Pool.OwnerTokens.Map(owner.Bytes(), func(member []byte, value []byte) error {
		ids = append(ids, string(member))
		return nil
	})
	return ids
}
