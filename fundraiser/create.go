// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fundraiser

import (
	"encoding/binary"
	"strconv"

	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/ownership"
	"github.com/ufundraisers/fundraiserd/payment"
	"github.com/ufundraisers/fundraiserd/record"
	"github.com/ufundraisers/fundraiserd/storage"
	"github.com/ufundraisers/fundraiserd/token"
)

// the shared id allocation state, ids start at 1 and are never reused
var counterKey = []byte("fundraiser")

// fixed width key so listings iterate in creation order
func fundraiserKey(fundraiserId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, fundraiserId)
	return key
}

// Create - store a new campaign with its paired certificate token
//
// validates before any storage is touched; the fundraiser row, the
// minted token, the owner index entries and the id counter all commit
// together or not at all; the attached payment must cover the added
// bytes and any overpayment is refunded after commit
func Create(caller account.AccountId, attached uint64, title string, description string, status record.Status, metadata *record.TokenMetadata) (uint64, string, error) {

	fundraiser := record.Fundraiser{
		Owner:       caller,
		Title:       title,
		Description: description,
		Status:      status,
	}
	if err := fundraiser.Validate(); nil != err {
		return 0, "", err
	}

	if nil == metadata {
		metadata = &record.TokenMetadata{
			Title:       title,
			Description: description,
		}
	}

	trx := storage.NewDBTransaction()

	n, _ := trx.GetN(storage.Pool.Counters, counterKey)
	fundraiserId := n + 1
	tokenId := strconv.FormatUint(fundraiserId, 10)

	key := fundraiserKey(fundraiserId)
	packed := fundraiser.Pack()
	indexKey := storage.Pool.OwnerFundraisers.SubKey(caller.Bytes(), key)

	mintedBytes, err := token.Mint(trx, tokenId, caller, metadata)
	if nil != err {
		trx.Abort()
		return 0, "", err
	}

	addedBytes := len(key) + len(packed) + len(indexKey) + mintedBytes
	refund, err := payment.Charge(attached, payment.Cost(addedBytes))
	if nil != err {
		trx.Abort()
		return 0, "", err
	}

	trx.PutN(storage.Pool.Counters, counterKey, fundraiserId)
	trx.Put(storage.Pool.Fundraisers, key, packed)
	ownership.AddFundraiser(trx, caller, fundraiserId)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return 0, "", err
	}

	globalData.log.Infof("create: id: %d  owner: %q  title: %q", fundraiserId, caller, title)

	payment.Refund(caller, refund)

	return fundraiserId, tokenId, nil
}

// Counter - the current id allocation state
func Counter() uint64 {
	n, _ := storage.Pool.Counters.GetN(counterKey)
	return n
}
