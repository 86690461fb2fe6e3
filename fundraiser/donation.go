// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fundraiser

import (
	"github.com/bitmark-inc/logger"

	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/record"
	"github.com/ufundraisers/fundraiserd/storage"
)

// Donate - append one donation to the ledger
//
// the whole attached payment is the donation; a donation to an
// unknown campaign is an error since this is a write, unlike the read
// paths which report absence; equal amounts from the same donor are
// separate entries, the ledger never deduplicates
func Donate(donor account.AccountId, fundraiserId uint64, amount uint64) error {
	if 0 == amount {
		return fault.InsufficientPayment
	}

	trx := storage.NewDBTransaction()

	if !trx.Has(storage.Pool.Fundraisers, fundraiserKey(fundraiserId)) {
		trx.Abort()
		return fault.FundraiserNotFound
	}

	pool := storage.Pool.Donations
	subKey := pool.SubKey(fundraiserKey(fundraiserId), donor.Bytes())

	packed := trx.Get(pool.Handle(), subKey)
	packed = record.AppendAmount(packed, amount)
	trx.Put(pool.Handle(), subKey, packed)

	err := trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("donate: id: %d  donor: %q  amount: %d", fundraiserId, donor, amount)

	return nil
}

// Donations - all amounts one donor attached to one campaign, oldest
// first; empty when there are none, reads never error
func Donations(fundraiserId uint64, donor account.AccountId) []uint64 {
	packed := storage.Pool.Donations.Get(fundraiserKey(fundraiserId), donor.Bytes())
	if nil == packed {
		return []uint64{}
	}
	amounts, err := record.UnpackAmounts(packed)
	if nil != err {
		logger.Panicf("fundraiser: corrupt donation ledger for id: %d  donor: %q  error: %s", fundraiserId, donor, err)
	}
	return amounts
}
