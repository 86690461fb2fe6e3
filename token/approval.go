// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/messagebus"
	"github.com/ufundraisers/fundraiserd/payment"
	"github.com/ufundraisers/fundraiserd/storage"
)

// Approve - grant or renew a delegated transfer right
//
// the approval id advances on every call, so a renewal silently
// invalidates any id the delegate held before; the attached payment
// must cover the marginal bytes when the delegate is new to the table
// and any overpayment is refunded after commit; an optional message is
// queued to the delegate without waiting for delivery
func Approve(tokenId string, caller account.AccountId, delegate account.AccountId, attached uint64, message string) (uint64, error) {
	if !delegate.IsValid() {
		return 0, fault.InvalidAccount
	}
	if err := payment.CheckDeposit(attached); nil != err {
		return 0, err
	}

	// the token is read under the same lock as the write below so
	// that concurrent calls cannot issue duplicate approval ids
	trx := storage.NewDBTransaction()

	token := getToken(trx, tokenId)
	if nil == token {
		trx.Abort()
		return 0, fault.TokenNotFound
	}
	if caller != token.Owner {
		trx.Abort()
		return 0, fault.NotTokenOwner
	}

	oldSize := len(token.Pack())
	approvalId, isNew := token.Approve(delegate)
	packed := token.Pack()

	cost := uint64(0)
	if isNew {
		cost = payment.Cost(len(packed) - oldSize)
	}
	refund, err := payment.Charge(attached, cost)
	if nil != err {
		trx.Abort()
		return 0, err
	}

	trx.Put(storage.Pool.Tokens, []byte(tokenId), packed)
	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return 0, err
	}

	globalData.log.Infof("approve: token: %q  delegate: %q  id: %d", tokenId, delegate, approvalId)

	payment.Refund(caller, refund)

	if "" != message {
		messagebus.Send(delegate, messagebus.ApprovalNotice{
			TokenId:    tokenId,
			Owner:      token.Owner,
			ApprovalId: approvalId,
			Message:    message,
		})
	}

	return approvalId, nil
}

// Revoke - remove one delegate, no-op if the delegate holds nothing
func Revoke(tokenId string, caller account.AccountId, delegate account.AccountId, attached uint64) error {
	if err := payment.CheckDeposit(attached); nil != err {
		return err
	}

	trx := storage.NewDBTransaction()

	token := getToken(trx, tokenId)
	if nil == token {
		trx.Abort()
		return fault.TokenNotFound
	}
	if caller != token.Owner {
		trx.Abort()
		return fault.NotTokenOwner
	}

	if token.Revoke(delegate) {
		trx.Put(storage.Pool.Tokens, []byte(tokenId), token.Pack())
		err := trx.Commit()
		if nil != err {
			trx.Abort()
			return err
		}
		globalData.log.Infof("revoke: token: %q  delegate: %q", tokenId, delegate)
	} else {
		trx.Abort()
	}

	payment.Refund(caller, attached-payment.MinimumDeposit)
	return nil
}

// RevokeAll - clear the whole approval table
func RevokeAll(tokenId string, caller account.AccountId, attached uint64) error {
	if err := payment.CheckDeposit(attached); nil != err {
		return err
	}

	trx := storage.NewDBTransaction()

	token := getToken(trx, tokenId)
	if nil == token {
		trx.Abort()
		return fault.TokenNotFound
	}
	if caller != token.Owner {
		trx.Abort()
		return fault.NotTokenOwner
	}

	if 0 != len(token.Approvals) {
		token.RevokeAll()
		trx.Put(storage.Pool.Tokens, []byte(tokenId), token.Pack())
		err := trx.Commit()
		if nil != err {
			trx.Abort()
			return err
		}
		globalData.log.Infof("revoke all: token: %q", tokenId)
	} else {
		trx.Abort()
	}

	payment.Refund(caller, attached-payment.MinimumDeposit)
	return nil
}
