// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/messagebus"
	"github.com/ufundraisers/fundraiserd/ownership"
	"github.com/ufundraisers/fundraiserd/payment"
	"github.com/ufundraisers/fundraiserd/storage"
)

// Transfer - move a token to a new owner
//
// permitted for the current owner, or for a delegate presenting the
// exact approval id it was issued; a stale id is refused; on success
// all approvals are cleared and both owners' index sets are updated in
// the same commit as the ownership change
func Transfer(tokenId string, caller account.AccountId, receiver account.AccountId, approvalId *uint64, attached uint64, memo string) error {
	if !receiver.IsValid() {
		return fault.InvalidAccount
	}
	if err := payment.CheckDeposit(attached); nil != err {
		return err
	}

	// read under the same lock as the write so a concurrent approve
	// or transfer cannot slip between the check and the commit
	trx := storage.NewDBTransaction()

	token := getToken(trx, tokenId)
	if nil == token {
		trx.Abort()
		return fault.TokenNotFound
	}

	previousOwner := token.Owner
	if receiver == previousOwner {
		trx.Abort()
		return fault.TransferNotAuthorized
	}

	if caller != previousOwner {
		current, found := token.ApprovalFor(caller)
		if !found || nil == approvalId || current != *approvalId {
			trx.Abort()
			return fault.TransferNotAuthorized
		}
	}

	token.RevokeAll()
	token.Owner = receiver

	trx.Put(storage.Pool.Tokens, []byte(tokenId), token.Pack())
	ownership.RemoveToken(trx, previousOwner, tokenId)
	ownership.AddToken(trx, receiver, tokenId)
	err := trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("transfer: token: %q  from: %q  to: %q", tokenId, previousOwner, receiver)

	payment.Refund(caller, attached-payment.MinimumDeposit)

	messagebus.Send(receiver, messagebus.TransferEvent{
		TokenId: tokenId,
		From:    previousOwner,
		To:      receiver,
		Memo:    memo,
	})

	return nil
}
