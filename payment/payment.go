// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - storage cost accounting
//
// every operation that grows storage is pre-funded by its caller for
// the marginal bytes it adds; underfunding rejects the whole operation
// before any write, overfunding is refunded through the message queue
// once the operation has committed
package payment

import (
	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/messagebus"
)

const (
	// StorageCostPerByte - charge per marginal stored byte
	StorageCostPerByte uint64 = 10000

	// MinimumDeposit - anti-spoofing floor on mutating calls that do
	// not grow storage
	MinimumDeposit uint64 = 1
)

// Cost - the charge for a number of added bytes
func Cost(addedBytes int) uint64 {
	if addedBytes <= 0 {
		return 0
	}
	return uint64(addedBytes) * StorageCostPerByte
}

// Charge - check an attached payment covers a cost
//
// returns the overpayment to refund
func Charge(attached uint64, cost uint64) (uint64, error) {
	if attached < cost {
		return 0, fault.InsufficientPayment
	}
	return attached - cost, nil
}

// CheckDeposit - enforce the anti-spoofing floor
func CheckDeposit(attached uint64) error {
	if attached < MinimumDeposit {
		return fault.InsufficientPayment
	}
	return nil
}

// Refund - queue an overpayment return, no-op for zero
//
// only call after the operation has committed
func Refund(target account.AccountId, amount uint64) {
	if 0 == amount {
		return
	}
	messagebus.Send(target, messagebus.Payout{Amount: amount})
}
