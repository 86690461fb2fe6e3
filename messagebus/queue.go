// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/counter"
)

// internal constants
const (
	queueSize = 1000
)

// ApprovalNotice - sent to a delegate after an approval with a message
type ApprovalNotice struct {
	TokenId    string            `json:"token_id"`
	Owner      account.AccountId `json:"owner"`
	ApprovalId uint64            `json:"approval_id"`
	Message    string            `json:"message"`
}

// TransferEvent - records a completed token transfer
type TransferEvent struct {
	TokenId string            `json:"token_id"`
	From    account.AccountId `json:"from"`
	To      account.AccountId `json:"to"`
	Memo    string            `json:"memo,omitempty"`
}

// Payout - value returned to an account, e.g. a storage refund
type Payout struct {
	Amount uint64 `json:"amount"`
}

// Message - target account and one of the item types above
type Message struct {
	Target account.AccountId
	Item   interface{}
}

var (
	// for queueing data
	queue = make(chan Message, queueSize)

	// dropped when the queue is full
	dropCount counter.Counter
)

// Send - queue an item for one-way delivery, never blocks
func Send(target account.AccountId, item interface{}) {
	select {
	case queue <- Message{Target: target, Item: item}:
	default:
		dropCount.Increment()
	}
}

// Chan - channel to read from
func Chan() <-chan Message {
	return queue
}

// DropCount - number of messages dropped due to a full queue
func DropCount() uint64 {
	return dropCount.Uint64()
}

// Clear - discard all queued messages
func Clear() {
loop:
	for {
		select {
		case <-queue:
		default:
			break loop
		}
	}
}
