// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/messagebus"
	"github.com/ufundraisers/fundraiserd/payment"
)

func TestCost(t *testing.T) {
	assert.Equal(t, uint64(0), payment.Cost(0), "zero bytes costs")
	assert.Equal(t, uint64(0), payment.Cost(-5), "negative bytes costs")
	assert.Equal(t, 7*payment.StorageCostPerByte, payment.Cost(7), "wrong cost")
}

func TestCharge(t *testing.T) {
	refund, err := payment.Charge(100, 100)
	assert.Nil(t, err, "charge error")
	assert.Equal(t, uint64(0), refund, "unexpected refund")

	refund, err = payment.Charge(150, 100)
	assert.Nil(t, err, "charge error")
	assert.Equal(t, uint64(50), refund, "wrong refund")

	_, err = payment.Charge(99, 100)
	assert.Equal(t, fault.InsufficientPayment, err, "underpayment accepted")
}

func TestCheckDeposit(t *testing.T) {
	assert.Equal(t, fault.InsufficientPayment, payment.CheckDeposit(0), "zero deposit accepted")
	assert.Nil(t, payment.CheckDeposit(payment.MinimumDeposit), "minimum deposit rejected")
}

func TestRefund(t *testing.T) {
	messagebus.Clear()

	payment.Refund("alice", 0)
	select {
	case m := <-messagebus.Chan():
		t.Fatalf("unexpected payout: %+v", m)
	default:
	}

	payment.Refund("alice", 42)
	m := <-messagebus.Chan()
	assert.Equal(t, messagebus.Payout{Amount: 42}, m.Item, "wrong payout")
}
