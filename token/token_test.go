// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/fixtures"
	"github.com/ufundraisers/fundraiserd/messagebus"
	"github.com/ufundraisers/fundraiserd/ownership"
	"github.com/ufundraisers/fundraiserd/payment"
	"github.com/ufundraisers/fundraiserd/record"
	"github.com/ufundraisers/fundraiserd/storage"
	"github.com/ufundraisers/fundraiserd/token"
)

// ample payment for any approval in these tests
const bigPayment = 100 * 1000 * payment.StorageCostPerByte

func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	err := storage.Initialise(fixtures.DatabaseFileName(), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = token.Initialise()
	if nil != err {
		t.Fatalf("token initialise error: %s", err)
	}
	messagebus.Clear()
}

func teardown(t *testing.T) {
	_ = token.Finalise()
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func mintToken(t *testing.T, tokenId string, owner account.AccountId) {
	trx := storage.NewDBTransaction()
	_, err := token.Mint(trx, tokenId, owner, &record.TokenMetadata{Title: "certificate"})
	if nil != err {
		trx.Abort()
		t.Fatalf("mint error: %s", err)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestMint(t *testing.T) {
	setup(t)
	defer teardown(t)

	mintToken(t, "1", "alice")

	minted := token.Get("1")
	assert.NotNil(t, minted, "missing token")
	assert.Equal(t, account.AccountId("alice"), minted.Owner, "wrong owner")
	assert.Equal(t, uint64(0), minted.NextApprovalId, "wrong initial approval id")
	assert.Equal(t, 0, len(minted.Approvals), "approvals not empty")

	metadata := token.GetMetadata("1")
	assert.NotNil(t, metadata, "missing metadata")
	assert.Equal(t, "certificate", metadata.Title, "wrong metadata")

	assert.True(t, ownership.HasToken("alice", "1"), "owner index not updated")

	// duplicate mint is rejected
	trx := storage.NewDBTransaction()
	_, err := token.Mint(trx, "1", "bob", &record.TokenMetadata{})
	trx.Abort()
	assert.Equal(t, fault.TokenAlreadyExists, err, "duplicate mint accepted")
}

func TestGetAbsent(t *testing.T) {
	setup(t)
	defer teardown(t)

	assert.Nil(t, token.Get("404"), "unexpected token")
	assert.Nil(t, token.GetMetadata("404"), "unexpected metadata")
	assert.False(t, token.IsApproved("404", "bob", nil), "approval on absent token")
}

func TestApprove(t *testing.T) {
	setup(t)
	defer teardown(t)

	mintToken(t, "1", "alice")

	id, err := token.Approve("1", "alice", "bob", bigPayment, "")
	assert.Nil(t, err, "approve error")
	assert.Equal(t, uint64(0), id, "wrong first approval id")

	// re-approval consumes a fresh id and invalidates the old one
	id, err = token.Approve("1", "alice", "bob", bigPayment, "")
	assert.Nil(t, err, "approve error")
	assert.Equal(t, uint64(1), id, "wrong second approval id")

	stale := uint64(0)
	current := uint64(1)
	assert.True(t, token.IsApproved("1", "bob", nil), "delegate lost approval")
	assert.True(t, token.IsApproved("1", "bob", &current), "current id refused")
	assert.False(t, token.IsApproved("1", "bob", &stale), "stale id accepted")
	assert.False(t, token.IsApproved("1", "carol", nil), "unapproved delegate accepted")
}

func TestApproveNotOwner(t *testing.T) {
	setup(t)
	defer teardown(t)

	mintToken(t, "1", "alice")

	_, err := token.Approve("1", "bob", "carol", bigPayment, "")
	assert.Equal(t, fault.NotTokenOwner, err, "non-owner approve accepted")
	assert.False(t, token.IsApproved("1", "carol", nil), "approval table changed")
}

func TestApproveUnderpaid(t *testing.T) {
	setup(t)
	defer teardown(t)

	mintToken(t, "1", "alice")

	// a new delegate grows storage, one unit cannot cover it
	_, err := token.Approve("1", "alice", "bob", payment.MinimumDeposit, "")
	assert.Equal(t, fault.InsufficientPayment, err, "underpayment accepted")
	assert.False(t, token.IsApproved("1", "bob", nil), "approval recorded without payment")

	// zero attachment fails the deposit floor first
	_, err = token.Approve("1", "alice", "bob", 0, "")
	assert.Equal(t, fault.InsufficientPayment, err, "zero payment accepted")
}

func TestApproveRefundAndNotice(t *testing.T) {
	setup(t)
	defer teardown(t)

	mintToken(t, "1", "alice")

	id, err := token.Approve("1", "alice", "bob", bigPayment, "please sell this")
	assert.Nil(t, err, "approve error")

	// refund first, then the notice
	m := <-messagebus.Chan()
	assert.Equal(t, account.AccountId("alice"), m.Target, "wrong refund target")
	payout, ok := m.Item.(messagebus.Payout)
	assert.True(t, ok, "refund is not a payout")
	assert.True(t, payout.Amount < bigPayment, "nothing charged")
	assert.True(t, payout.Amount > 0, "no refund")

	m = <-messagebus.Chan()
	assert.Equal(t, account.AccountId("bob"), m.Target, "wrong notice target")
	notice, ok := m.Item.(messagebus.ApprovalNotice)
	assert.True(t, ok, "notice is not an approval notice")
	assert.Equal(t, "please sell this", notice.Message, "wrong message")
	assert.Equal(t, id, notice.ApprovalId, "wrong approval id")
}

func TestRevoke(t *testing.T) {
	setup(t)
	defer teardown(t)

	mintToken(t, "1", "alice")
	_, err := token.Approve("1", "alice", "bob", bigPayment, "")
	assert.Nil(t, err, "approve error")

	err = token.Revoke("1", "bob", "bob", payment.MinimumDeposit)
	assert.Equal(t, fault.NotTokenOwner, err, "non-owner revoke accepted")

	err = token.Revoke("1", "alice", "bob", payment.MinimumDeposit)
	assert.Nil(t, err, "revoke error")
	assert.False(t, token.IsApproved("1", "bob", nil), "approval survived revoke")

	// absent delegate is a no-op, not an error
	err = token.Revoke("1", "alice", "carol", payment.MinimumDeposit)
	assert.Nil(t, err, "no-op revoke error")
}

func TestRevokeAll(t *testing.T) {
	setup(t)
	defer teardown(t)

	mintToken(t, "1", "alice")
	_, err := token.Approve("1", "alice", "bob", bigPayment, "")
	assert.Nil(t, err, "approve error")
	_, err = token.Approve("1", "alice", "carol", bigPayment, "")
	assert.Nil(t, err, "approve error")

	err = token.RevokeAll("1", "alice", payment.MinimumDeposit)
	assert.Nil(t, err, "revoke all error")
	assert.False(t, token.IsApproved("1", "bob", nil), "approval survived")
	assert.False(t, token.IsApproved("1", "carol", nil), "approval survived")

	// the id counter is not reset by clearing the table
	id, err := token.Approve("1", "alice", "dave", bigPayment, "")
	assert.Nil(t, err, "approve error")
	assert.Equal(t, uint64(2), id, "approval id counter reset")
}

func TestApproveWaitsForOpenTransaction(t *testing.T) {
	setup(t)
	defer teardown(t)

	mintToken(t, "1", "alice")

	// hold the write lock; the approve below must read the token
	// under the same lock as its write, so it has to wait here
	trx := storage.NewDBTransaction()

	done := make(chan error, 1)
	go func() {
		_, err := token.Approve("1", "alice", "bob", bigPayment, "")
		done <- err
	}()

	select {
	case <-done:
		t.Fatal("approve did not wait for the open transaction")
	case <-time.After(50 * time.Millisecond):
	}

	err := trx.Commit()
	assert.Nil(t, err, "commit error")

	err = <-done
	assert.Nil(t, err, "approve error")
	assert.True(t, token.IsApproved("1", "bob", nil), "approval missing")
}

func TestTransferByOwner(t *testing.T) {
	setup(t)
	defer teardown(t)

	mintToken(t, "1", "alice")
	_, err := token.Approve("1", "alice", "bob", bigPayment, "")
	assert.Nil(t, err, "approve error")
	messagebus.Clear()

	err = token.Transfer("1", "alice", "carol", nil, payment.MinimumDeposit, "gift")
	assert.Nil(t, err, "transfer error")

	moved := token.Get("1")
	assert.Equal(t, account.AccountId("carol"), moved.Owner, "wrong owner")
	assert.Equal(t, 0, len(moved.Approvals), "approvals survived transfer")

	assert.False(t, ownership.HasToken("alice", "1"), "old owner index kept")
	assert.True(t, ownership.HasToken("carol", "1"), "new owner index missing")

	m := <-messagebus.Chan()
	event, ok := m.Item.(messagebus.TransferEvent)
	assert.True(t, ok, "missing transfer event")
	assert.Equal(t, "gift", event.Memo, "wrong memo")
}

func TestTransferByDelegate(t *testing.T) {
	setup(t)
	defer teardown(t)

	mintToken(t, "1", "alice")
	id, err := token.Approve("1", "alice", "bob", bigPayment, "")
	assert.Nil(t, err, "approve error")

	// delegate without an approval id
	err = token.Transfer("1", "bob", "carol", nil, payment.MinimumDeposit, "")
	assert.Equal(t, fault.TransferNotAuthorized, err, "missing id accepted")

	// delegate with a wrong id
	wrong := id + 1
	err = token.Transfer("1", "bob", "carol", &wrong, payment.MinimumDeposit, "")
	assert.Equal(t, fault.TransferNotAuthorized, err, "wrong id accepted")
	assert.Equal(t, account.AccountId("alice"), token.Get("1").Owner, "owner changed on refusal")
	assert.True(t, ownership.HasToken("alice", "1"), "index changed on refusal")

	// delegate with the exact id it was issued
	err = token.Transfer("1", "bob", "carol", &id, payment.MinimumDeposit, "")
	assert.Nil(t, err, "transfer error")
	assert.Equal(t, account.AccountId("carol"), token.Get("1").Owner, "wrong owner")
}

func TestTransferToSelf(t *testing.T) {
	setup(t)
	defer teardown(t)

	mintToken(t, "1", "alice")
	_, err := token.Approve("1", "alice", "bob", bigPayment, "")
	assert.Nil(t, err, "approve error")

	// a transfer back to the current owner is refused and leaves the
	// approval table untouched
	err = token.Transfer("1", "alice", "alice", nil, payment.MinimumDeposit, "")
	assert.Equal(t, fault.TransferNotAuthorized, err, "self transfer accepted")
	assert.Equal(t, account.AccountId("alice"), token.Get("1").Owner, "owner changed")
	assert.True(t, token.IsApproved("1", "bob", nil), "approvals cleared by refused transfer")
	assert.True(t, ownership.HasToken("alice", "1"), "owner index changed")
}

func TestTransferByStranger(t *testing.T) {
	setup(t)
	defer teardown(t)

	mintToken(t, "1", "alice")

	err := token.Transfer("1", "mallory", "mallory2.main", nil, payment.MinimumDeposit, "")
	assert.Equal(t, fault.TransferNotAuthorized, err, "stranger transfer accepted")
}

func TestTransferAbsentToken(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := token.Transfer("404", "alice", "bob", nil, payment.MinimumDeposit, "")
	assert.Equal(t, fault.TokenNotFound, err, "absent token transferred")
}
