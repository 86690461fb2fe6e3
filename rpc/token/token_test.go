// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/fixtures"
	"github.com/ufundraisers/fundraiserd/fundraiser"
	"github.com/ufundraisers/fundraiserd/payment"
	"github.com/ufundraisers/fundraiserd/record"
	tokenRPC "github.com/ufundraisers/fundraiserd/rpc/token"
	"github.com/ufundraisers/fundraiserd/storage"
	"github.com/ufundraisers/fundraiserd/token"
)

const bigPayment = 100 * 1000 * payment.StorageCostPerByte

func setup(t *testing.T) *tokenRPC.Token {
	fixtures.SetupTestLogger()
	err := storage.Initialise(fixtures.DatabaseFileName(), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = token.Initialise()
	if nil != err {
		t.Fatalf("token initialise error: %s", err)
	}
	err = fundraiser.Initialise()
	if nil != err {
		t.Fatalf("fundraiser initialise error: %s", err)
	}

	_, _, err = fundraiser.Create("alice", bigPayment, "clean water", "d", record.Active, nil)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}

	return tokenRPC.New(logger.New(fixtures.LogCategory))
}

func teardown(t *testing.T) {
	_ = fundraiser.Finalise()
	_ = token.Finalise()
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func TestGet(t *testing.T) {
	rpc := setup(t)
	defer teardown(t)

	var got tokenRPC.GetReply
	err := rpc.Get(&tokenRPC.GetArguments{TokenId: "1"}, &got)
	assert.Nil(t, err, "get error")
	assert.NotNil(t, got.Token, "missing token")
	assert.NotNil(t, got.Metadata, "missing metadata")
	assert.Equal(t, account.AccountId("alice"), got.Token.Owner, "wrong owner")

	got = tokenRPC.GetReply{}
	err = rpc.Get(&tokenRPC.GetArguments{TokenId: "404"}, &got)
	assert.Nil(t, err, "get error")
	assert.Nil(t, got.Token, "unexpected token")
}

func TestApproveAndTransfer(t *testing.T) {
	rpc := setup(t)
	defer teardown(t)

	var approved tokenRPC.ApproveReply
	err := rpc.Approve(&tokenRPC.ApproveArguments{
		TokenId:  "1",
		Caller:   "alice",
		Delegate: "bob",
		Payment:  bigPayment,
	}, &approved)
	assert.Nil(t, err, "approve error")
	assert.Equal(t, uint64(0), approved.ApprovalId, "wrong approval id")

	var check tokenRPC.IsApprovedReply
	err = rpc.IsApproved(&tokenRPC.IsApprovedArguments{
		TokenId:    "1",
		Delegate:   "bob",
		ApprovalId: &approved.ApprovalId,
	}, &check)
	assert.Nil(t, err, "is approved error")
	assert.True(t, check.Approved, "approval not visible")

	var transferred tokenRPC.TransferReply
	err = rpc.Transfer(&tokenRPC.TransferArguments{
		TokenId:    "1",
		Caller:     "bob",
		Receiver:   "carol",
		ApprovalId: &approved.ApprovalId,
		Payment:    payment.MinimumDeposit,
	}, &transferred)
	assert.Nil(t, err, "transfer error")
	assert.Equal(t, account.AccountId("carol"), transferred.Owner, "wrong owner")
	assert.Equal(t, account.AccountId("carol"), token.Get("1").Owner, "owner not stored")
}

func TestRevoke(t *testing.T) {
	rpc := setup(t)
	defer teardown(t)

	var approved tokenRPC.ApproveReply
	err := rpc.Approve(&tokenRPC.ApproveArguments{
		TokenId:  "1",
		Caller:   "alice",
		Delegate: "bob",
		Payment:  bigPayment,
	}, &approved)
	assert.Nil(t, err, "approve error")

	var revoked tokenRPC.RevokeReply
	err = rpc.Revoke(&tokenRPC.RevokeArguments{
		TokenId:  "1",
		Caller:   "mallory",
		Delegate: "bob",
		Payment:  payment.MinimumDeposit,
	}, &revoked)
	assert.Equal(t, fault.NotTokenOwner, err, "foreign revoke accepted")

	err = rpc.RevokeAll(&tokenRPC.RevokeAllArguments{
		TokenId: "1",
		Caller:  "alice",
		Payment: payment.MinimumDeposit,
	}, &revoked)
	assert.Nil(t, err, "revoke all error")
	assert.True(t, revoked.OK, "not confirmed")
	assert.False(t, token.IsApproved("1", "bob", nil), "approval survived")
}
