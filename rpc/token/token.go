// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/record"
	"github.com/ufundraisers/fundraiserd/rpc/ratelimit"
	"github.com/ufundraisers/fundraiserd/token"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Token - type for the RPC
type Token struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

// New - create the RPC instance
func New(log *logger.L) *Token {
	return &Token{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitToken, rateBurstToken),
	}
}

// ---

// GetArguments - arguments for the token read
type GetArguments struct {
	TokenId string `json:"token_id"`
}

// GetReply - result from get RPC, fields are null when absent
type GetReply struct {
	Token    *record.Token         `json:"token"`
	Metadata *record.TokenMetadata `json:"metadata"`
}

// Get - read one token with its metadata
func (t *Token) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	reply.Token = token.Get(arguments.TokenId)
	if nil != reply.Token {
		reply.Metadata = token.GetMetadata(arguments.TokenId)
	}
	return nil
}

// ---

// ApproveArguments - arguments for granting a delegation
type ApproveArguments struct {
	TokenId  string            `json:"token_id"`
	Caller   account.AccountId `json:"caller"`
	Delegate account.AccountId `json:"delegate"`
	Payment  uint64            `json:"payment,string"`
	Message  string            `json:"message"`
}

// ApproveReply - result from approve RPC
type ApproveReply struct {
	ApprovalId uint64 `json:"approval_id,string"`
}

// Approve - grant or renew a delegated transfer right
func (t *Token) Approve(arguments *ApproveArguments, reply *ApproveReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Approve: %+v", arguments)

	approvalId, err := token.Approve(
		arguments.TokenId,
		arguments.Caller,
		arguments.Delegate,
		arguments.Payment,
		arguments.Message,
	)
	if nil != err {
		return err
	}

	reply.ApprovalId = approvalId
	return nil
}

// ---

// IsApprovedArguments - arguments for the delegation check
type IsApprovedArguments struct {
	TokenId    string            `json:"token_id"`
	Delegate   account.AccountId `json:"delegate"`
	ApprovalId *uint64           `json:"approval_id"`
}

// IsApprovedReply - result from the delegation check
type IsApprovedReply struct {
	Approved bool `json:"approved"`
}

// IsApproved - check a delegation, optionally pinned to an exact id
func (t *Token) IsApproved(arguments *IsApprovedArguments, reply *IsApprovedReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	reply.Approved = token.IsApproved(arguments.TokenId, arguments.Delegate, arguments.ApprovalId)
	return nil
}

// ---

// RevokeArguments - arguments for removing one delegation
type RevokeArguments struct {
	TokenId  string            `json:"token_id"`
	Caller   account.AccountId `json:"caller"`
	Delegate account.AccountId `json:"delegate"`
	Payment  uint64            `json:"payment,string"`
}

// RevokeReply - result from revoke RPC
type RevokeReply struct {
	OK bool `json:"ok"`
}

// Revoke - remove one delegate
func (t *Token) Revoke(arguments *RevokeArguments, reply *RevokeReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Revoke: %+v", arguments)

	err := token.Revoke(arguments.TokenId, arguments.Caller, arguments.Delegate, arguments.Payment)
	if nil != err {
		return err
	}

	reply.OK = true
	return nil
}

// ---

// RevokeAllArguments - arguments for clearing all delegations
type RevokeAllArguments struct {
	TokenId string            `json:"token_id"`
	Caller  account.AccountId `json:"caller"`
	Payment uint64            `json:"payment,string"`
}

// RevokeAll - clear the whole approval table
func (t *Token) RevokeAll(arguments *RevokeAllArguments, reply *RevokeReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.RevokeAll: %+v", arguments)

	err := token.RevokeAll(arguments.TokenId, arguments.Caller, arguments.Payment)
	if nil != err {
		return err
	}

	reply.OK = true
	return nil
}

// ---

// TransferArguments - arguments for a transfer, a delegate must
// present the exact approval id it was issued
type TransferArguments struct {
	TokenId    string            `json:"token_id"`
	Caller     account.AccountId `json:"caller"`
	Receiver   account.AccountId `json:"receiver"`
	ApprovalId *uint64           `json:"approval_id"`
	Payment    uint64            `json:"payment,string"`
	Memo       string            `json:"memo"`
}

// TransferReply - result from transfer RPC
type TransferReply struct {
	Owner account.AccountId `json:"owner"`
}

// Transfer - move a token to a new owner
func (t *Token) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Transfer: %+v", arguments)

	err := token.Transfer(
		arguments.TokenId,
		arguments.Caller,
		arguments.Receiver,
		arguments.ApprovalId,
		arguments.Payment,
		arguments.Memo,
	)
	if nil != err {
		return err
	}

	reply.Owner = arguments.Receiver
	return nil
}
