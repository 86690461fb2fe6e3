// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"sort"

	"github.com/ufundraisers/fundraiserd/account"
)

// Approval - one delegated transfer right
type Approval struct {
	Delegate   account.AccountId `json:"delegate"`
	ApprovalId uint64            `json:"approval_id"`
}

// Token - a transferable ownership certificate
//
// approvals are kept sorted by delegate so the packed form of the same
// logical state is always byte identical
type Token struct {
	Owner          account.AccountId `json:"owner"`
	NextApprovalId uint64            `json:"next_approval_id"`
	Approvals      []Approval        `json:"approvals"`
}

// search for a delegate, returns insertion point when not found
func (token *Token) findDelegate(delegate account.AccountId) (int, bool) {
	i := sort.Search(len(token.Approvals), func(i int) bool {
		return token.Approvals[i].Delegate >= delegate
	})
	found := i < len(token.Approvals) && token.Approvals[i].Delegate == delegate
	return i, found
}

// ApprovalFor - the current approval id of a delegate
func (token *Token) ApprovalFor(delegate account.AccountId) (uint64, bool) {
	i, found := token.findDelegate(delegate)
	if !found {
		return 0, false
	}
	return token.Approvals[i].ApprovalId, true
}

// Approve - assign the next approval id to a delegate
//
// the id counter advances on every call, re-approving an existing
// delegate invalidates the id it held before; second return reports
// whether the delegate is new to the approval table
func (token *Token) Approve(delegate account.AccountId) (uint64, bool) {
	approvalId := token.NextApprovalId
	token.NextApprovalId += 1

	i, found := token.findDelegate(delegate)
	if found {
		token.Approvals[i].ApprovalId = approvalId
		return approvalId, false
	}

	token.Approvals = append(token.Approvals, Approval{})
	copy(token.Approvals[i+1:], token.Approvals[i:])
	token.Approvals[i] = Approval{
		Delegate:   delegate,
		ApprovalId: approvalId,
	}
	return approvalId, true
}

// Revoke - remove one delegate, no-op if absent
func (token *Token) Revoke(delegate account.AccountId) bool {
	i, found := token.findDelegate(delegate)
	if !found {
		return false
	}
	token.Approvals = append(token.Approvals[:i], token.Approvals[i+1:]...)
	return true
}

// RevokeAll - clear the approval table
func (token *Token) RevokeAll() {
	token.Approvals = nil
}
