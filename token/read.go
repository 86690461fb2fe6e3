// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/logger"

	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/record"
	"github.com/ufundraisers/fundraiserd/storage"
)

// Get - read a token, nil if not present
func Get(tokenId string) *record.Token {
	packed := storage.Pool.Tokens.Get([]byte(tokenId))
	if nil == packed {
		return nil
	}
	token, err := record.UnpackToken(packed)
	if nil != err {
		logger.Panicf("token: corrupt record for id: %q  error: %s", tokenId, err)
	}
	return token
}

// read a token inside an open transaction so the read and the
// following write share one serialisation lock
func getToken(trx storage.Transaction, tokenId string) *record.Token {
	packed := trx.Get(storage.Pool.Tokens, []byte(tokenId))
	if nil == packed {
		return nil
	}
	token, err := record.UnpackToken(packed)
	if nil != err {
		logger.Panicf("token: corrupt record for id: %q  error: %s", tokenId, err)
	}
	return token
}

// GetMetadata - read token metadata, nil if not present
func GetMetadata(tokenId string) *record.TokenMetadata {
	packed := storage.Pool.TokenMetadata.Get([]byte(tokenId))
	if nil == packed {
		return nil
	}
	metadata, err := record.UnpackTokenMetadata(packed)
	if nil != err {
		logger.Panicf("token: corrupt metadata for id: %q  error: %s", tokenId, err)
	}
	return metadata
}

// IsApproved - check a delegation
//
// true iff the account holds an approval and, when an id is supplied,
// the stored id matches it exactly
func IsApproved(tokenId string, delegate account.AccountId, approvalId *uint64) bool {
	token := Get(tokenId)
	if nil == token {
		return false
	}
	current, found := token.ApprovalFor(delegate)
	if !found {
		return false
	}
	if nil == approvalId {
		return true
	}
	return current == *approvalId
}
