// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/util"
)

// read a varint value
func nextUint64(buffer Packed) (uint64, Packed, error) {
	value, count := util.FromVarint64(buffer)
	if 0 == count {
		return 0, nil, fault.TruncatedRecord
	}
	return value, buffer[count:], nil
}

// read a length prefixed string
func nextString(buffer Packed) (string, Packed, error) {
	length, buffer, err := nextUint64(buffer)
	if nil != err {
		return "", nil, err
	}
	if uint64(len(buffer)) < length {
		return "", nil, fault.TruncatedRecord
	}
	return string(buffer[:length]), buffer[length:], nil
}

// read length prefixed bytes, nil for an empty field
func nextBytes(buffer Packed) ([]byte, Packed, error) {
	length, buffer, err := nextUint64(buffer)
	if nil != err {
		return nil, nil, err
	}
	if uint64(len(buffer)) < length {
		return nil, nil, fault.TruncatedRecord
	}
	if 0 == length {
		return nil, buffer, nil
	}
	b := make([]byte, length)
	copy(b, buffer[:length])
	return b, buffer[length:], nil
}

// UnpackFundraiser - unpack a stored fundraiser
func UnpackFundraiser(buffer Packed) (*Fundraiser, error) {
	owner, buffer, err := nextString(buffer)
	if nil != err {
		return nil, err
	}
	title, buffer, err := nextString(buffer)
	if nil != err {
		return nil, err
	}
	description, buffer, err := nextString(buffer)
	if nil != err {
		return nil, err
	}
	status, buffer, err := nextUint64(buffer)
	if nil != err {
		return nil, err
	}
	if 0 != len(buffer) {
		return nil, fault.WrongRecordType
	}

	fundraiser := &Fundraiser{
		Owner:       account.AccountId(owner),
		Title:       title,
		Description: description,
		Status:      Status(status),
	}
	if !fundraiser.Status.Valid() {
		return nil, fault.InvalidStatus
	}
	return fundraiser, nil
}

// UnpackToken - unpack a stored token
func UnpackToken(buffer Packed) (*Token, error) {
	owner, buffer, err := nextString(buffer)
	if nil != err {
		return nil, err
	}
	nextApprovalId, buffer, err := nextUint64(buffer)
	if nil != err {
		return nil, err
	}
	count, buffer, err := nextUint64(buffer)
	if nil != err {
		return nil, err
	}

	var approvals []Approval
	if count > 0 {
		approvals = make([]Approval, 0, count)
	}
	for i := uint64(0); i < count; i += 1 {
		var delegate string
		var approvalId uint64
		delegate, buffer, err = nextString(buffer)
		if nil != err {
			return nil, err
		}
		approvalId, buffer, err = nextUint64(buffer)
		if nil != err {
			return nil, err
		}
		approvals = append(approvals, Approval{
			Delegate:   account.AccountId(delegate),
			ApprovalId: approvalId,
		})
	}
	if 0 != len(buffer) {
		return nil, fault.WrongRecordType
	}

	return &Token{
		Owner:          account.AccountId(owner),
		NextApprovalId: nextApprovalId,
		Approvals:      approvals,
	}, nil
}

// UnpackTokenMetadata - unpack stored token metadata
func UnpackTokenMetadata(buffer Packed) (*TokenMetadata, error) {
	title, buffer, err := nextString(buffer)
	if nil != err {
		return nil, err
	}
	description, buffer, err := nextString(buffer)
	if nil != err {
		return nil, err
	}
	media, buffer, err := nextString(buffer)
	if nil != err {
		return nil, err
	}
	mediaHash, buffer, err := nextBytes(buffer)
	if nil != err {
		return nil, err
	}
	copies, buffer, err := nextUint64(buffer)
	if nil != err {
		return nil, err
	}
	issued, buffer, err := nextUint64(buffer)
	if nil != err {
		return nil, err
	}
	extra, buffer, err := nextString(buffer)
	if nil != err {
		return nil, err
	}
	reference, buffer, err := nextString(buffer)
	if nil != err {
		return nil, err
	}
	referenceHash, buffer, err := nextBytes(buffer)
	if nil != err {
		return nil, err
	}
	if 0 != len(buffer) {
		return nil, fault.WrongRecordType
	}

	return &TokenMetadata{
		Title:         title,
		Description:   description,
		Media:         media,
		MediaHash:     mediaHash,
		Copies:        copies,
		Issued:        issued,
		Extra:         extra,
		Reference:     reference,
		ReferenceHash: referenceHash,
	}, nil
}

// UnpackAmounts - decode a packed donation sequence in stored order
func UnpackAmounts(buffer []byte) ([]uint64, error) {
	amounts := []uint64{}
	for 0 != len(buffer) {
		amount, count := util.FromVarint64(buffer)
		if 0 == count {
			return nil, fault.TruncatedRecord
		}
		amounts = append(amounts, amount)
		buffer = buffer[count:]
	}
	return amounts, nil
}
