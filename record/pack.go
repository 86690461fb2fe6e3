// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/ufundraisers/fundraiserd/util"
)

// Packed - a byte cached packed record
type Packed []byte

// append a varint value
func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}

// append a length prefixed string
func appendString(buffer Packed, s string) Packed {
	buffer = appendUint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append length prefixed bytes
func appendBytes(buffer Packed, b []byte) Packed {
	buffer = appendUint64(buffer, uint64(len(b)))
	return append(buffer, b...)
}

// Pack - pack a fundraiser to its stored form
func (fundraiser *Fundraiser) Pack() Packed {
	buffer := Packed{}
	buffer = appendString(buffer, string(fundraiser.Owner))
	buffer = appendString(buffer, fundraiser.Title)
	buffer = appendString(buffer, fundraiser.Description)
	buffer = appendUint64(buffer, uint64(fundraiser.Status))
	return buffer
}

// Pack - pack a token to its stored form
func (token *Token) Pack() Packed {
	buffer := Packed{}
	buffer = appendString(buffer, string(token.Owner))
	buffer = appendUint64(buffer, token.NextApprovalId)
	buffer = appendUint64(buffer, uint64(len(token.Approvals)))
	for _, approval := range token.Approvals {
		buffer = appendString(buffer, string(approval.Delegate))
		buffer = appendUint64(buffer, approval.ApprovalId)
	}
	return buffer
}

// Pack - pack token metadata to its stored form
func (metadata *TokenMetadata) Pack() Packed {
	buffer := Packed{}
	buffer = appendString(buffer, metadata.Title)
	buffer = appendString(buffer, metadata.Description)
	buffer = appendString(buffer, metadata.Media)
	buffer = appendBytes(buffer, metadata.MediaHash)
	buffer = appendUint64(buffer, metadata.Copies)
	buffer = appendUint64(buffer, metadata.Issued)
	buffer = appendString(buffer, metadata.Extra)
	buffer = appendString(buffer, metadata.Reference)
	buffer = appendBytes(buffer, metadata.ReferenceHash)
	return buffer
}

// AppendAmount - append one donation amount to a packed sequence
//
// the ledger is append-only so the stored value only ever grows at the
// end, keeping earlier entries and their order untouched
func AppendAmount(buffer []byte, amount uint64) []byte {
	return append(buffer, util.ToVarint64(amount)...)
}
