// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fundraiser

import (
	"encoding/binary"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/pagination"
	"github.com/ufundraisers/fundraiserd/record"
	"github.com/ufundraisers/fundraiserd/storage"
	"github.com/ufundraisers/fundraiserd/token"
)

// View - composite of a campaign and its certificate token
type View struct {
	FundraiserId  uint64                `json:"fundraiser_id"`
	Fundraiser    *record.Fundraiser    `json:"fundraiser"`
	TokenId       string                `json:"token_id"`
	Token         *record.Token         `json:"token"`
	TokenMetadata *record.TokenMetadata `json:"token_metadata"`
}

// read and unpack one fundraiser row, nil if not present
func getRecord(fundraiserId uint64) *record.Fundraiser {
	packed := storage.Pool.Fundraisers.Get(fundraiserKey(fundraiserId))
	if nil == packed {
		return nil
	}
	fundraiser, err := record.UnpackFundraiser(packed)
	if nil != err {
		logger.Panicf("fundraiser: corrupt record for id: %d  error: %s", fundraiserId, err)
	}
	return fundraiser
}

// Get - the composite view of one campaign
//
// nil when the id was never allocated, and also when the paired token
// row is missing: reads stay total and never error, a broken pairing
// only surfaces through CheckPairing
func Get(fundraiserId uint64) *View {
	fundraiser := getRecord(fundraiserId)
	if nil == fundraiser {
		return nil
	}

	tokenId := strconv.FormatUint(fundraiserId, 10)
	tokenRecord := token.Get(tokenId)
	if nil == tokenRecord {
		return nil
	}

	return &View{
		FundraiserId:  fundraiserId,
		Fundraiser:    fundraiser,
		TokenId:       tokenId,
		Token:         tokenRecord,
		TokenMetadata: token.GetMetadata(tokenId),
	}
}

// List - one page of campaigns in creation order
//
// the window is applied to the stored id sequence before the token
// join, so an id whose join fails is dropped from the page without
// pulling later ids forward
func List(page *uint64) ([]View, error) {
	from, size, err := pagination.Window(page)
	if nil != err {
		return nil, err
	}

	cursor := storage.Pool.Fundraisers.NewFetchCursor()

	if from > 0 {
		skipped, err := cursor.Fetch(int(from))
		if nil != err {
			return nil, err
		}
		if uint64(len(skipped)) < from {
			return []View{}, nil
		}
	}

	elements, err := cursor.Fetch(int(size))
	if nil != err {
		return nil, err
	}

	views := make([]View, 0, len(elements))
	for _, element := range elements {
		if 8 != len(element.Key) {
			continue
		}
		view := Get(binary.BigEndian.Uint64(element.Key))
		if nil != view {
			views = append(views, *view)
		}
	}
	return views, nil
}

// CheckPairing - verify a campaign still has its certificate token
//
// a missing token under an existing fundraiser row means some write
// bypassed the paired commit; Get hides this from readers so it is
// exposed here for integrity checks
func CheckPairing(fundraiserId uint64) error {
	fundraiser := getRecord(fundraiserId)
	if nil == fundraiser {
		return nil
	}
	tokenId := strconv.FormatUint(fundraiserId, 10)
	if nil == token.Get(tokenId) {
		return fault.TokenNotFound
	}
	if nil == token.GetMetadata(tokenId) {
		return fault.TokenMetadataNotFound
	}
	return nil
}
