// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/record"
)

func TestFundraiserValidate(t *testing.T) {
	valid := record.Fundraiser{
		Owner:       "alice",
		Title:       "clean water",
		Description: "wells for the village",
		Status:      record.Active,
	}
	assert.Nil(t, valid.Validate(), "valid fundraiser rejected")

	testCases := []struct {
		name       string
		modify     func(f *record.Fundraiser)
		expected   error
	}{
		{"empty title", func(f *record.Fundraiser) { f.Title = "" }, fault.TitleIsRequired},
		{"over long title", func(f *record.Fundraiser) { f.Title = strings.Repeat("x", 1001) }, fault.TitleTooLong},
		{"over long description", func(f *record.Fundraiser) { f.Description = strings.Repeat("x", 2001) }, fault.DescriptionTooLong},
		{"bad owner", func(f *record.Fundraiser) { f.Owner = "A" }, fault.InvalidAccount},
		{"unset status", func(f *record.Fundraiser) { f.Status = record.Nothing }, fault.InvalidStatus},
	}

	for _, testCase := range testCases {
		f := valid
		testCase.modify(&f)
		err := f.Validate()
		assert.Equal(t, testCase.expected, err, testCase.name)
	}

	// limits are inclusive
	f := valid
	f.Title = strings.Repeat("x", 1000)
	f.Description = strings.Repeat("y", 2000)
	assert.Nil(t, f.Validate(), "maximum lengths rejected")
}

func TestFundraiserPackUnpack(t *testing.T) {
	fundraiser := record.Fundraiser{
		Owner:       "alice",
		Title:       "clean water",
		Description: "wells for the village",
		Status:      record.Draft,
	}

	unpacked, err := record.UnpackFundraiser(fundraiser.Pack())
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, &fundraiser, unpacked, "pack/unpack mismatch")
}

func TestTokenPackUnpack(t *testing.T) {
	token := record.Token{
		Owner:          "alice",
		NextApprovalId: 3,
		Approvals: []record.Approval{
			{Delegate: "bob", ApprovalId: 1},
			{Delegate: "carol", ApprovalId: 2},
		},
	}

	unpacked, err := record.UnpackToken(token.Pack())
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, &token, unpacked, "pack/unpack mismatch")
}

func TestTokenMetadataPackUnpack(t *testing.T) {
	metadata := record.TokenMetadata{
		Title:         "clean water",
		Description:   "wells for the village",
		Media:         "https://example.org/well.png",
		MediaHash:     []byte{0x01, 0x02, 0x03},
		Copies:        1,
		Issued:        1672531200,
		Extra:         `{"region":"north"}`,
		Reference:     "https://example.org/well.json",
		ReferenceHash: []byte{0xfe, 0xff},
	}

	unpacked, err := record.UnpackTokenMetadata(metadata.Pack())
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, &metadata, unpacked, "pack/unpack mismatch")

	// empty optional fields stay empty
	minimal := record.TokenMetadata{Title: "t"}
	unpacked, err = record.UnpackTokenMetadata(minimal.Pack())
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, &minimal, unpacked, "pack/unpack mismatch")
}

func TestTokenUnpackTruncated(t *testing.T) {
	token := record.Token{
		Owner: "alice",
		Approvals: []record.Approval{
			{Delegate: "bob", ApprovalId: 0},
		},
	}

	packed := token.Pack()
	for i := 1; i < len(packed); i += 1 {
		_, err := record.UnpackToken(packed[:i])
		assert.NotNil(t, err, "truncation at %d not detected", i)
	}
}

func TestTokenApprove(t *testing.T) {
	token := record.Token{Owner: "alice"}

	id, isNew := token.Approve("bob")
	assert.Equal(t, uint64(0), id, "wrong first approval id")
	assert.True(t, isNew, "first approval not new")

	// re-approval consumes a fresh id
	id, isNew = token.Approve("bob")
	assert.Equal(t, uint64(1), id, "wrong second approval id")
	assert.False(t, isNew, "re-approval reported as new")
	assert.Equal(t, 1, len(token.Approvals), "duplicate approval entry")

	id, isNew = token.Approve("carol")
	assert.Equal(t, uint64(2), id, "wrong third approval id")
	assert.True(t, isNew, "new delegate not new")

	// kept sorted by delegate
	assert.Equal(t, "bob", string(token.Approvals[0].Delegate), "wrong order")
	assert.Equal(t, "carol", string(token.Approvals[1].Delegate), "wrong order")

	current, found := token.ApprovalFor("bob")
	assert.True(t, found, "missing approval")
	assert.Equal(t, uint64(1), current, "stale approval id kept")
}

func TestTokenRevoke(t *testing.T) {
	token := record.Token{Owner: "alice"}
	token.Approve("bob")
	token.Approve("carol")

	assert.True(t, token.Revoke("bob"), "revoke missed")
	assert.False(t, token.Revoke("bob"), "revoke of absent delegate")

	_, found := token.ApprovalFor("bob")
	assert.False(t, found, "revoked delegate still present")
	_, found = token.ApprovalFor("carol")
	assert.True(t, found, "wrong delegate revoked")

	token.RevokeAll()
	assert.Equal(t, 0, len(token.Approvals), "approvals not cleared")

	// id counter is never reset
	id, _ := token.Approve("dave")
	assert.Equal(t, uint64(2), id, "approval id counter reset")
}

func TestStatusText(t *testing.T) {
	for _, status := range []record.Status{record.Active, record.Draft, record.Completed} {
		s, err := record.StatusFromString(status.String())
		assert.Nil(t, err, "conversion error")
		assert.Equal(t, status, s, "round trip mismatch")
	}

	// case insensitive
	s, err := record.StatusFromString("active")
	assert.Nil(t, err, "conversion error")
	assert.Equal(t, record.Active, s, "wrong status")

	_, err = record.StatusFromString("UNKNOWN")
	assert.Equal(t, fault.InvalidStatus, err, "expected invalid status")
}

func TestAmounts(t *testing.T) {
	packed := []byte{}
	for _, amount := range []uint64{500, 500, 123456789} {
		packed = record.AppendAmount(packed, amount)
	}

	amounts, err := record.UnpackAmounts(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, []uint64{500, 500, 123456789}, amounts, "wrong amounts")

	amounts, err = record.UnpackAmounts(nil)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, []uint64{}, amounts, "empty ledger not empty")
}
