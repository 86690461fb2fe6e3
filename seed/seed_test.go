// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ufundraisers/fundraiserd/chain"
	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/fixtures"
	"github.com/ufundraisers/fundraiserd/fundraiser"
	"github.com/ufundraisers/fundraiserd/mode"
	"github.com/ufundraisers/fundraiserd/payment"
	"github.com/ufundraisers/fundraiserd/seed"
	"github.com/ufundraisers/fundraiserd/storage"
	"github.com/ufundraisers/fundraiserd/token"
)

const bigPayment = 100 * 1000 * payment.StorageCostPerByte

func setup(t *testing.T, chainName string) {
	fixtures.SetupTestLogger()
	err := mode.Initialise(chainName)
	if nil != err {
		t.Fatalf("mode initialise error: %s", err)
	}
	err = storage.Initialise(fixtures.DatabaseFileName(), storage.ReadWrite)
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
}

func teardown(t *testing.T) {
	_ = fundraiser.Finalise()
	_ = token.Finalise()
	storage.Finalise()
	mode.Finalise()
	fixtures.TeardownTestLogger()
}

func TestSeedOnTestingChain(t *testing.T) {
	setup(t, chain.Local)
	defer teardown(t)

	fundraiserId, tokenId, err := seed.Fundraiser("operator", "operator", bigPayment)
	assert.Nil(t, err, "seed error")
	assert.Equal(t, uint64(1), fundraiserId, "wrong id")
	assert.Equal(t, "1", tokenId, "wrong token id")
	assert.NotNil(t, fundraiser.Get(fundraiserId), "seeded campaign missing")
}

func TestSeedRefusedForOtherCaller(t *testing.T) {
	setup(t, chain.Local)
	defer teardown(t)

	_, _, err := seed.Fundraiser("mallory", "operator", bigPayment)
	assert.Equal(t, fault.SeedNotAllowed, err, "foreign caller accepted")
	assert.Equal(t, uint64(0), fundraiser.Counter(), "counter moved")
}

func TestSeedRefusedOnLiveChain(t *testing.T) {
	setup(t, chain.Live)
	defer teardown(t)

	_, _, err := seed.Fundraiser("operator", "operator", bigPayment)
	assert.Equal(t, fault.SeedNotAllowed, err, "seeding allowed on live chain")
}
