// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package seed - one-shot sample data for development setups
//
// reuses the public create path unmodified, only reachable on a
// testing chain and only for the configured operator account
package seed

import (
	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/fundraiser"
	"github.com/ufundraisers/fundraiserd/mode"
	"github.com/ufundraisers/fundraiserd/record"
)

// sample campaign content
const (
	sampleTitle       = "Sample fundraiser"
	sampleDescription = "A seeded campaign for development and testing"
)

// Fundraiser - create one sample campaign
func Fundraiser(caller account.AccountId, operator account.AccountId, attached uint64) (uint64, string, error) {
	if !mode.IsTesting() {
		return 0, "", fault.SeedNotAllowed
	}
	if caller != operator {
		return 0, "", fault.SeedNotAllowed
	}

	return fundraiser.Create(caller, attached, sampleTitle, sampleDescription, record.Active, nil)
}
