// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/fault"
)

// field limits
const (
	MaximumTitleLength       = 1000
	MaximumDescriptionLength = 2000
)

// Fundraiser - a campaign record owned by one account
type Fundraiser struct {
	Owner       account.AccountId `json:"owner"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      Status            `json:"status"`
}

// Validate - check all fields before any storage is touched
func (fundraiser *Fundraiser) Validate() error {
	if !fundraiser.Owner.IsValid() {
		return fault.InvalidAccount
	}
	if 0 == len(fundraiser.Title) {
		return fault.TitleIsRequired
	}
	if len(fundraiser.Title) > MaximumTitleLength {
		return fault.TitleTooLong
	}
	if len(fundraiser.Description) > MaximumDescriptionLength {
		return fault.DescriptionTooLong
	}
	if !fundraiser.Status.Valid() {
		return fault.InvalidStatus
	}
	return nil
}
