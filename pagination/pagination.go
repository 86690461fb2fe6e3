// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pagination - stateless windowing over ascending-id listings
package pagination

import (
	"github.com/ufundraisers/fundraiserd/fault"
)

// PageSize - fixed number of entries per page
const PageSize uint64 = 25

// Window - compute the start offset and size of one page
//
// a nil page means the first page; pages are numbered from 1 and a
// zero page is rejected rather than wrapped
func Window(page *uint64) (uint64, uint64, error) {
	if nil == page {
		return 0, PageSize, nil
	}
	if 0 == *page {
		return 0, 0, fault.InvalidPage
	}
	return (*page - 1) * PageSize, PageSize, nil
}
