// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fundraiser - the campaign engine
//
// creates campaign records paired one-to-one with their certificate
// token, indexes them by owner, and keeps the per-donor donation
// ledger; every write commits entity, indexes and counter in one step
package fundraiser

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/ufundraisers/fundraiserd/fault"
)

// globals for background process
type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	initialised bool
}

// global data
var globalData globalDataType

// Initialise - setup the fundraiser engine
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("fundraiser")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - stop the fundraiser engine
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}
