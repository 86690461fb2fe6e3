// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - the certificate ownership and approval state machine
//
// a token is always owned; delegated transfer rights are tracked in a
// per-token approval table with a monotonic id so a stale delegation
// can be detected and refused
package token

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

// Initialise - setup the token manager
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("token")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - stop the token manager
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
