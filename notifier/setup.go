// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package notifier - one-way outbound delivery
//
// drains the message queue and publishes each item on a ZeroMQ PUB
// socket; subscribers may come and go, nothing in the engine ever
// waits for them
package notifier

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/ufundraisers/fundraiserd/background"
	"github.com/ufundraisers/fundraiserd/fault"
)

// Configuration - a block of configuration data
// this is read from the configuration file
type Configuration struct {
	Publish []string `gluamapper:"publish" json:"publish"`
}

// globals for background process
type notifierData struct {
	sync.RWMutex

	log *logger.L

	pub publisher

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData notifierData

// Initialise - bind the publishing sockets and start draining
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if 0 == len(configuration.Publish) {
		return fault.MissingParameters
	}

	globalData.log = logger.New("notifier")
	globalData.log.Info("starting…")

	if err := globalData.pub.initialise(configuration.Publish); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.pub,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
