// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ufundraisers/fundraiserd/fault"
	"github.com/ufundraisers/fundraiserd/fixtures"
	"github.com/ufundraisers/fundraiserd/notifier"
)

func TestInitialiseWithoutAddresses(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := notifier.Initialise(&notifier.Configuration{})
	assert.Equal(t, fault.MissingParameters, err, "empty configuration accepted")
}

func TestInitialiseFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := notifier.Initialise(&notifier.Configuration{
		Publish: []string{"inproc://notifier-test"},
	})
	assert.Nil(t, err, "initialise error")

	err = notifier.Initialise(&notifier.Configuration{
		Publish: []string{"inproc://notifier-test-2"},
	})
	assert.Equal(t, fault.AlreadyInitialised, err, "double initialise accepted")

	err = notifier.Finalise()
	assert.Nil(t, err, "finalise error")

	err = notifier.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "double finalise accepted")
}
