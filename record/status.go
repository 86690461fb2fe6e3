// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/ufundraisers/fundraiserd/fault"
)

// Status - type for the fundraiser status
type Status uint64

// possible status values
const (
	Nothing   Status = iota // this is the unset status
	Active    Status = iota
	Draft     Status = iota
	Completed Status = iota

	maximumStatus = Completed
)

// internal conversion
func toString(status Status) ([]byte, error) {
	switch status {
	case Nothing:
		return []byte{}, nil
	case Active:
		return []byte("ACTIVE"), nil
	case Draft:
		return []byte("DRAFT"), nil
	case Completed:
		return []byte("COMPLETED"), nil
	default:
		return []byte{}, fault.InvalidStatus
	}
}

// internal conversion
func fromString(s string) (Status, error) {
	switch strings.ToUpper(s) {
	case "":
		return Nothing, nil
	case "ACTIVE":
		return Active, nil
	case "DRAFT":
		return Draft, nil
	case "COMPLETED":
		return Completed, nil
	default:
		return Nothing, fault.InvalidStatus
	}
}

// String - convert a status to its string symbol
func (status Status) String() string {
	s, err := toString(status)
	if nil != err {
		logger.Panicf("invalid status enumeration: %d", status)
	}
	return string(s)
}

// Valid - check the status is a settable value
func (status Status) Valid() bool {
	return status >= Active && status <= maximumStatus
}

// MarshalText - convert status to text
func (status Status) MarshalText() ([]byte, error) {
	return toString(status)
}

// UnmarshalText - convert text to status
func (status *Status) UnmarshalText(s []byte) error {
	c, err := fromString(string(s))
	if nil != err {
		return err
	}
	*status = c
	return nil
}

// StatusFromString - convert a symbol to a status
func StatusFromString(s string) (Status, error) {
	return fromString(s)
}
