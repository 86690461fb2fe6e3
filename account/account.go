// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - caller account identifiers
//
// an account is either a named account: 2…64 characters of lower case
// letters, digits and single '.', '_' or '-' separators; or an
// implicit account: the base58 form of a 32 byte public key
package account

import (
	"github.com/mr-tron/base58"
)

// AccountId - identity of a calling account
type AccountId string

// length limits for a named account
const (
	minAccountLength = 2
	maxAccountLength = 64
)

// size of the key behind an implicit account
const implicitKeySize = 32

// IsValid - check an account id is acceptable
func (account AccountId) IsValid() bool {
	if isNamed(string(account)) {
		return true
	}
	return isImplicit(string(account))
}

// Bytes - key form of the account for index derivation
func (account AccountId) Bytes() []byte {
	return []byte(account)
}

// String - the account id as text
func (account AccountId) String() string {
	return string(account)
}

// a named account must consist of separator delimited parts of lower
// case letters and digits
func isNamed(s string) bool {
	if len(s) < minAccountLength || len(s) > maxAccountLength {
		return false
	}

	previousSeparator := true // leading separator is forbidden
	for i := 0; i < len(s); i += 1 {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			previousSeparator = false
		case '.' == c, '_' == c, '-' == c:
			if previousSeparator {
				return false
			}
			previousSeparator = true
		default:
			return false
		}
	}
	return !previousSeparator // trailing separator is forbidden
}

// an implicit account is a base58 encoded 32 byte key
func isImplicit(s string) bool {
	key, err := base58.Decode(s)
	if nil != err {
		return false
	}
	return implicitKeySize == len(key)
}
