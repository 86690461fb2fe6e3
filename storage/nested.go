// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"
	"golang.org/x/crypto/sha3"
)

// length of the parent namespace digest
const subKeyDigestLength = 32

// NestedPool - a pool holding one collection per parent key
//
// each member key is stored under:
//   prefix ++ SHA3-256(prefix ++ parent) ++ member
// hashing the parent gives every collection a fixed length namespace so
// that variable length parents cannot collide, and including the pool
// prefix in the hash keeps the same parent separate across pools
type NestedPool struct {
	pool *PoolHandle
}

// Handle - the underlying pool for use with a transaction
func (p *NestedPool) Handle() *PoolHandle {
	return p.pool
}

func (p *NestedPool) digest(parent []byte) [subKeyDigestLength]byte {
	data := make([]byte, 0, len(parent)+1)
	data = append(data, p.pool.prefix)
	data = append(data, parent...)
	return sha3.Sum256(data)
}

// SubKey - derive the full key of one member of a parent's collection
func (p *NestedPool) SubKey(parent []byte, member []byte) []byte {
	digest := p.digest(parent)
	key := make([]byte, 0, subKeyDigestLength+len(member))
	key = append(key, digest[:]...)
	key = append(key, member...)
	return key
}

// Get - read one member value, nil if not present
func (p *NestedPool) Get(parent []byte, member []byte) []byte {
	return p.pool.Get(p.SubKey(parent, member))
}

// Has - check if one member is present
func (p *NestedPool) Has(parent []byte, member []byte) bool {
	return p.pool.Has(p.SubKey(parent, member))
}

// Range - cursor over all members of one parent's collection
func (p *NestedPool) Range(parent []byte) *FetchCursor {
	digest := p.digest(parent)

	start := make([]byte, 0, subKeyDigestLength+1)
	start = append(start, p.pool.prefix)
	start = append(start, digest[:]...)

	// limit is the digest incremented by one, falling back to the pool
	// limit in the impossible all-ones case
	limit := p.pool.limit
	carry := true
	incremented := make([]byte, subKeyDigestLength+1)
	incremented[0] = p.pool.prefix
	copy(incremented[1:], digest[:])
	for i := subKeyDigestLength; i > 0 && carry; i -= 1 {
		incremented[i] += 1
		carry = 0 == incremented[i]
	}
	if !carry {
		limit = incremented
	}

	return &FetchCursor{
		pool: p.pool,
		maxRange: util.Range{
			Start: start,
			Limit: limit,
		},
	}
}

// Map - run a function over all members of one parent's collection
//
// the member key is passed with the namespace digest already stripped
func (p *NestedPool) Map(parent []byte, f func(member []byte, value []byte) error) error {
	return p.Range(parent).Map(func(key []byte, value []byte) error {
		return f(key[subKeyDigestLength:], value)
	})
}
