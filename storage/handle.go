// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// PoolHandle - the structure of a pool handle
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
}

// Element - a key/value pair from a pool
type Element struct {
	Key   []byte
	Value []byte
}

// prefix the key with the pool identifier
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

func (p *PoolHandle) put(key []byte, value []byte) {
	p.dataAccess.Put(p.prefixKey(key), value)
}

func (p *PoolHandle) putN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.put(key, buffer)
}

func (p *PoolHandle) remove(key []byte) {
	p.dataAccess.Delete(p.prefixKey(key))
}

// Get - read a value for a given key
//
// returns nil if the key does not exist
func (p *PoolHandle) Get(key []byte) []byte {
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	if nil != err {
		logger.Panicf("pool.Get('%c%x') error: %s", p.prefix, key, err)
	}
	return value
}

// GetN - read a key and decode as an unsigned 64-bit big endian value
//
// second return is false if the key does not exist; a value of the
// wrong length is a data corruption and panics
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if 8 != len(buffer) {
		logger.Panicf("pool.GetN('%c%x') invalid length: %d", p.prefix, key, len(buffer))
	}
	return binary.BigEndian.Uint64(buffer), true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	value, err := p.dataAccess.Has(p.prefixKey(key))
	if nil != err {
		logger.Panicf("pool.Has('%c%x') error: %s", p.prefix, key, err)
	}
	return value
}

// LastElement - get the highest key/value pair in the pool
func (p *PoolHandle) LastElement() (Element, bool) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}

	iter := p.dataAccess.Iterator(&maxRange)
	defer iter.Release()

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}

	if err := iter.Error(); nil != err {
		logger.Panicf("pool.LastElement('%c') error: %s", p.prefix, err)
	}

	return result, found
}
