// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - combined batch and cache access to the database
type Access interface {
	Abort()
	Begin()
	Commit() error
	Delete(key []byte)
	DumpTx() []byte
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	InUse() bool
	Iterator(searchRange *ldb_util.Range) iterator.Iterator
	Put(key []byte, value []byte)
}

type dataAccess struct {
	sync.Mutex
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
	inUse bool
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &dataAccess{
		db:    db,
		batch: batch,
		cache: cache,
	}
}

// Begin - mark the batch as in use
//
// blocks when another transaction is already active
func (d *dataAccess) Begin() {
	d.Lock()
	d.inUse = true
}

func (d *dataAccess) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *dataAccess) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

func (d *dataAccess) Commit() error {
	err := d.db.Write(d.batch, nil)
	if nil != err {
		return err
	}
	d.finish()
	return nil
}

// DumpTx - batch operations of the pending transaction, for debugging
func (d *dataAccess) DumpTx() []byte {
	return d.batch.Dump()
}

func (d *dataAccess) Abort() {
	d.cache.Clear()
	d.finish()
}

func (d *dataAccess) finish() {
	d.batch.Reset()
	d.inUse = false
	d.Unlock()
}

func (d *dataAccess) InUse() bool {
	return d.inUse
}

// Get - search the cache first, then the database
func (d *dataAccess) Get(key []byte) ([]byte, error) {
	if data, found := d.cache.Get(string(key)); found {
		if dbDelete == data.op {
			return nil, leveldb.ErrNotFound
		}
		return data.value, nil
	}
	return d.db.Get(key, nil)
}

func (d *dataAccess) Has(key []byte) (bool, error) {
	if data, found := d.cache.Get(string(key)); found {
		return dbPut == data.op, nil
	}
	return d.db.Has(key, nil)
}

func (d *dataAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
