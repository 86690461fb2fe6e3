// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - batch operations on any pool, committed as one write
type Transaction interface {
	Abort()
	Begin()
	Commit() error
	Delete(pool *PoolHandle, key []byte)
	Get(pool *PoolHandle, key []byte) []byte
	GetN(pool *PoolHandle, key []byte) (uint64, bool)
	Has(pool *PoolHandle, key []byte) bool
	Put(pool *PoolHandle, key []byte, value []byte)
	PutN(pool *PoolHandle, key []byte, value uint64)
}

type transaction struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &transaction{
		access: access,
	}
}

func (t *transaction) Begin() {
	t.access.Begin()
}

func (t *transaction) Commit() error {
	return t.access.Commit()
}

func (t *transaction) Abort() {
	t.access.Abort()
}

func (t *transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	pool.put(key, value)
}

func (t *transaction) PutN(pool *PoolHandle, key []byte, value uint64) {
	pool.putN(key, value)
}

func (t *transaction) Delete(pool *PoolHandle, key []byte) {
	pool.remove(key)
}

func (t *transaction) Get(pool *PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

func (t *transaction) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	return pool.GetN(key)
}

func (t *transaction) Has(pool *PoolHandle, key []byte) bool {
	return pool.Has(key)
}
