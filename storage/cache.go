// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

const (
	cacheExpiration      = 5 * time.Minute
	cacheCleanupInterval = 10 * time.Minute
)

type cacheData struct {
	op    dbOperation
	value []byte
}

// Cache - write-through cache in front of the current batch
//
// reads inside a transaction see the writes of that transaction before
// they reach the database
type Cache interface {
	Get(key string) (*cacheData, bool)
	Set(op dbOperation, key string, value []byte)
	Clear()
}

type cache struct {
	store *gocache.Cache
}

func newCache() Cache {
	return &cache{
		store: gocache.New(cacheExpiration, cacheCleanupInterval),
	}
}

func (c *cache) Get(key string) (*cacheData, bool) {
	obj, found := c.store.Get(key)
	if !found {
		return nil, false
	}
	data := obj.(cacheData)
	return &data, true
}

func (c *cache) Set(op dbOperation, key string, value []byte) {
	c.store.Set(key, cacheData{op: op, value: value}, gocache.DefaultExpiration)
}

func (c *cache) Clear() {
	c.store.Flush()
}
