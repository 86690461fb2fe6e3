// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ufundraisers/fundraiserd/storage"
)

func TestNestedSubKeySeparatesParents(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.Donations

	// ambiguous without hashing: "ab"+"c" vs "a"+"bc"
	k1 := pool.SubKey([]byte("ab"), []byte("c"))
	k2 := pool.SubKey([]byte("a"), []byte("bc"))
	assert.NotEqual(t, k1, k2, "parent and member must not blend")
}

func TestNestedSubKeySeparatesPools(t *testing.T) {
	setup(t)
	defer teardown(t)

	parent := []byte("alice")
	member := []byte("1")

	k1 := storage.Pool.OwnerFundraisers.SubKey(parent, member)
	k2 := storage.Pool.OwnerTokens.SubKey(parent, member)
	assert.NotEqual(t, k1, k2, "same parent must differ across pools")
}

func TestNestedPutGetHas(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.OwnerTokens
	parent := []byte("alice")

	trx := storage.NewDBTransaction()
	trx.Put(pool.Handle(), pool.SubKey(parent, []byte("7")), []byte{})
	err := trx.Commit()
	assert.Nil(t, err, "commit error")

	assert.True(t, pool.Has(parent, []byte("7")), "missing member")
	assert.False(t, pool.Has(parent, []byte("8")), "unexpected member")
	assert.False(t, pool.Has([]byte("bob"), []byte("7")), "member leaked to other parent")
}

func TestNestedMapOnlyOwnParent(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.OwnerFundraisers

	trx := storage.NewDBTransaction()
	for _, m := range []string{"1", "2", "3"} {
		trx.Put(pool.Handle(), pool.SubKey([]byte("alice"), []byte(m)), []byte{})
	}
	trx.Put(pool.Handle(), pool.SubKey([]byte("bob"), []byte("9")), []byte{})
	err := trx.Commit()
	assert.Nil(t, err, "commit error")

	members := make([]string, 0, 3)
	err = pool.Map([]byte("alice"), func(member []byte, value []byte) error {
		members = append(members, string(member))
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, []string{"1", "2", "3"}, members, "wrong members")

	members = members[:0]
	err = pool.Map([]byte("carol"), func(member []byte, value []byte) error {
		members = append(members, string(member))
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, 0, len(members), "unexpected members")
}

func TestNestedRangeFetch(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.OwnerTokens
	parent := []byte("alice")

	trx := storage.NewDBTransaction()
	for _, m := range []string{"1", "2", "3", "4"} {
		trx.Put(pool.Handle(), pool.SubKey(parent, []byte(m)), []byte{})
	}
	err := trx.Commit()
	assert.Nil(t, err, "commit error")

	elements, err := pool.Range(parent).Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 2, len(elements), "wrong element count")
}
