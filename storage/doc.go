// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++            = concatenation of byte data
// 3. fundraiser id = big endian uint64 (8 bytes)
// 4. token id      = decimal string form of the paired fundraiser id
// 5. owner         = account id bytes (variable length)
// 6. sub(p)        = SHA3-256(prefix ++ p), fixed length digest used to
//                    give each nested collection its own collision-free
//                    namespace
//
// Fundraisers:
//
//   F ++ fundraiser id         - fundraiser entity
//                                data: packed fundraiser record
//
// Tokens:
//
//   T ++ token id              - token entity
//                                data: packed token record (owner ++ approvals)
//   M ++ token id              - token metadata
//                                data: packed metadata record
//
// Counters:
//
//   N ++ name                  - next id allocation state
//                                data: count (big endian uint64)
//
// Owner index:
//
//   P ++ sub(owner) ++ fundraiser id   - set of owned fundraisers
//                                        data: empty
//   Q ++ sub(owner) ++ token id        - set of owned tokens
//                                        data: empty
//
// Donation ledger:
//
//   D ++ sub(fundraiser id) ++ donor   - donation sequence of one donor
//                                        data: varint amounts in arrival order
//
// Testing:
//   Z ++ key                   - testing data
package storage
