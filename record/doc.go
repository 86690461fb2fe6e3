// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the persistent record types and their byte level
// pack/unpack routines
//
// all records are stored in a compact format:
//   strings  = varint length ++ utf-8 bytes
//   numbers  = varint
// so that the stored size, which the caller pays for, tracks the
// actual content size
package record
