// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - one-way outbound message queue
//
// queues approval notices, transfer events and payouts for delivery to
// external parties; the engine only ever enqueues and never waits for
// delivery, so no state transition can depend on a remote party
package messagebus
