// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - accept client connections for the JSON RPC
// service over TLS
package listeners

// Listener - a started network service
type Listener interface {
	Serve() error
}
