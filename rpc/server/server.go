// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/ufundraisers/fundraiserd/counter"
	fundraiserRPC "github.com/ufundraisers/fundraiserd/rpc/fundraiser"
	nodeRPC "github.com/ufundraisers/fundraiserd/rpc/node"
	tokenRPC "github.com/ufundraisers/fundraiserd/rpc/token"
)

// Create - make a new RPC server with all handlers registered
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(fundraiserRPC.New(log))
	_ = server.Register(tokenRPC.New(log))
	_ = server.Register(nodeRPC.New(log, start, version, rpcCount))

	return server
}
