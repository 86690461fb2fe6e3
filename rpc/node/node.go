// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/ufundraisers/fundraiserd/counter"
	"github.com/ufundraisers/fundraiserd/fundraiser"
	"github.com/ufundraisers/fundraiserd/messagebus"
	"github.com/ufundraisers/fundraiserd/mode"
	"github.com/ufundraisers/fundraiserd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	start   time.Time
	version string
	counter *counter.Counter
}

// New - create the RPC instance
func New(log *logger.L, start time.Time, version string, connectionCounter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		start:   start,
		version: version,
		counter: connectionCounter,
	}
}

// InfoArguments - empty arguments for info RPC
type InfoArguments struct{}

// InfoReply - result from info RPC
type InfoReply struct {
	Chain       string `json:"chain"`
	Mode        string `json:"mode"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	Fundraisers uint64 `json:"fundraisers,string"`
	Connections uint64 `json:"connections,string"`
	Dropped     uint64 `json:"dropped,string"`
}

// Info - return status of the node
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Version = node.version
	reply.Uptime = time.Since(node.start).String()
	reply.Fundraisers = fundraiser.Counter()
	reply.Connections = node.counter.Uint64()
	reply.Dropped = messagebus.DropCount()
	return nil
}
