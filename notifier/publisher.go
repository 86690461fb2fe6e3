// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notifier

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/ufundraisers/fundraiserd/messagebus"
)

// topics for the subscriber side
const (
	topicApproval = "approval"
	topicTransfer = "transfer"
	topicPayout   = "payout"
)

type publisher struct {
	log    *logger.L
	socket *zmq.Socket
}

// bind the PUB socket to all configured addresses
func (pub *publisher) initialise(addresses []string) error {
	pub.log = logger.New("publisher")

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return err
	}

	_ = socket.SetLinger(0)

	for _, address := range addresses {
		err = socket.Bind(address)
		if nil != err {
			pub.log.Errorf("bind: %q  error: %s", address, err)
			socket.Close()
			return err
		}
		pub.log.Infof("publish on: %q", address)
	}

	pub.socket = socket
	return nil
}

// wait for message queue data or shutdown
func (pub *publisher) Run(args interface{}, shutdown <-chan struct{}) {

	log := pub.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case message := <-messagebus.Chan():
			pub.process(message)
		}
	}

	log.Info("shutting down…")
	pub.socket.Close()
	pub.socket = nil
}

// publish one queued item
func (pub *publisher) process(message messagebus.Message) {
	log := pub.log

	topic := ""
	switch message.Item.(type) {
	case messagebus.ApprovalNotice:
		topic = topicApproval
	case messagebus.TransferEvent:
		topic = topicTransfer
	case messagebus.Payout:
		topic = topicPayout
	default:
		log.Errorf("unsupported item: %+v", message.Item)
		return
	}

	payload, err := json.Marshal(message.Item)
	if nil != err {
		log.Errorf("marshal: %+v  error: %s", message.Item, err)
		return
	}

	log.Debugf("publish: %s to: %q", topic, message.Target)

	_, err = pub.socket.SendMessage(topic, string(message.Target), payload)
	if nil != err {
		log.Errorf("send: %s  error: %s", topic, err)
	}
}
