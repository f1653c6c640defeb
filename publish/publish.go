// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast ledger notifications over ZeroMQ
//
// every messagebus record is sent as a two frame message:
// frame 1: topic e.g. "assets.created"
// frame 2: JSON encoded payload
package publish

import (
	"encoding/json"
	"sync"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/background"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/messagebus"
)

// Configuration - for the publisher
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

// globals for background process
type publishData struct {
	sync.RWMutex

	log    *logger.L
	socket *zmq.Socket

	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - setup the publisher
//
// publishing is disabled when no broadcast addresses are configured
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("disabled: no broadcast addresses")
		globalData.initialised = true
		return nil
	}

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return err
	}

	socket.SetLinger(0)

	for _, address := range configuration.Broadcast {
		globalData.log.Infof("publish on: %s", address)
		err = socket.Bind(address)
		if nil != err {
			socket.Close()
			return err
		}
	}

	globalData.socket = socket

	// start background processes
	globalData.log.Info("start background…")
	processes := background.Processes{
		&globalData,
	}
	globalData.background = background.Start(processes, nil)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop the publisher
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	if nil != globalData.socket {
		globalData.socket.Close()
		globalData.socket = nil
	}

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// the broadcast loop
func (state *publishData) Run(args interface{}, shutdown <-chan struct{}) {

	log := state.log

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case message := <-messagebus.Chan():
			topic := topicFor(message)
			payload, err := json.Marshal(message.Item)
			if nil != err {
				log.Errorf("marshal failed: %s  item: %v", err, message.Item)
				continue loop
			}

			log.Debugf("publish: %s %s", topic, payload)

			state.RLock()
			socket := state.socket
			if nil != socket {
				_, err = socket.SendMessage(topic, payload)
				if nil != err {
					log.Errorf("send failed: %s", err)
				}
			}
			state.RUnlock()
		}
	}
}

// derive the broadcast topic from the record type
func topicFor(message messagebus.Message) string {
	switch message.Item.(type) {
	case messagebus.AssetCreated:
		return "assets.created"
	case messagebus.AssetListed:
		return "assets.listed"
	case messagebus.SubscriptionCreated:
		return "subscriptions.created"
	default:
		return message.From
	}
}
