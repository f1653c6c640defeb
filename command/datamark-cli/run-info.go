// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

// infoIdentity - display identity without the encrypted private data
type infoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
}

type infoReply struct {
	DefaultIdentity string         `json:"default_identity"`
	TestNet         bool           `json:"testnet"`
	Connections     []string       `json:"connections"`
	Identities      []infoIdentity `json:"identities"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info := infoReply{
		DefaultIdentity: m.config.DefaultIdentity,
		TestNet:         m.config.TestNet,
		Connections:     m.config.Connections,
		Identities:      make([]infoIdentity, 0, len(m.config.Identities)),
	}

	for name, id := range m.config.Identities {
		info.Identities = append(info.Identities, infoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
		})
	}

	printJson(m.w, info)
	return nil
}

func runNodeInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
