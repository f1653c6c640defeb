// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/datamarkd/command/datamark-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "datamark-cli"
	// app.Usage = ""
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to datamark `NETWORK` [datamark|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise datamark-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*datamarkd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: " using existing privateKey `KEY`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file, set it as default",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: " using existing privateKey `KEY`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive-only base58 `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "grant",
			Usage:     "grant a role to an account (admin only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "role, r",
					Value: "",
					Usage: "*role to grant `[admin|data-provider|consumer]`",
				},
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: "*identity name or account to receive the role `ACCOUNT`",
				},
			},
			Action: runGrant,
		},
		{
			Name:      "revoke",
			Usage:     "revoke a role from an account (admin only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "role, r",
					Value: "",
					Usage: "*role to revoke `[admin|data-provider|consumer]`",
				},
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: "*identity name or account losing the role `ACCOUNT`",
				},
			},
			Action: runRevoke,
		},
		{
			Name:      "mint",
			Usage:     "register a new data asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "reference, r",
					Value: "",
					Usage: "*external data reference `URI`",
				},
				cli.StringFlag{
					Name:  "category, c",
					Value: "",
					Usage: "*access category `[public|private|confidential]`",
				},
				cli.Uint64Flag{
					Name:  "payment, p",
					Value: 0,
					Usage: "*payment amount offered for the minting fee `AMOUNT`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "list",
			Usage:     "post or update the sale price of an owned asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Value: 0,
					Usage: "*asset id to list `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: "*sale price `AMOUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Value: 0,
					Usage: "*asset id to buy `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "payment, p",
					Value: 0,
					Usage: "*payment amount offered `AMOUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "subscribe",
			Usage:     "open a time-bound subscription to an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Value: 0,
					Usage: "*asset id to subscribe to `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "payment, p",
					Value: 0,
					Usage: "*payment amount offered for the monthly fee `AMOUNT`",
				},
			},
			Action: runSubscribe,
		},
		{
			Name:      "access",
			Usage:     "read an asset's data reference under a live subscription",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Value: 0,
					Usage: "*asset id to access `NUMBER`",
				},
			},
			Action: runAccess,
		},
		{
			Name:      "asset",
			Usage:     "display the public metadata of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Value: 0,
					Usage: "*asset id to display `NUMBER`",
				},
			},
			Action: runAsset,
		},
		{
			Name:      "balance",
			Usage:     "display the credited ledger balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name `ACCOUNT` default is global identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "info",
			Usage:  "display datamark-cli status",
			Action: runInfo,
		},
		{
			Name:   "nodeInfo",
			Usage:  "display datamarkd status",
			Action: runNodeInfo,
		},
		{
			Name:  "version",
			Usage: "display datamark-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "datamark", "live":
			network = "datamark"
		case "testing", "test":
			network = "testing"
		case "local", "regression":
			network = "local"
		default:
			return fmt.Errorf("network: %q can only be datamark/testing/local", network)
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: network != "datamark",
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configData, err := configuration.Load(file)
			if nil != err {
				return err
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  configData,
				testnet: configData.TestNet,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
