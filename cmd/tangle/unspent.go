package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tanglekit/tangle-client/pkg/client"
)

var unspent = cli.Command{
	Name:  "unspent",
	Usage: "find the first unused address of a seed's wallet chain",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "seed",
			Usage: "seed in hex format",
		},
		&cli.StringFlag{
			Name:  "path",
			Usage: "wallet chain derivation path, eg. m/0'/0'",
		},
		&cli.Uint64Flag{
			Name:  "index",
			Usage: "derivation index the scan starts at",
		},
	},
	Action: unspentAction,
}

func unspentAction(ctx *cli.Context) error {
	c, cleanup, err := getClient()
	if err != nil {
		return err
	}
	defer cleanup()

	seed, err := hex.DecodeString(ctx.String("seed"))
	if err != nil {
		return fmt.Errorf("seed must be in hex format: %s", err)
	}

	address, index, err := c.GetUnspentAddress(seed, client.UnspentAddressOpts{
		Path:       ctx.String("path"),
		StartIndex: uint32(ctx.Uint64("index")),
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s\t%d\n", address.Hex(), index)
	return nil
}
