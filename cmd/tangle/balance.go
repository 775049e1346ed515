package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tanglekit/tangle-client/pkg/client"
	"github.com/tanglekit/tangle-client/pkg/mathutil"
)

var balance = cli.Command{
	Name:  "balance",
	Usage: "print the total balance of a seed's wallet chain, or of explicit addresses",
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
		&cli.StringSliceFlag{
			Name:  "address",
			Usage: "explicit address to query, repeatable",
		},
	},
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	c, cleanup, err := getClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if addresses := ctx.StringSlice("address"); len(addresses) > 0 {
		pairs, err := c.GetAddressBalances(addresses)
		if err != nil {
			return err
		}
		for _, pair := range pairs {
			fmt.Printf("%s\t%s Mi\n", pair.Address, formatAmount(pair.Balance))
		}
		return nil
	}

	seed, err := hex.DecodeString(ctx.String("seed"))
	if err != nil {
		return fmt.Errorf("seed must be in hex format: %s", err)
	}

	total, err := c.GetBalance(seed, client.BalanceOpts{
		Path:       ctx.String("path"),
		StartIndex: uint32(ctx.Uint64("index")),
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s Mi\n", formatAmount(total))
	return nil
}

func formatAmount(amount uint64) string {
	return mathutil.ToMi(amount).String()
}
