package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var tips = cli.Command{
	Name:   "tips",
	Usage:  "fetch a fresh pair of tips",
	Action: tipsAction,
}

func tipsAction(ctx *cli.Context) error {
	client, cleanup, err := getClient()
	if err != nil {
		return err
	}
	defer cleanup()

	pair, err := client.GetTips()
	if err != nil {
		return err
	}

	fmt.Println(pair.Tip1.Hex())
	fmt.Println(pair.Tip2.Hex())
	return nil
}
