package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tanglekit/tangle-client/pkg/nodeapi"
)

var retry = cli.Command{
	Name:      "retry",
	Usage:     "promote or reattach an unconfirmed message, whichever the node suggests",
	ArgsUsage: "<message id>",
	Action:    retryAction,
}

var promote = cli.Command{
	Name:      "promote",
	Usage:     "promote an unconfirmed message",
	ArgsUsage: "<message id>",
	Action:    promoteAction,
}

var reattach = cli.Command{
	Name:      "reattach",
	Usage:     "reattach an unconfirmed message under fresh parents",
	ArgsUsage: "<message id>",
	Action:    reattachAction,
}

func retryAction(ctx *cli.Context) error {
	return lifecycleAction(ctx, "retry")
}

func promoteAction(ctx *cli.Context) error {
	return lifecycleAction(ctx, "promote")
}

func reattachAction(ctx *cli.Context) error {
	return lifecycleAction(ctx, "reattach")
}

func lifecycleAction(ctx *cli.Context, action string) error {
	id, err := nodeapi.MessageIDFromHex(ctx.Args().First())
	if err != nil {
		return err
	}

	c, cleanup, err := getClient()
	if err != nil {
		return err
	}
	defer cleanup()

	var newID nodeapi.MessageID
	switch action {
	case "promote":
		newID, _, err = c.Promote(id)
	case "reattach":
		newID, _, err = c.Reattach(id)
	default:
		newID, _, err = c.Retry(id)
	}
	if err != nil {
		return err
	}

	fmt.Println(newID.Hex())
	return nil
}
