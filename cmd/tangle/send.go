package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tanglekit/tangle-client/pkg/client"
)

var send = cli.Command{
	Name:  "send",
	Usage: "post an indexation message",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "index",
			Usage: "indexation key of the message",
		},
		&cli.StringFlag{
			Name:  "data",
			Usage: "optional data attached under the index",
		},
	},
	Action: sendAction,
}

func sendAction(ctx *cli.Context) error {
	c, cleanup, err := getClient()
	if err != nil {
		return err
	}
	defer cleanup()

	messageID, _, err := c.Send(client.SendOpts{
		Index: ctx.String("index"),
		Data:  []byte(ctx.String("data")),
	})
	if err != nil {
		return err
	}

	fmt.Println(messageID.Hex())
	return nil
}
