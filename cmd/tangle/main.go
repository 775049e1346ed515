package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/tanglekit/tangle-client/config"
	"github.com/tanglekit/tangle-client/pkg/client"
	"github.com/tanglekit/tangle-client/pkg/stats"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "tangle CLI"
	app.Usage = "Command line interface for tangle nodes"
	app.Commands = append(
		app.Commands,
		&info,
		&health,
		&tips,
		&nodes,
		&balance,
		&unspent,
		&send,
		&retry,
		&promote,
		&reattach,
		&genseed,
	)

	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	if interval := config.GetDuration(config.StatsIntervalKey); interval > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		stats.EnableRuntimeStatistics(ctx, interval)
	}

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

// getClient returns a client built from env config along with a cleanup
// function stopping its background synchronizer.
func getClient() (*client.Client, func(), error) {
	c, err := config.GetClient()
	if err != nil {
		return nil, nil, err
	}
	return c, c.Close, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[tangle] %v\n", err)
	os.Exit(1)
}
