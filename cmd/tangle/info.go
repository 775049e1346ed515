package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var info = cli.Command{
	Name:   "info",
	Usage:  "print the infos of a healthy node",
	Action: infoAction,
}

var health = cli.Command{
	Name:   "health",
	Usage:  "check the health of a node in the pool",
	Action: healthAction,
}

var nodes = cli.Command{
	Name:   "nodes",
	Usage:  "list the currently healthy nodes",
	Action: nodesAction,
}

func infoAction(ctx *cli.Context) error {
	client, cleanup, err := getClient()
	if err != nil {
		return err
	}
	defer cleanup()

	nodeInfo, err := client.GetInfo()
	if err != nil {
		return err
	}
	networkID, err := client.GetNetworkID()
	if err != nil {
		return err
	}

	fmt.Printf("name:\t\t%s\n", nodeInfo.Name)
	fmt.Printf("version:\t%s\n", nodeInfo.Version)
	fmt.Printf("network:\t%s (%d)\n", nodeInfo.NetworkID, networkID)
	fmt.Printf("milestone:\t%d\n", nodeInfo.LatestMilestoneIndex)
	return nil
}

func healthAction(ctx *cli.Context) error {
	client, cleanup, err := getClient()
	if err != nil {
		return err
	}
	defer cleanup()

	healthy, err := client.GetHealth()
	if err != nil {
		return err
	}
	fmt.Println(healthy)
	return nil
}

func nodesAction(ctx *cli.Context) error {
	client, cleanup, err := getClient()
	if err != nil {
		return err
	}
	defer cleanup()

	for _, node := range client.ListNodes() {
		fmt.Println(node)
	}
	return nil
}
