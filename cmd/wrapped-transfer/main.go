package main

import (
	"fmt"
	"os"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/client/cli"
)

func main() {
	if err := cli.GetCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
