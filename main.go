package main

import (
	"fmt"
	"os"

	"github.com/go-i2p/go-base32/lib/cli"
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

func main() {
	log.Debug("starting go-base32")
	if err := cli.Execute(); err != nil {
		log.WithError(err).Debug("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
