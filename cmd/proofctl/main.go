// Command proofctl runs proof-of-creation operations against a configured
// proof core and prints the result as JSON.
package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	c := newCLI(logger, os.Stdin, os.Stdout)
	if _, err := c.parser().Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Error("proofctl failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
