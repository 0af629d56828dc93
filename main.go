package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/haleyga/kraken-cryptoexchange-api/cli"
	"github.com/logrusorgru/aurora"
)

func main() {
	//
	// Register a kill signal handler with the operating system so that an in-flight request is
	// abandoned if the user interrupts us.
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", aurora.Bold(aurora.Red("Error:")), err)

		stop()
		os.Exit(1)
	}
}
