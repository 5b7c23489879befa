// Command jsonez formats, checks and converts jsonez documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ZenToad/jsonez/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	streams := cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	if err := cli.Run(ctx, os.Exit, streams, os.Args[1:]...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
