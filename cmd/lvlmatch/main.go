package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvlmatch/cmd/lvlmatch/cli"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and cancel the context so cooperative runs stop
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	cli.Execute(ctx)
}
