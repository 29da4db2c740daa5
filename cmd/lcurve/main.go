// cmd/lcurve/main.go
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/smith3v/lcurve/pkg/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
