package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kailas-cloud/bonfire/internal/cli"
	"github.com/kailas-cloud/bonfire/internal/config"
)

func main() {
	if err := cli.NewRootCommand(config.GetEnv()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "bonfire:", err)
		os.Exit(1)
	}
}
