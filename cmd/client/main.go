package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/projectmanager/internal/client/cli"
	"github.com/dmitrijs2005/projectmanager/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	os.Exit(cli.Run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
