package main

import (
	"context"

	"github.com/dpetrovs/registro/internal/client/cli"
	"github.com/dpetrovs/registro/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(ctx)
}
