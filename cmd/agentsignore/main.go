package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bethropolis/agentsignore/internal/app"
	"github.com/bethropolis/agentsignore/internal/config"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "agentsignore",
		Usage:     "List the files a scan would visit after applying .agentsignore rules",
		ArgsUsage: "[dir]",
		Version:   version,
		Flags:     config.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.FromCommand(cmd)
			if err != nil {
				return err
			}
			return app.New(cfg, os.Stdout, os.Stderr).Run(ctx)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
