package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/nsdoc/cmd/nsdoc/commands"
	"git.home.luguber.info/inful/nsdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/nsdoc/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("nsdoc"),
		kong.Description("Render a documentation model into a static HTML site."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	global := commands.NewGlobal(ctx)
	err := parser.Run(global, cli)
	cancel()

	if err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
