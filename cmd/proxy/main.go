package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/ayankousky/market-data-proxy/internal/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	app, err := bootstrap.NewBuilder().
		WithOptionsFetch(args).
		WithLogger().
		WithTelemetry().
		WithProviders().
		WithNotifiers(ctx).
		WithMarket().
		WithStream().
		WithServer().
		Build()
	if err != nil {
		return fmt.Errorf("building app: %w", err)
	}

	return app.Start(ctx)
}
