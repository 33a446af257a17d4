package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/niksmo/shopcart/config"
	"github.com/niksmo/shopcart/internal/app"
	"github.com/niksmo/shopcart/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext(context.Background())
	defer closeApp()

	cfg := config.Load()
	if cfg.LogLevel <= slog.LevelDebug {
		cfg.Print(os.Stderr)
	}

	shopcart := app.New(sigCtx, cfg, app.Streams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	})

	shopcart.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	shopcart.Close(ctx)
}
