package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/niksmo/shopcart/config"
	"github.com/niksmo/shopcart/internal/adapter/console"
	"github.com/niksmo/shopcart/internal/adapter/receiptlog"
	"github.com/niksmo/shopcart/internal/core/port"
	"github.com/niksmo/shopcart/internal/core/service"
)

// Streams are the console the app talks to.
type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

type coreService struct {
	catalog  *service.CatalogService
	cart     *service.CartService
	checkout *service.CheckoutService
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	streams    Streams
	receiptLog *receiptlog.ReceiptLog
	service    coreService
	shell      *console.Shell
}

func New(ctx context.Context, cfg config.Config, streams Streams) *App {
	app := &App{ctx: ctx, cfg: cfg, streams: streams}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(app.streams.ErrOut, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	if app.cfg.ReceiptLog == "" {
		return
	}

	l, err := receiptlog.Open(app.cfg.ReceiptLog)
	if err != nil {
		app.fallDown(op, err)
	}
	app.receiptLog = l
}

func (app *App) initCoreService() {
	const op = "App.initCoreService"

	catalog := service.NewCatalogService()
	for _, p := range app.cfg.Catalog {
		_, err := catalog.AddProduct(
			app.ctx, p.Title, p.Description, strconv.Itoa(p.Price),
		)
		if err != nil {
			app.fallDown(op, fmt.Errorf("seed product %q: %w", p.Title, err))
		}
	}

	var sink port.ReceiptSink
	if app.receiptLog != nil {
		sink = app.receiptLog
	}

	cart := service.NewCartService(catalog)

	app.service.catalog = catalog
	app.service.cart = cart
	app.service.checkout = service.NewCheckoutService(cart, sink)
}

func (app *App) initInboundAdapters() {
	prompter := console.NewLinePrompter(app.streams.In, app.streams.Out)
	app.shell = console.NewShell(
		prompter,
		app.streams.Out,
		app.streams.ErrOut,
		app.service.catalog,
		app.service.cart,
		app.service.checkout,
	)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.shell.Run(app.ctx, stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	if app.receiptLog != nil {
		app.receiptLog.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
