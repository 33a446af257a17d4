package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// NotifyContext returns a copy of parent that is canceled on SIGINT,
// SIGTERM or SIGQUIT, or when the returned stop function is called.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}
