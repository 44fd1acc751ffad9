package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a new goroutine so an HTTP handler can answer
// before the work is done. The handler context keeps the values of ctx (the
// request-scoped logger included) but is not cancelled with it. The returned
// channel is closed once the handler has returned or panicked.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) <-chan struct{} {
	bgCtx := context.WithoutCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(bgCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(bgCtx); err != nil {
			ctxlog.From(bgCtx).Error("Error in async handler", "error", err)
		}
	}()

	return done
}
