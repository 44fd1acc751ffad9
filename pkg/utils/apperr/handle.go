package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an error that ends a command
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	ctxlog.From(ctx).Error("Application error", "error", err)
}
