package repokit

import (
	"context"
	"fmt"
	"time"
)

// Guarder pings every backend it holds
type Guarder interface {
	Guard(context.Context) error
}

// MustGuard panics when g reports a dead backend. A ctx without a deadline gets 5s
func MustGuard(ctx context.Context, g Guarder) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := g.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
