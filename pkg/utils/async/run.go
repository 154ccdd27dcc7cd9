package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Run executes handler in a new goroutine and delivers its result on the returned channel.
// The handler gets a context that keeps the caller's logger but is not cancelled with it.
// A panic is recovered and delivered as an error carrying the stack.
func Run(ctx context.Context, handler func(ctx context.Context) error) <-chan error {
	newCtx := ctxlog.With(context.Background(), ctxlog.From(ctx))
	result := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("panic in background task", "recover", r)
				result <- goerr.New("panic in background task",
					goerr.V("recover", r),
					goerr.V("stack", string(debug.Stack())),
				)
			}
		}()

		result <- handler(newCtx)
	}()

	return result
}
