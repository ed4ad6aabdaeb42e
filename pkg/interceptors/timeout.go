// interceptors — серверные gRPC-интерсепторы воркера propagator
// (health-сервер): таймаут, восстановление после паники, логирование.
package interceptors

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// WithTimeout навешивает таймаут d на контекст unary-вызова, если у него ещё нет дедлайна.
//   - d <= 0 — контекст не меняется;
//   - существующий дедлайн не переопределяется.
func WithTimeout(d time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, has := ctx.Deadline(); d <= 0 || has {
			return handler(ctx, req)
		}

		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return handler(ctx, req)
	}
}
