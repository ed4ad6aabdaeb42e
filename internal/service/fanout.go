package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// awaitAll запускает шаги конкурентно и дожидается всех, без отмены соседей
// при ошибке одного. errs[i] — результат steps[i].
func awaitAll(steps ...func() error) []error {
	errs := make([]error, len(steps))

	var g errgroup.Group
	for i, step := range steps {
		g.Go(func() error {
			errs[i] = step()
			return nil
		})
	}
	_ = g.Wait()

	return errs
}

// detached — контекст для шагов, которые должны доработать даже после
// отмены запроса клиентом: значения (логгер) сохраняются, дедлайн свой.
func (s *Service) detached(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)

	d := time.Duration(0)
	if s.cfg != nil {
		d = s.cfg.Timeouts.Service
	}

	if d <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d)
}

func countFailed(errs []error) int {
	n := 0
	for _, err := range errs {
		if err != nil {
			n++
		}
	}

	return n
}
