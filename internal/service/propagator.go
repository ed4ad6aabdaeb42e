package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-photo-feed/internal/metrics"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/snapshot"
	"github.com/pribylovaa/go-photo-feed/pkg/log"
)

// PropagationResult — итог одного fan-out.
type PropagationResult struct {
	Skipped  bool
	Fields   []string
	Posts    int64
	Comments int64
}

// PropagateProfile переписывает снапшот автора во всех его постах
// (и комментариях, если включено Propagation.IncludeComments).
//
// Если ни одно поле allow-list'а не изменилось — хранилище не трогается.
// Ретраев внутри нет: ошибка возвращается вызывающему (диспетчеру).
func (s *Service) PropagateProfile(ctx context.Context, before, after models.User) (PropagationResult, error) {
	const op = "service/propagator/PropagateProfile"

	lg := log.From(ctx).With("op", op, "user_id", after.ID)

	if strings.TrimSpace(after.ID) == "" {
		lg.Warn("invalid argument: empty user id")
		return PropagationResult{}, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	fields := snapshot.ChangedFields(before, after)
	if len(fields) == 0 {
		lg.Debug("no snapshot fields changed")
		s.metrics.Propagation(metrics.ResultSkipped, 0)
		return PropagationResult{Skipped: true}, nil
	}

	start := time.Now()
	res := PropagationResult{Fields: fields}
	snap := snapshot.Project(after)

	batch, withComments := 0, false
	if s.cfg != nil {
		batch = s.cfg.Propagation.BatchSize
		withComments = s.cfg.Propagation.IncludeComments
	}

	n, err := s.storage.RewritePostSnapshots(ctx, after.ID, snap, batch)
	res.Posts = n
	s.metrics.Propagated("posts", n)
	if err != nil {
		s.metrics.Propagation(metrics.ResultError, time.Since(start))
		return res, mapStorageErr(lg, op, err)
	}

	if withComments {
		n, err = s.storage.RewriteCommentSnapshots(ctx, after.ID, snap, batch)
		res.Comments = n
		s.metrics.Propagated("comments", n)
		if err != nil {
			s.metrics.Propagation(metrics.ResultError, time.Since(start))
			return res, mapStorageErr(lg, op, err)
		}
	}

	s.metrics.Propagation(metrics.ResultOK, time.Since(start))
	lg.Info("profile propagated", "fields", fields, "posts", res.Posts, "comments", res.Comments)

	return res, nil
}

// HandleUserUpdate — обработчик события диспетчера триггеров.
func (s *Service) HandleUserUpdate(ctx context.Context, before, after models.User) error {
	_, err := s.PropagateProfile(ctx, before, after)
	return err
}
