// Package trigger доставляет события изменения пользователей обработчику
// fan-out: читает change stream коллекции users, повторяет доставку с
// экспоненциальной паузой и фиксирует resume token после каждого события.
package trigger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pribylovaa/go-photo-feed/internal/config"
	"github.com/pribylovaa/go-photo-feed/internal/metrics"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"github.com/pribylovaa/go-photo-feed/pkg/log"
)

// Handler получает пару (before, after) для каждого обновления пользователя.
// before пуст, если pre-image недоступен.
type Handler interface {
	HandleUserUpdate(ctx context.Context, before, after models.User) error
}

// Dispatcher — потребитель change stream.
type Dispatcher struct {
	watcher storage.UserWatcher
	handler Handler
	cfg     config.PropagationConfig
	metrics *metrics.Collector
}

// New создаёт диспетчер. m может быть nil.
func New(w storage.UserWatcher, h Handler, cfg config.PropagationConfig, m *metrics.Collector) *Dispatcher {
	return &Dispatcher{
		watcher: w,
		handler: h,
		cfg:     cfg,
		metrics: m,
	}
}

// Run обрабатывает события до отмены ctx.
//
// Особенности:
//   - старт с сохранённого чекпойнта (или с текущего момента, если его нет);
//   - ошибка потока — поток переоткрывается после паузы с последнего токена;
//   - событие, не доставленное за MaxRetries повторов, логируется и всё равно
//     фиксируется: следующая запись профиля переносит полную проекцию.
func (d *Dispatcher) Run(ctx context.Context) error {
	const op = "trigger/Run"

	lg := log.From(ctx)

	token, err := d.watcher.LoadCheckpoint(ctx, d.cfg.CheckpointName)
	if err != nil {
		return fmt.Errorf("%s: load checkpoint: %w", op, err)
	}

	lg.Info("dispatcher_start",
		slog.String("op", op),
		slog.String("checkpoint", d.cfg.CheckpointName),
		slog.Bool("resume", token != ""),
	)

	reopen := d.newBackOff()

	for {
		stream, err := d.watcher.WatchUsers(ctx, token)
		if err != nil {
			if ctx.Err() != nil {
				break
			}

			lg.Warn("watch_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)

			if !sleep(ctx, reopen.NextBackOff()) {
				break
			}
			continue
		}

		reopen.Reset()

		token, err = d.consume(ctx, stream, token)
		_ = stream.Close(context.WithoutCancel(ctx))

		if ctx.Err() != nil {
			break
		}

		lg.Warn("stream_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		if !sleep(ctx, reopen.NextBackOff()) {
			break
		}
	}

	lg.Info("dispatcher_stop", slog.String("op", op))
	return nil
}

// consume читает поток до ошибки и возвращает токен последнего обработанного события.
func (d *Dispatcher) consume(ctx context.Context, stream storage.UserChangeStream, token string) (string, error) {
	const op = "trigger/consume"

	lg := log.From(ctx)

	for {
		ch, err := stream.Next(ctx)
		if err != nil {
			return token, err
		}

		if !d.deliver(ctx, ch) {
			return token, ctx.Err()
		}

		token = ch.Token
		if err := d.watcher.SaveCheckpoint(ctx, d.cfg.CheckpointName, token); err != nil {
			if ctx.Err() != nil {
				return token, ctx.Err()
			}

			// Токен остаётся в памяти: при переоткрытии потока продолжим с него.
			lg.Error("checkpoint_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}
}

// deliver доставляет событие с повторами. false — ctx отменён до завершения
// доставки, событие не должно фиксироваться.
func (d *Dispatcher) deliver(ctx context.Context, ch *storage.UserChange) bool {
	const op = "trigger/deliver"

	lg := log.From(ctx).With(
		slog.String("op", op),
		slog.String("user_id", ch.UserID),
	)

	// Документ удалён до чтения post-image: обновлять нечего.
	if ch.After.ID == "" {
		lg.Warn("event_without_document")
		d.metrics.TriggerEvent(metrics.ResultSkipped)
		return true
	}

	before := ch.Before
	if !ch.HasPrior {
		before = models.User{}
	}

	ectx := log.With(ctx, slog.String("user_id", ch.UserID))
	b := backoff.WithContext(backoff.WithMaxRetries(d.newBackOff(), d.cfg.MaxRetries), ctx)

	err := backoff.RetryNotify(
		func() error { return d.handler.HandleUserUpdate(ectx, before, ch.After) },
		b,
		func(err error, wait time.Duration) {
			d.metrics.TriggerEvent(metrics.ResultRetried)
			lg.Warn("delivery_retry",
				slog.String("err", err.Error()),
				slog.Duration("wait", wait),
			)
		},
	)

	switch {
	case err == nil:
		d.metrics.TriggerEvent(metrics.ResultOK)
		return true
	case ctx.Err() != nil:
		return false
	default:
		d.metrics.TriggerEvent(metrics.ResultFailed)
		lg.Error("delivery_failed",
			slog.String("err", err.Error()),
			slog.Uint64("max_retries", d.cfg.MaxRetries),
		)
		return true
	}
}

func (d *Dispatcher) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.cfg.InitialBackoff
	b.MaxInterval = d.cfg.MaxBackoff
	b.MaxElapsedTime = 0
	b.Reset()

	return b
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d == backoff.Stop {
		return false
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
