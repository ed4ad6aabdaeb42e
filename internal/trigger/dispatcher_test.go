package trigger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pribylovaa/go-photo-feed/internal/config"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"github.com/stretchr/testify/require"
)

var errStream = errors.New("stream broken")

// fakeStream отдаёт события из канала; закрытый канал — ошибка потока.
type fakeStream struct {
	events chan *storage.UserChange
}

func newFakeStream(evs ...*storage.UserChange) *fakeStream {
	ch := make(chan *storage.UserChange, len(evs))
	for _, ev := range evs {
		ch <- ev
	}
	return &fakeStream{events: ch}
}

// broken закрывает поток после уже положенных событий.
func (s *fakeStream) broken() *fakeStream {
	close(s.events)
	return s
}

func (s *fakeStream) Next(ctx context.Context) (*storage.UserChange, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case ev, ok := <-s.events:
		if !ok {
			return nil, errStream
		}
		return ev, nil
	}
}

func (s *fakeStream) Close(context.Context) error { return nil }

type fakeWatcher struct {
	mu         sync.Mutex
	streams    []*fakeStream
	resumed    []string
	checkpoint string
	saved      chan string
}

func newFakeWatcher(checkpoint string, streams ...*fakeStream) *fakeWatcher {
	return &fakeWatcher{
		streams:    streams,
		checkpoint: checkpoint,
		saved:      make(chan string, 32),
	}
}

func (w *fakeWatcher) WatchUsers(_ context.Context, token string) (storage.UserChangeStream, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.resumed = append(w.resumed, token)
	if len(w.streams) == 0 {
		return newFakeStream(), nil
	}

	s := w.streams[0]
	w.streams = w.streams[1:]
	return s, nil
}

func (w *fakeWatcher) LoadCheckpoint(context.Context, string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.checkpoint, nil
}

func (w *fakeWatcher) SaveCheckpoint(_ context.Context, _ string, token string) error {
	w.mu.Lock()
	w.checkpoint = token
	w.mu.Unlock()

	w.saved <- token
	return nil
}

func (w *fakeWatcher) resumeTokens() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.resumed...)
}

type call struct {
	before, after models.User
}

// fakeHandler падает первые failN вызовов.
type fakeHandler struct {
	mu    sync.Mutex
	failN int
	calls []call
}

func (h *fakeHandler) HandleUserUpdate(_ context.Context, before, after models.User) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.calls = append(h.calls, call{before, after})
	if len(h.calls) <= h.failN {
		return errors.New("handler failed")
	}
	return nil
}

func (h *fakeHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.calls)
}

func testCfg(maxRetries uint64) config.PropagationConfig {
	return config.PropagationConfig{
		MaxRetries:     maxRetries,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		CheckpointName: "cp",
	}
}

func change(token, id, beforeName, afterName string) *storage.UserChange {
	return &storage.UserChange{
		Token:    token,
		UserID:   id,
		Before:   models.User{ID: id, Username: beforeName},
		After:    models.User{ID: id, Username: afterName},
		HasPrior: true,
	}
}

// runDispatcher запускает Run и возвращает функцию остановки.
func runDispatcher(t *testing.T, d *Dispatcher) func() {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("dispatcher did not stop")
		}
	}
}

func waitSaved(t *testing.T, w *fakeWatcher, want ...string) {
	t.Helper()

	for _, tok := range want {
		select {
		case got := <-w.saved:
			require.Equal(t, tok, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("checkpoint %q not saved", tok)
		}
	}
}

func TestDispatcher_DeliversAndCheckpoints(t *testing.T) {
	w := newFakeWatcher("", newFakeStream(
		change("t1", "u-1", "amy", "amy2"),
		change("t2", "u-2", "bob", "bobby"),
	))
	h := &fakeHandler{}

	stop := runDispatcher(t, New(w, h, testCfg(3), nil))
	waitSaved(t, w, "t1", "t2")
	stop()

	require.Equal(t, 2, h.count())
	require.Equal(t, "amy", h.calls[0].before.Username)
	require.Equal(t, "amy2", h.calls[0].after.Username)
	require.Equal(t, []string{""}, w.resumeTokens())
}

func TestDispatcher_ResumesFromCheckpoint(t *testing.T) {
	w := newFakeWatcher("t0", newFakeStream(change("t1", "u-1", "a", "b")))
	h := &fakeHandler{}

	stop := runDispatcher(t, New(w, h, testCfg(0), nil))
	waitSaved(t, w, "t1")
	stop()

	require.Equal(t, "t0", w.resumeTokens()[0])
}

func TestDispatcher_RetriesUntilSuccess(t *testing.T) {
	w := newFakeWatcher("", newFakeStream(change("t1", "u-1", "a", "b")))
	h := &fakeHandler{failN: 2}

	stop := runDispatcher(t, New(w, h, testCfg(3), nil))
	waitSaved(t, w, "t1")
	stop()

	require.Equal(t, 3, h.count())
}

// После исчерпания повторов событие всё равно фиксируется.
func TestDispatcher_ExhaustedRetriesStillCheckpoint(t *testing.T) {
	w := newFakeWatcher("", newFakeStream(change("t1", "u-1", "a", "b")))
	h := &fakeHandler{failN: 100}

	stop := runDispatcher(t, New(w, h, testCfg(2), nil))
	waitSaved(t, w, "t1")
	stop()

	require.Equal(t, 3, h.count())
}

// Ошибка потока: переоткрываем с токена последнего обработанного события.
func TestDispatcher_ReopensAfterStreamError(t *testing.T) {
	w := newFakeWatcher("",
		newFakeStream(change("t1", "u-1", "a", "b")).broken(),
		newFakeStream(change("t2", "u-1", "b", "c")),
	)
	h := &fakeHandler{}

	stop := runDispatcher(t, New(w, h, testCfg(0), nil))
	waitSaved(t, w, "t1", "t2")
	stop()

	tokens := w.resumeTokens()
	require.GreaterOrEqual(t, len(tokens), 2)
	require.Equal(t, []string{"", "t1"}, tokens[:2])
}

// Без pre-image обработчик получает пустой before.
func TestDispatcher_NoPriorImage(t *testing.T) {
	ev := change("t1", "u-1", "a", "b")
	ev.HasPrior = false

	w := newFakeWatcher("", newFakeStream(ev))
	h := &fakeHandler{}

	stop := runDispatcher(t, New(w, h, testCfg(0), nil))
	waitSaved(t, w, "t1")
	stop()

	require.Equal(t, models.User{}, h.calls[0].before)
}

// Событие без документа пропускается, но фиксируется.
func TestDispatcher_SkipsEventWithoutDocument(t *testing.T) {
	ev := change("t1", "u-1", "a", "b")
	ev.After = models.User{}

	w := newFakeWatcher("", newFakeStream(ev))
	h := &fakeHandler{}

	stop := runDispatcher(t, New(w, h, testCfg(0), nil))
	waitSaved(t, w, "t1")
	stop()

	require.Zero(t, h.count())
}
