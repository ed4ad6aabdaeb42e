package interceptors

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-photo-feed/pkg/log"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

const healthCheck = "/grpc.health.v1.Health/Check"

// capHandler — slog.Handler, запоминающий последнюю запись и её атрибуты.
type capHandler struct {
	mu      sync.Mutex
	base    []slog.Attr
	lastMsg string
	lastLvl slog.Level
	attrs   map[string]any
	count   map[string]int
}

func (h *capHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[string]any, len(h.base)+8)
	for _, a := range h.base {
		out[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})

	if h.count == nil {
		h.count = make(map[string]int)
	}
	h.count[r.Message]++
	h.lastMsg = r.Message
	h.lastLvl = r.Level
	h.attrs = out
	return nil
}

// WithAttrs возвращает копию, чтобы base.With(...) не протекал в базовый логгер.
func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sharedHandler{root: h, attrs: attrs}
}

func (h *capHandler) WithGroup(string) slog.Handler { return h }

// sharedHandler пишет в корневой capHandler с дополнительными атрибутами.
type sharedHandler struct {
	root  *capHandler
	attrs []slog.Attr
}

func (s *sharedHandler) Enabled(context.Context, slog.Level) bool { return true }

func (s *sharedHandler) Handle(ctx context.Context, r slog.Record) error {
	r = r.Clone()
	r.AddAttrs(s.attrs...)
	return s.root.Handle(ctx, r)
}

func (s *sharedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sharedHandler{root: s.root, attrs: append(append([]slog.Attr{}, s.attrs...), attrs...)}
}

func (s *sharedHandler) WithGroup(string) slog.Handler { return s }

func TestUnaryLogging_RequestIDFromMetadata(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	inter := UnaryLoggingInterceptor(slog.New(h))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-request-id", "rid-1"))
	ctx = peer.NewContext(ctx, &peer.Peer{Addr: &net.TCPAddr{IP: net.IPv4(10, 0, 0, 1), Port: 7000}})

	resp, err := inter(ctx, "req", &grpc.UnaryServerInfo{FullMethod: healthCheck}, func(ctx context.Context, req any) (any, error) {
		time.Sleep(2 * time.Millisecond)
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", resp)

	require.Equal(t, "grpc", h.lastMsg)
	require.Equal(t, slog.LevelInfo, h.lastLvl)
	require.Equal(t, "rid-1", h.attrs["request_id"])
	require.Equal(t, healthCheck, h.attrs["method"])
	require.Equal(t, "10.0.0.1:7000", h.attrs["peer"])
	require.Equal(t, "OK", h.attrs["code"])

	d, ok := h.attrs["dur"].(time.Duration)
	require.True(t, ok)
	require.Greater(t, d, time.Duration(0))
}

func TestUnaryLogging_GeneratesRequestID_LogsCode(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	inter := UnaryLoggingInterceptor(slog.New(h))

	_, err := inter(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: healthCheck}, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "unknown service")
	})
	require.Error(t, err)

	require.Equal(t, "NotFound", h.attrs["code"])
	require.Equal(t, "-", h.attrs["peer"])

	rid, _ := h.attrs["request_id"].(string)
	_, perr := uuid.Parse(rid)
	require.NoError(t, perr)
}

func TestUnaryLogging_LoggerInContext(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	inter := UnaryLoggingInterceptor(slog.New(h))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-request-id", "abc"))
	_, err := inter(ctx, "req", &grpc.UnaryServerInfo{FullMethod: healthCheck}, func(ctx context.Context, req any) (any, error) {
		log.From(ctx).Info("handler")
		return "ok", nil
	})
	require.NoError(t, err)

	require.Equal(t, 1, h.count["handler"])
	require.Equal(t, "abc", h.attrs["request_id"])
}

func TestRecover_PanicToInternal(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	inter := Recover(slog.New(h))

	resp, err := inter(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: healthCheck}, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})

	require.Nil(t, resp)
	require.Equal(t, codes.Internal, status.Code(err))
	require.Equal(t, slog.LevelError, h.lastLvl)
	require.Equal(t, "panic_recovered", h.lastMsg)
	require.Equal(t, healthCheck, h.attrs["method"])

	stack, ok := h.attrs["stack"].(string)
	require.True(t, ok)
	require.NotEmpty(t, stack)
}

func TestRecover_NoPanic(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	inter := Recover(slog.New(h))

	resp, err := inter(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: healthCheck}, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	require.Equal(t, "ok", resp)
	require.Empty(t, h.lastMsg)
}

// fakeStream — минимальный grpc.ServerStream для stream-интерсептора.
type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f *fakeStream) Context() context.Context { return f.ctx }

func TestStreamRecover_PanicToInternal(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	inter := StreamRecover(slog.New(h))

	err := inter(nil, &fakeStream{ctx: context.Background()},
		&grpc.StreamServerInfo{FullMethod: "/grpc.health.v1.Health/Watch"},
		func(srv any, ss grpc.ServerStream) error { panic("stream boom") },
	)

	require.Equal(t, codes.Internal, status.Code(err))
	require.Equal(t, "panic_recovered", h.lastMsg)
	require.Equal(t, "/grpc.health.v1.Health/Watch", h.attrs["method"])
}

func TestWithTimeout_SetsDeadline(t *testing.T) {
	t.Parallel()

	const d = 30 * time.Millisecond
	inter := WithTimeout(d)

	start := time.Now()
	_, err := inter(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: healthCheck}, func(ctx context.Context, req any) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.GreaterOrEqual(t, time.Since(start), d)
}

func TestWithTimeout_KeepsExistingDeadline(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()
	pdl, _ := parent.Deadline()

	inter := WithTimeout(time.Second)

	var got time.Time
	_, err := inter(parent, "req", &grpc.UnaryServerInfo{FullMethod: healthCheck}, func(ctx context.Context, req any) (any, error) {
		got, _ = ctx.Deadline()
		return "ok", nil
	})

	require.NoError(t, err)
	require.Equal(t, pdl, got)
}

func TestWithTimeout_ZeroPassThrough(t *testing.T) {
	t.Parallel()

	inter := WithTimeout(0)

	_, err := inter(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: healthCheck}, func(ctx context.Context, req any) (any, error) {
		_, has := ctx.Deadline()
		require.False(t, has)
		return "ok", nil
	})
	require.NoError(t, err)
}
