package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pribylovaa/go-photo-feed/internal/config"
	apierrors "github.com/pribylovaa/go-photo-feed/internal/http/errors"
	logctx "github.com/pribylovaa/go-photo-feed/pkg/log"
)

type actorKey struct{}

const bearerPrefix = "Bearer "

// Auth проверяет access-токен (HS256, issuer/audience) из Authorization: Bearer
// и кладёт subject (id пользователя) в контекст.
//
// Без заголовка запрос идёт дальше анонимно: хендлеры, которым нужен актор,
// сами отвечают 401. Заголовок есть, но токен невалиден — сразу 401.
func Auth(cfg config.AuthConfig) Middleware {
	secret := []byte(cfg.JWTSecret)

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5 * time.Second),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if len(cfg.Audience) > 0 {
		opts = append(opts, jwt.WithAudience(cfg.Audience...))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(header, bearerPrefix)
			raw = strings.TrimSpace(raw)
			if !ok || raw == "" {
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}

			sub, err := parseSubject(raw, secret, opts)
			if err != nil {
				logctx.From(r.Context()).Warn("invalid access token", "err", err)
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), sub)))
		})
	}
}

func parseSubject(raw string, secret []byte, opts []jwt.ParserOption) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		return "", err
	}

	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return "", errors.New("empty subject")
	}

	return sub, nil
}

// WithActor кладёт id актора в контекст.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorID возвращает id аутентифицированного пользователя ("" — аноним).
func ActorID(ctx context.Context) string {
	id, _ := ctx.Value(actorKey{}).(string)
	return id
}
