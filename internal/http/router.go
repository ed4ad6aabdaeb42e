package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-photo-feed/internal/config"
	"github.com/pribylovaa/go-photo-feed/internal/http/handlers"
	"github.com/pribylovaa/go-photo-feed/internal/http/middleware"
	"github.com/pribylovaa/go-photo-feed/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
	Auth     config.AuthConfig
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),
		middleware.RequestID(), // до логирования: id попадает в логгер запроса
		middleware.Logging(opts.Logger),
		middleware.Auth(opts.Auth),
		middleware.Timeout(opts.Timeout),
	)

	h := handlers.New(svc)

	if opts.BasePath != "" && opts.BasePath != "/" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// users
	r.Post("/users", h.CreateUser)
	r.Get("/users/{id}", h.GetUser)
	r.Patch("/users/{id}", h.UpdateProfile)
	r.Get("/users/{id}/posts", h.ListUserPosts)
	r.Get("/users/{id}/saved", h.ListSaved)
	r.Get("/users/{id}/stats", h.GetStats)
	r.Get("/usernames/{username}/available", h.UsernameAvailable)
	r.Post("/users/{id}/follow", h.Follow)
	r.Delete("/users/{id}/follow", h.Unfollow)
	r.Post("/users/{id}/verified", h.Verify)
	r.Delete("/users/{id}/verified", h.Unverify)
	r.Post("/users/{id}/admin", h.GrantAdmin)
	r.Delete("/users/{id}/admin", h.RevokeAdmin)

	// images
	r.Post("/images/presign", h.PresignImage)
	r.Post("/images/confirm", h.ConfirmImage)

	// posts
	r.Post("/posts", h.CreatePost)
	r.Get("/posts/{id}", h.GetPost)
	r.Delete("/posts/{id}", h.DeletePost)
	r.Post("/posts/{id}/like", h.LikePost)
	r.Delete("/posts/{id}/like", h.UnlikePost)
	r.Post("/posts/{id}/save", h.SavePost)
	r.Delete("/posts/{id}/save", h.UnsavePost)
	r.Get("/posts/{id}/comments", h.ListPostComments)

	// comments
	r.Post("/comments", h.CreateComment)
	r.Get("/comments/{id}", h.GetComment)
	r.Delete("/comments/{id}", h.DeleteComment)
	r.Get("/comments/{id}/replies", h.ListReplies)
	r.Post("/comments/{id}/like", h.LikeComment)
	r.Delete("/comments/{id}/like", h.UnlikeComment)
}
