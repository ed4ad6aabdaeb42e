// errors стандартизирует ответы об ошибках HTTP-слоя photo-feed.
// На вход принимает ошибку сервисного слоя (сентинелы internal/service),
// на выход даёт HTTP-статус и краткое безопасное message без утечки деталей.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-photo-feed/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

var (
	// ErrUnauthenticated — нет или невалиден Bearer-токен.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrBadRequest — тело/параметры запроса не разобраны.
	ErrBadRequest = errors.New("bad request")
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервиса в HTTP-статус и тело ответа.
// err == nil — программная ошибка вызова: 500/internal, а не "200 OK" с телом ошибки.
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError пишет статус и тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// base — маппинг сервисных сентинелов:
//   - InvalidArgument, InvalidCursor, BadRequest -> 400
//   - Unauthenticated -> 401, PermissionDenied -> 403, NotFound -> 404
//   - AlreadyExists -> 409, BatchCommit -> 409/aborted
//   - IncompleteProfile -> 412
//   - Canceled -> 499, DeadlineExceeded -> 504
//   - PartialDeletion -> 500/partial_failure, прочее -> 500/internal
func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, ErrBadRequest), errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrInvalidCursor):
		return http.StatusBadRequest, "invalid_argument", "invalid page token"
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied", "permission denied"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict, "already_exists", "already exists"
	case errors.Is(err, service.ErrBatchCommit):
		return http.StatusConflict, "aborted", "aborted"
	case errors.Is(err, service.ErrIncompleteProfile):
		return http.StatusPreconditionFailed, "failed_precondition", "profile is incomplete"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	case errors.Is(err, service.ErrPartialDeletion):
		return http.StatusInternalServerError, "partial_failure", "deleted with stale counters"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
