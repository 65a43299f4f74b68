package collab

import (
	"fmt"
	"net/http"
)

// StatusCodeError неуспешный ответ сервиса-партнера.
type StatusCodeError struct {
	Code int
	Body string
}

func NewStatusCodeError(code int, body []byte) *StatusCodeError {
	const maxBody = 4096
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return &StatusCodeError{Code: code, Body: string(body)}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}

// Retryable сообщает, имеет ли смысл повторить запрос.
func (e *StatusCodeError) Retryable() bool {
	return e.Code >= http.StatusInternalServerError || e.Code == http.StatusTooManyRequests
}
