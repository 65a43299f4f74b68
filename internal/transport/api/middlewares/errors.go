package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
)

// ErrorBody тело ответа с ошибкой.
type ErrorBody struct {
	Kind    domain.Kind              `json:"kind"`
	Message string                   `json:"message"`
	Items   []domain.UnavailableItem `json:"unavailableItems,omitempty"`
}

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusServiceUnavailable:
		return "service unavailable"
	default:
		return "internal server error"
	}
}

// StatusForKind код ответа для категории ошибки.
func StatusForKind(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusUnprocessableEntity
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindDependency:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Errors превращает первую ошибку запроса в JSON ответ {"error": {"kind", "message"}}. Ошибки привязки
// параметров отдаются как 400, бизнес ошибки по своей категории, остальные как 500 без текста ошибки.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]

		var (
			status int
			body   ErrorBody
		)
		switch {
		case firstErr.IsType(gin.ErrorTypeBind):
			status = http.StatusBadRequest
			body = ErrorBody{Kind: domain.KindValidation, Message: firstErr.Error()}
		default:
			kind := domain.KindOf(firstErr.Err)
			status = StatusForKind(kind)
			body = ErrorBody{Kind: kind, Message: firstErr.Error()}
			if kind == domain.KindInternal {
				body.Message = statusErrorText(status)
			}
			var inv *domain.InsufficientInventoryError
			if errors.As(firstErr.Err, &inv) {
				body.Items = inv.Items
			}
		}

		c.AbortWithStatusJSON(status, gin.H{"error": body})
	}
}
