package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/transport/api/middlewares"
)

// getTenantIDFromContext берет из контекста gin тенанта, установленного middlewares.TenantRequired.
// Если значения нет, вернется пустая строка.
func getTenantIDFromContext(c *gin.Context) string {
	return c.GetString(middlewares.TenantIDKey)
}

// abortWithError передает ошибку в middlewares.Errors, который сам выберет код ответа.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	c.Abort()
}

// bindJSON разбирает тело запроса. Нарушение правил валидации отдается как 422 со списком полей,
// синтаксическая ошибка как 400.
func bindJSON(c *gin.Context, params any) bool {
	bindErr := c.ShouldBindJSON(params)
	if bindErr == nil {
		return true
	}
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		fields := make(map[string]string, len(valErrs))
		for _, fe := range valErrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{
			"kind":    domain.KindValidation,
			"message": "request validation failed",
			"fields":  fields,
		}})
		return false
	}
	_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
	c.Abort()
	return false
}
