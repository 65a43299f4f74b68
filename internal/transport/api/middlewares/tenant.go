package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
)

const (
	HeaderTenantID = "X-Tenant-ID"
	TenantIDKey    = "tenantID"
	maxTenantBytes = 64
)

// TenantRequired требует заголовок X-Tenant-ID и кладет его в контекст (поле TenantIDKey).
func TenantRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(HeaderTenantID))
		if tenantID == "" || len(tenantID) > maxTenantBytes {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ErrorBody{
				Kind:    domain.KindValidation,
				Message: "missing or invalid " + HeaderTenantID + " header",
			}})
			return
		}
		c.Set(TenantIDKey, tenantID)
		c.Next()
	}
}
