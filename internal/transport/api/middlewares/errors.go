package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentaro/lease-engine/internal/domain"
)

// Errors транслирует доменные ошибки обработчиков в HTTP-статусы. Детали
// неожиданных ошибок наружу не отдаются.
func Errors(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var (
			validationErr *domain.ValidationError
			authErr       *domain.AuthorizationError
			conflictErr   *domain.StateConflictError
			limitErr      *domain.LimitExceededError
			depErr        *domain.DependencyError
		)
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
		case errors.As(err, &authErr):
			c.JSON(http.StatusForbidden, gin.H{"error": "operation is not permitted"})
		case errors.Is(err, domain.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case errors.As(err, &conflictErr):
			c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Error()})
		case errors.As(err, &limitErr):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": limitErr.Reason})
		case errors.As(err, &depErr):
			l.WithError(err).WithField("path", c.FullPath()).Error("dependency failure")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		default:
			l.WithError(err).WithField("path", c.FullPath()).Error("unhandled error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
	}
}
