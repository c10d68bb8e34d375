package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"creatorcrewz/internal/logger"
	"creatorcrewz/internal/ratelimit"
	"creatorcrewz/pkg/apperrors"
	"creatorcrewz/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RequestIDHeader = "X-Request-ID"

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log := logger.FromContext(c.Request.Context())
		fields := []any{
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("duration", duration),
			slog.Int("size_bytes", c.Writer.Size()),
		}
		switch {
		case c.Writer.Status() >= 500:
			log.Error("HTTP Server Error", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("HTTP Client Error", fields...)
		default:
			log.Info("HTTP Request", fields...)
		}
	}
}

// DBMiddleware exposes db to handlers, unless the request context already carries a transaction.
func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbKey := string(contextkeys.DBContextKey)
		tx, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)

		if ok && tx != nil {
			c.Set(dbKey, tx)
		} else {
			c.Set(dbKey, db)
		}

		c.Next()
	}
}

// DenyFunc writes the response for a request the limiter turned away.
type DenyFunc func(c *gin.Context, retryAfter time.Duration)

// RateLimit counts requests per client IP under scope and answers denials with
// the JSON error envelope. Limiter failures let the request through.
func RateLimit(limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	return RateLimitWith(limiter, scope, func(c *gin.Context, _ time.Duration) {
		apperrors.HandleError(c, apperrors.ErrTooManyAttempts)
	})
}

// RateLimitWith is RateLimit with a custom denial response. Retry-After is set before onDeny runs.
func RateLimitWith(limiter ratelimit.Limiter, scope string, onDeny DenyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := scope + ":" + c.ClientIP()

		allowed, retryAfter, err := limiter.Allow(ctx, key)
		if err != nil {
			logger.CtxWithError(ctx, "Rate limiter unavailable", err, "scope", scope)
			c.Next()
			return
		}
		if !allowed {
			logger.CtxWarn(ctx, "Rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			c.Header("Retry-After", strconv.Itoa(int((retryAfter+time.Second-1)/time.Second)))
			onDeny(c, retryAfter)
			c.Abort()
			return
		}
		c.Next()
	}
}
