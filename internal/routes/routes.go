package routes

import (
	"creatorcrewz/internal/handlers"
	"creatorcrewz/internal/logger"
	"creatorcrewz/internal/middleware"
	"creatorcrewz/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// SignupScope is the limiter key shared by every credential-handling endpoint.
const SignupScope = "signup"

// RegisterRoutes mounts every page and API route. A non-nil limiter guards the
// credential-handling endpoints: the form submit and JSON register/login.
// The form gets its denial rendered as a page, the API as the JSON envelope.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	limiter ratelimit.Limiter,
) {
	var formGuards, apiGuards []gin.HandlerFunc
	if limiter != nil {
		formGuards = append(formGuards, middleware.RateLimitWith(limiter, SignupScope, appHandlers.SignupHandler.Throttled))
		apiGuards = append(apiGuards, middleware.RateLimit(limiter, SignupScope))
	}

	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	// Server-rendered pages
	appHandlers.LandingHandler.RegisterRoutes(ginRouter)
	appHandlers.SignupHandler.RegisterRoutes(ginRouter, formGuards...)

	// JSON API v1
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, apiGuards...)
		appHandlers.JobHandler.RegisterRoutes(api)
	}

	logger.Info("Routes registered", "count", len(ginRouter.Routes()))
}
