package handlers

import (
	"net/http"

	"creatorcrewz/internal/middleware"
	"creatorcrewz/internal/web"

	"github.com/gin-gonic/gin"
)

// LandingHandler serves the static marketing pages.
type LandingHandler struct{}

func NewLandingHandler() *LandingHandler {
	return &LandingHandler{}
}

func (h *LandingHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Landing)
	r.GET("/welcome", h.Welcome)
}

func (h *LandingHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, web.LandingPage, gin.H{
		"Features": web.Features,
	})
}

// Welcome greets the visitor by the email carried in their session, if any.
func (h *LandingHandler) Welcome(c *gin.Context) {
	c.HTML(http.StatusOK, web.WelcomePage, gin.H{
		"Email": middleware.GetUserEmail(c),
	})
}
