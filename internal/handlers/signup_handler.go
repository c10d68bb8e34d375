package handlers

import (
	"errors"
	"net/http"
	"time"

	"creatorcrewz/internal/logger"
	"creatorcrewz/internal/middleware"
	"creatorcrewz/internal/services"
	"creatorcrewz/internal/signup"
	"creatorcrewz/internal/web"
	"creatorcrewz/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FormCookieName identifies the visitor's sign-up form in the form store.
const FormCookieName = "signup_sid"

const signupPath = "/auth/signup"

type SignupHandler struct {
	*BaseHandler
	store         signup.Store
	authService   services.AuthService
	formTTL       time.Duration
	secureCookies bool
}

func NewSignupHandler(base *BaseHandler, store signup.Store, authService services.AuthService, formTTL time.Duration, secureCookies bool) *SignupHandler {
	if formTTL <= 0 {
		formTTL = signup.DefaultSessionTTL
	}
	return &SignupHandler{
		BaseHandler:   base,
		store:         store,
		authService:   authService,
		formTTL:       formTTL,
		secureCookies: secureCookies,
	}
}

// RegisterRoutes mounts the form. guards run only on the submit route.
func (h *SignupHandler) RegisterRoutes(r gin.IRoutes, guards ...gin.HandlerFunc) {
	r.GET(signupPath, h.Show)
	r.POST(signupPath+"/role", h.SelectRole)
	r.POST(signupPath+"/change-role", h.ChangeRole)
	r.POST(signupPath+"/dismiss", h.Dismiss)
	submit := append(append([]gin.HandlerFunc{}, guards...), h.Submit)
	r.POST(signupPath, submit...)
}

// Show renders the form. A role query parameter starts a fresh form from that hint.
func (h *SignupHandler) Show(c *gin.Context) {
	var form *signup.Form
	if hint, ok := c.GetQuery("role"); ok {
		form = h.startForm(c, hint)
	} else {
		form = h.currentForm(c)
	}
	h.render(c, http.StatusOK, form)
}

func (h *SignupHandler) SelectRole(c *gin.Context) {
	form := h.currentForm(c)

	err := form.SelectRole(signup.ParseRoleHint(c.PostForm("role")))
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, signupPath)
	case errors.Is(err, signup.ErrRoleAlreadySelected):
		h.render(c, http.StatusConflict, form)
	default:
		h.render(c, http.StatusBadRequest, form)
	}
}

// ChangeRole and Dismiss only touch an existing form; without one there is nothing to change.
func (h *SignupHandler) ChangeRole(c *gin.Context) {
	if form, ok := h.existingForm(c); ok {
		form.ChangeRole()
	}
	c.Redirect(http.StatusSeeOther, signupPath)
}

func (h *SignupHandler) Dismiss(c *gin.Context) {
	if form, ok := h.existingForm(c); ok {
		form.DismissError()
	}
	c.Redirect(http.StatusSeeOther, signupPath)
}

// Throttled answers a rate-limited submit with the form and the limit message,
// keeping the typed email so the visitor can retry later.
func (h *SignupHandler) Throttled(c *gin.Context, _ time.Duration) {
	form, ok := h.existingForm(c)
	if !ok {
		form = signup.NewForm("")
	}
	form.SetEmail(c.PostForm("email"))
	form.Reject(apperrors.ErrTooManyAttempts)
	h.render(c, http.StatusTooManyRequests, form)
}

func (h *SignupHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	sid, form := h.formWithID(c)

	form.SetEmail(c.PostForm("email"))
	form.SetPassword(c.PostForm("password"))

	result, err := form.Submit(ctx, services.AccountCreatorFor(h.authService, h.GetDB(c)))
	switch result {
	case signup.SubmitIgnored:
		c.Redirect(http.StatusSeeOther, signupPath)
	case signup.SubmitBlocked:
		h.render(c, http.StatusForbidden, form)
	case signup.SubmitInFlight:
		h.render(c, http.StatusConflict, form)
	case signup.SubmitFailed:
		logger.CtxDebug(ctx, "Sign-up submission failed", "error", err)
		h.render(c, http.StatusUnprocessableEntity, form)
	case signup.SubmitSucceeded:
		session := form.Session()
		h.store.Delete(sid)
		h.setCookie(c, FormCookieName, "", -1)
		h.setCookie(c, middleware.SessionCookieName, session.Token, int(time.Until(session.ExpiresAt).Seconds()))
		logger.CtxInfo(ctx, "Account created from sign-up form", "user_id", session.UserID, "role", session.Role.String())
		c.Redirect(http.StatusSeeOther, "/welcome")
	default:
		h.HandleServiceError(c, err)
	}
}

// ============================================================================
// Form session helpers
// ============================================================================

func (h *SignupHandler) startForm(c *gin.Context, hint string) *signup.Form {
	if sid, err := c.Cookie(FormCookieName); err == nil {
		h.store.Delete(sid)
	}
	sid := uuid.NewString()
	form := signup.NewForm(hint)
	h.store.Put(sid, form)
	h.setCookie(c, FormCookieName, sid, int(h.formTTL.Seconds()))
	return form
}

func (h *SignupHandler) existingForm(c *gin.Context) (*signup.Form, bool) {
	sid, err := c.Cookie(FormCookieName)
	if err != nil {
		return nil, false
	}
	return h.store.Get(sid)
}

func (h *SignupHandler) currentForm(c *gin.Context) *signup.Form {
	_, form := h.formWithID(c)
	return form
}

// formWithID returns the visitor's form, creating an unselected one when the
// cookie is missing or its form has expired.
func (h *SignupHandler) formWithID(c *gin.Context) (string, *signup.Form) {
	if sid, err := c.Cookie(FormCookieName); err == nil {
		if form, ok := h.store.Get(sid); ok {
			return sid, form
		}
	}
	sid := uuid.NewString()
	form := signup.NewForm("")
	h.store.Put(sid, form)
	h.setCookie(c, FormCookieName, sid, int(h.formTTL.Seconds()))
	return sid, form
}

func (h *SignupHandler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.secureCookies, true)
}

func (h *SignupHandler) render(c *gin.Context, status int, form *signup.Form) {
	c.HTML(status, web.SignupPage, gin.H{
		"Form": form.Snapshot(),
	})
}
