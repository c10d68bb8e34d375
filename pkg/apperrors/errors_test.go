package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetailsLeavesPredefinedErrorUntouched(t *testing.T) {
	withDetails := ErrAlreadyApplied.WithDetails(map[string]string{"job_id": "42"})

	assert.Nil(t, ErrAlreadyApplied.Details)
	assert.NotNil(t, withDetails.Details)
	assert.True(t, errors.Is(withDetails, ErrAlreadyApplied))
}

func TestWrappedAppErrorIsFound(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("apply: %w", ErrJobNotOpen.WithError(cause))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	assert.ErrorIs(t, err, ErrJobNotOpen)
	assert.ErrorIs(t, err, cause)
	assert.False(t, errors.Is(err, ErrJobNotFound))
}

func TestMarshalJSONHidesCause(t *testing.T) {
	raw, err := json.Marshal(Wrap(errors.New("secret dsn"), CodeDatabaseError, "system", "Database unavailable", 500))
	require.NoError(t, err)

	assert.JSONEq(t, `{"code":"DATABASE_ERROR","domain":"system","message":"Database unavailable"}`, string(raw))
}

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"app error", ErrInvitationRequired, http.StatusForbidden, "INVITE_REQUIRED"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"validation", ValidationError(map[string]string{"email": "required"}), http.StatusBadRequest, `"email":"required"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
