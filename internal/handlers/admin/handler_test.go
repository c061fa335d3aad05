package admin

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gofund/internal/repositories"
	"gofund/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", repositories.ErrNotFound, http.StatusNotFound, utils.ErrCodeNotFound},
		{"wrapped not found", fmt.Errorf("template %q: %w", "welcome", repositories.ErrNotFound), http.StatusNotFound, utils.ErrCodeNotFound},
		{"conflict", repositories.ErrConflict, http.StatusConflict, utils.ErrCodeConflict},
		{"invalid reference", repositories.ErrInvalidReference, http.StatusUnprocessableEntity, utils.ErrCodeInvalidReference},
		{"no default language", repositories.ErrNoDefaultLanguage, http.StatusUnprocessableEntity, utils.ErrCodeInvalidReference},
		{"guard violation", repositories.ErrGuardViolation, http.StatusConflict, utils.ErrCodeGuardViolation},
		{"unknown error stays generic", errors.New("connection reset"), http.StatusInternalServerError, utils.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			handleServiceError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp utils.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleServiceErrorHidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	handleServiceError(c, errors.New("dial tcp 10.0.0.5:27017: i/o timeout"))

	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestBindUpdateStripsPublicID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := bytes.NewBufferString(`{"name":"Euro","public_id":"forged"}`)
	c.Request = httptest.NewRequest(http.MethodPut, "/currencies/x", body)
	c.Request.Header.Set("Content-Type", "application/json")

	update, ok := bindUpdate(c)
	require.True(t, ok)
	assert.Equal(t, "Euro", update["name"])
	assert.NotContains(t, update, "public_id")
}

func TestBindUpdateRejectsMalformedBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/currencies/x", bytes.NewBufferString("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")

	_, ok := bindUpdate(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
