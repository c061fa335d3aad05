package admin

import (
	"errors"
	"net/http"

	"gofund/internal/repositories"
	"gofund/internal/utils"

	"github.com/gin-gonic/gin"
)

// handleServiceError translates the repository/service error taxonomy into an
// HTTP response. Backend errors stay generic; the detail goes to logs only.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, utils.ErrCodeNotFound, err.Error())
	case errors.Is(err, repositories.ErrConflict):
		utils.ErrorResponse(c, http.StatusConflict, utils.ErrCodeConflict, err.Error())
	case errors.Is(err, repositories.ErrInvalidReference), errors.Is(err, repositories.ErrNoDefaultLanguage):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, utils.ErrCodeInvalidReference, err.Error())
	case errors.Is(err, repositories.ErrGuardViolation):
		utils.ErrorResponse(c, http.StatusConflict, utils.ErrCodeGuardViolation, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, utils.ErrCodeInternal, "internal error")
	}
}

func bindUpdate(c *gin.Context) (repositories.Update, bool) {
	var update repositories.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request: "+err.Error())
		return nil, false
	}
	delete(update, "public_id") // immutable
	return update, true
}
