package admin

import (
	"net/http"

	"gofund/internal/services"
	"gofund/internal/utils"

	"github.com/gin-gonic/gin"
)

type EmailTemplateHandler struct {
	templateService *services.EmailTemplateService
}

func NewEmailTemplateHandler(templateService *services.EmailTemplateService) *EmailTemplateHandler {
	return &EmailTemplateHandler{
		templateService: templateService,
	}
}

func (h *EmailTemplateHandler) Create(c *gin.Context) {
	var input services.CreateEmailTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request: "+err.Error())
		return
	}

	created, err := h.templateService.Create(c.Request.Context(), &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Email template created successfully", created)
}

func (h *EmailTemplateHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	result, err := h.templateService.List(c.Request.Context(), c.Query("language"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Email templates retrieved successfully", result)
}

func (h *EmailTemplateHandler) GetByTask(c *gin.Context) {
	template, err := h.templateService.GetByTask(c.Request.Context(), c.Param("task"), c.Query("language"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Email template retrieved successfully", template)
}

func (h *EmailTemplateHandler) Update(c *gin.Context) {
	update, ok := bindUpdate(c)
	if !ok {
		return
	}

	updated, err := h.templateService.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Email template updated successfully", updated)
}

func (h *EmailTemplateHandler) Delete(c *gin.Context) {
	if err := h.templateService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Email template deleted successfully", nil)
}
