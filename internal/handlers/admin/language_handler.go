package admin

import (
	"net/http"

	"gofund/internal/models"
	"gofund/internal/services"
	"gofund/internal/utils"

	"github.com/gin-gonic/gin"
)

type LanguageHandler struct {
	languageService *services.LanguageService
}

func NewLanguageHandler(languageService *services.LanguageService) *LanguageHandler {
	return &LanguageHandler{
		languageService: languageService,
	}
}

func (h *LanguageHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	result, err := h.languageService.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Languages retrieved successfully", result)
}

func (h *LanguageHandler) Get(c *gin.Context) {
	lang, err := h.languageService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Language retrieved successfully", lang)
}

func (h *LanguageHandler) Create(c *gin.Context) {
	var lang models.Language
	if err := c.ShouldBindJSON(&lang); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request: "+err.Error())
		return
	}

	created, err := h.languageService.Create(c.Request.Context(), &lang)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Language created successfully", created)
}

func (h *LanguageHandler) Update(c *gin.Context) {
	update, ok := bindUpdate(c)
	if !ok {
		return
	}

	updated, err := h.languageService.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Language updated successfully", updated)
}

func (h *LanguageHandler) SetDefault(c *gin.Context) {
	updated, err := h.languageService.SetDefault(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Default language updated successfully", updated)
}

func (h *LanguageHandler) Delete(c *gin.Context) {
	if err := h.languageService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Language deleted successfully", nil)
}
