package admin

import (
	"net/http"

	"gofund/internal/services"
	"gofund/internal/utils"

	"github.com/gin-gonic/gin"
)

type MetaSettingHandler struct {
	metaService *services.MetaSettingService
}

func NewMetaSettingHandler(metaService *services.MetaSettingService) *MetaSettingHandler {
	return &MetaSettingHandler{
		metaService: metaService,
	}
}

func (h *MetaSettingHandler) Create(c *gin.Context) {
	var input services.CreateMetaSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request: "+err.Error())
		return
	}

	created, err := h.metaService.Create(c.Request.Context(), &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Meta settings created successfully", created)
}

func (h *MetaSettingHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	result, err := h.metaService.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Meta settings retrieved successfully", result)
}

func (h *MetaSettingHandler) GetByLanguage(c *gin.Context) {
	setting, err := h.metaService.GetByLanguage(c.Request.Context(), c.Query("language"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Meta setting retrieved successfully", setting)
}

func (h *MetaSettingHandler) Update(c *gin.Context) {
	update, ok := bindUpdate(c)
	if !ok {
		return
	}

	updated, err := h.metaService.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Meta setting updated successfully", updated)
}
