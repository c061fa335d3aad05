package admin

import (
	"net/http"

	"gofund/internal/services"
	"gofund/internal/utils"

	"github.com/gin-gonic/gin"
)

type DropdownHandler struct {
	dropdownService *services.DropdownService
}

func NewDropdownHandler(dropdownService *services.DropdownService) *DropdownHandler {
	return &DropdownHandler{
		dropdownService: dropdownService,
	}
}

func (h *DropdownHandler) Create(c *gin.Context) {
	var input services.CreateDropdownInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request: "+err.Error())
		return
	}

	created, err := h.dropdownService.Create(c.Request.Context(), &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Dropdown created successfully", created)
}

func (h *DropdownHandler) ListByType(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	result, err := h.dropdownService.ListByType(c.Request.Context(), c.Param("type"), c.Query("language"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Dropdowns retrieved successfully", result)
}

func (h *DropdownHandler) Variants(c *gin.Context) {
	variants, err := h.dropdownService.Variants(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Dropdown variants retrieved successfully", variants)
}

func (h *DropdownHandler) Update(c *gin.Context) {
	update, ok := bindUpdate(c)
	if !ok {
		return
	}

	updated, err := h.dropdownService.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Dropdown updated successfully", updated)
}

func (h *DropdownHandler) Delete(c *gin.Context) {
	if err := h.dropdownService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Dropdown deleted successfully", nil)
}
