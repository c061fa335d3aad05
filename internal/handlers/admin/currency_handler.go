package admin

import (
	"net/http"

	"gofund/internal/models"
	"gofund/internal/services"
	"gofund/internal/utils"

	"github.com/gin-gonic/gin"
)

type CurrencyHandler struct {
	currencyService *services.CurrencyService
}

func NewCurrencyHandler(currencyService *services.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{
		currencyService: currencyService,
	}
}

func (h *CurrencyHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	result, err := h.currencyService.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Currencies retrieved successfully", result)
}

func (h *CurrencyHandler) Get(c *gin.Context) {
	currency, err := h.currencyService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Currency retrieved successfully", currency)
}

func (h *CurrencyHandler) Create(c *gin.Context) {
	var currency models.Currency
	if err := c.ShouldBindJSON(&currency); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request: "+err.Error())
		return
	}

	created, err := h.currencyService.Create(c.Request.Context(), &currency)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Currency created successfully", created)
}

func (h *CurrencyHandler) Update(c *gin.Context) {
	update, ok := bindUpdate(c)
	if !ok {
		return
	}

	updated, err := h.currencyService.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Currency updated successfully", updated)
}

func (h *CurrencyHandler) SetDefault(c *gin.Context) {
	updated, err := h.currencyService.SetDefault(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Default currency updated successfully", updated)
}

func (h *CurrencyHandler) Delete(c *gin.Context) {
	if err := h.currencyService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Currency deleted successfully", nil)
}
