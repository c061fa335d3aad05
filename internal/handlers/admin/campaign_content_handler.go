package admin

import (
	"net/http"

	"gofund/internal/models"
	"gofund/internal/services"
	"gofund/internal/utils"

	"github.com/gin-gonic/gin"
)

type CampaignContentHandler struct {
	contentService *services.CampaignContentService
}

func NewCampaignContentHandler(contentService *services.CampaignContentService) *CampaignContentHandler {
	return &CampaignContentHandler{
		contentService: contentService,
	}
}

func (h *CampaignContentHandler) campaignID(c *gin.Context) models.PublicID {
	return models.PublicID(c.Param("campaign_id"))
}

func (h *CampaignContentHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.contentService.ListFAQs(c.Request.Context(), h.campaignID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Campaign FAQs retrieved successfully", faqs)
}

func (h *CampaignContentHandler) AddFAQ(c *gin.Context) {
	var faq models.CampaignFAQ
	if err := c.ShouldBindJSON(&faq); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request: "+err.Error())
		return
	}
	faq.CampaignID = h.campaignID(c)

	created, err := h.contentService.AddFAQ(c.Request.Context(), &faq)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Campaign FAQ created successfully", created)
}

func (h *CampaignContentHandler) UpdateFAQ(c *gin.Context) {
	update, ok := bindUpdate(c)
	if !ok {
		return
	}

	updated, err := h.contentService.UpdateFAQ(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Campaign FAQ updated successfully", updated)
}

func (h *CampaignContentHandler) DeleteFAQ(c *gin.Context) {
	if err := h.contentService.DeleteFAQ(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Campaign FAQ deleted successfully", nil)
}

func (h *CampaignContentHandler) ListLeadInvestors(c *gin.Context) {
	investors, err := h.contentService.ListLeadInvestors(c.Request.Context(), h.campaignID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Lead investors retrieved successfully", investors)
}

func (h *CampaignContentHandler) AddLeadInvestor(c *gin.Context) {
	var investor models.LeadInvestor
	if err := c.ShouldBindJSON(&investor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request: "+err.Error())
		return
	}
	investor.CampaignID = h.campaignID(c)

	created, err := h.contentService.AddLeadInvestor(c.Request.Context(), &investor)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Lead investor created successfully", created)
}

func (h *CampaignContentHandler) UpdateLeadInvestor(c *gin.Context) {
	update, ok := bindUpdate(c)
	if !ok {
		return
	}

	updated, err := h.contentService.UpdateLeadInvestor(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Lead investor updated successfully", updated)
}

func (h *CampaignContentHandler) DeleteLeadInvestor(c *gin.Context) {
	if err := h.contentService.DeleteLeadInvestor(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Lead investor deleted successfully", nil)
}

func (h *CampaignContentHandler) ListExtras(c *gin.Context) {
	extras, err := h.contentService.ListExtras(c.Request.Context(), h.campaignID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Campaign extras retrieved successfully", extras)
}

func (h *CampaignContentHandler) AddExtra(c *gin.Context) {
	var extra models.CampaignExtra
	if err := c.ShouldBindJSON(&extra); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request: "+err.Error())
		return
	}
	extra.CampaignID = h.campaignID(c)

	created, err := h.contentService.AddExtra(c.Request.Context(), &extra)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Campaign extra created successfully", created)
}

func (h *CampaignContentHandler) UpdateExtra(c *gin.Context) {
	update, ok := bindUpdate(c)
	if !ok {
		return
	}

	updated, err := h.contentService.UpdateExtra(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Campaign extra updated successfully", updated)
}

func (h *CampaignContentHandler) DeleteExtra(c *gin.Context) {
	if err := h.contentService.DeleteExtra(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Campaign extra deleted successfully", nil)
}
