package routes

import (
	"gofund/internal/handlers/admin"

	"github.com/gin-gonic/gin"
)

// AdminHandlers groups the handlers wired into the admin API.
type AdminHandlers struct {
	Languages       *admin.LanguageHandler
	Currencies      *admin.CurrencyHandler
	Dropdowns       *admin.DropdownHandler
	EmailTemplates  *admin.EmailTemplateHandler
	MetaSettings    *admin.MetaSettingHandler
	CampaignContent *admin.CampaignContentHandler
}

// SetupAdminRoutes sets up routes for the admin settings API
func SetupAdminRoutes(r *gin.RouterGroup, h *AdminHandlers) {
	languages := r.Group("/languages")
	{
		languages.GET("/", h.Languages.List)
		languages.POST("/", h.Languages.Create)
		languages.GET("/:id", h.Languages.Get)
		languages.PUT("/:id", h.Languages.Update)
		languages.PUT("/:id/default", h.Languages.SetDefault)
		languages.DELETE("/:id", h.Languages.Delete)
	}

	currencies := r.Group("/currencies")
	{
		currencies.GET("/", h.Currencies.List)
		currencies.POST("/", h.Currencies.Create)
		currencies.GET("/:id", h.Currencies.Get)
		currencies.PUT("/:id", h.Currencies.Update)
		currencies.PUT("/:id/default", h.Currencies.SetDefault)
		currencies.DELETE("/:id", h.Currencies.Delete)
	}

	dropdowns := r.Group("/dropdowns")
	{
		dropdowns.POST("/", h.Dropdowns.Create)
		dropdowns.GET("/type/:type", h.Dropdowns.ListByType)
		dropdowns.GET("/:id/variants", h.Dropdowns.Variants)
		dropdowns.PUT("/:id", h.Dropdowns.Update)
		dropdowns.DELETE("/:id", h.Dropdowns.Delete)
	}

	templates := r.Group("/email-templates")
	{
		templates.GET("/", h.EmailTemplates.List)
		templates.POST("/", h.EmailTemplates.Create)
		templates.GET("/task/:task", h.EmailTemplates.GetByTask)
		templates.PUT("/:id", h.EmailTemplates.Update)
		templates.DELETE("/:id", h.EmailTemplates.Delete)
	}

	meta := r.Group("/meta-settings")
	{
		meta.GET("/", h.MetaSettings.List)
		meta.POST("/", h.MetaSettings.Create)
		meta.GET("/resolve", h.MetaSettings.GetByLanguage)
		meta.PUT("/:id", h.MetaSettings.Update)
	}

	campaigns := r.Group("/campaigns/:campaign_id")
	{
		campaigns.GET("/faqs", h.CampaignContent.ListFAQs)
		campaigns.POST("/faqs", h.CampaignContent.AddFAQ)
		campaigns.GET("/lead-investors", h.CampaignContent.ListLeadInvestors)
		campaigns.POST("/lead-investors", h.CampaignContent.AddLeadInvestor)
		campaigns.GET("/extras", h.CampaignContent.ListExtras)
		campaigns.POST("/extras", h.CampaignContent.AddExtra)
	}

	// Sub-resource items are addressed by their own public id.
	content := r.Group("/campaign-content")
	{
		content.PUT("/faqs/:id", h.CampaignContent.UpdateFAQ)
		content.DELETE("/faqs/:id", h.CampaignContent.DeleteFAQ)
		content.PUT("/lead-investors/:id", h.CampaignContent.UpdateLeadInvestor)
		content.DELETE("/lead-investors/:id", h.CampaignContent.DeleteLeadInvestor)
		content.PUT("/extras/:id", h.CampaignContent.UpdateExtra)
		content.DELETE("/extras/:id", h.CampaignContent.DeleteExtra)
	}
}
