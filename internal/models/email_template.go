package models

// Email template tasks. At most one template exists per (task, language).
const (
	EmailTaskWelcome           = "welcome"
	EmailTaskVerifyEmail       = "verify_email"
	EmailTaskForgotPassword    = "forgot_password"
	EmailTaskInvestmentReceipt = "investment_receipt"
	EmailTaskCampaignApproved  = "campaign_approved"
	EmailTaskCampaignRejected  = "campaign_rejected"
	EmailTaskPayoutProcessed   = "payout_processed"
)

type EmailTemplate struct {
	Base       `gorm:"embedded"`
	LanguageID ID           `json:"-" gorm:"column:language_id;index"`
	Language   *LanguageRef `json:"language,omitempty" gorm:"-"`
	Task       string       `json:"task" gorm:"column:task;index"`
	Subject    string       `json:"subject" gorm:"column:subject"`
	FromName   string       `json:"from_name" gorm:"column:from_name"`
	FromEmail  string       `json:"from_email" gorm:"column:from_email"`
	Content    string       `json:"content" gorm:"column:content;type:text"`
	IsActive   bool         `json:"is_active" gorm:"column:is_active"`
}

func (t *EmailTemplate) GetLanguageID() ID            { return t.LanguageID }
func (t *EmailTemplate) SetLanguage(ref *LanguageRef) { t.Language = ref }
