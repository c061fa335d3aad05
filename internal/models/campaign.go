package models

// Campaign sub-resources managed through the admin panel. The campaign record
// itself lives in another service; sub-resources reference it by public id.

type CampaignFAQ struct {
	Base       `gorm:"embedded"`
	CampaignID PublicID `json:"campaign_id" gorm:"column:campaign_id;index"`
	Question   string   `json:"question" gorm:"column:question"`
	Answer     string   `json:"answer" gorm:"column:answer;type:text"`
	SortOrder  int      `json:"sort_order" gorm:"column:sort_order"`
	IsActive   bool     `json:"is_active" gorm:"column:is_active"`
}

type LeadInvestor struct {
	Base       `gorm:"embedded"`
	CampaignID PublicID `json:"campaign_id" gorm:"column:campaign_id;index"`
	Name       string   `json:"name" gorm:"column:name"`
	Title      string   `json:"title" gorm:"column:title"`
	PhotoURL   string   `json:"photo_url" gorm:"column:photo_url"`
	Bio        string   `json:"bio" gorm:"column:bio;type:text"`
	Amount     float64  `json:"amount" gorm:"column:amount"`
	IsActive   bool     `json:"is_active" gorm:"column:is_active"`
}

// CampaignExtra is a free-form "additional information" block shown on the
// campaign page (press mentions, documents, perks).
type CampaignExtra struct {
	Base       `gorm:"embedded"`
	CampaignID PublicID `json:"campaign_id" gorm:"column:campaign_id;index"`
	Title      string   `json:"title" gorm:"column:title"`
	Content    string   `json:"content" gorm:"column:content;type:text"`
	LinkURL    string   `json:"link_url" gorm:"column:link_url"`
	SortOrder  int      `json:"sort_order" gorm:"column:sort_order"`
	IsActive   bool     `json:"is_active" gorm:"column:is_active"`
}
