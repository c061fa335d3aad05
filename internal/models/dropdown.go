package models

// Dropdown taxonomy types managed through the admin panel.
const (
	DropdownTypeCategory   = "category"
	DropdownTypeIndustry   = "industry"
	DropdownTypeInvestType = "investment_type"
	DropdownTypeDealType   = "deal_type"
	DropdownTypeTeamRole   = "team_member_role"
)

// ManageDropdown is one language variant of a dropdown option. Variants of the
// same logical option across languages share a UniqueCode.
type ManageDropdown struct {
	Base       `gorm:"embedded"`
	LanguageID ID           `json:"-" gorm:"column:language_id;index"`
	Language   *LanguageRef `json:"language,omitempty" gorm:"-"`
	Type       string       `json:"type" gorm:"column:type;index"`
	Name       string       `json:"name" gorm:"column:name"`
	UniqueCode int64        `json:"unique_code" gorm:"column:unique_code;index"`
	UseCount   int64        `json:"use_count" gorm:"column:use_count"`
	IsActive   bool         `json:"is_active" gorm:"column:is_active"`
}

func (d *ManageDropdown) GetLanguageID() ID           { return d.LanguageID }
func (d *ManageDropdown) SetLanguage(ref *LanguageRef) { d.Language = ref }
