package models

// MetaSetting holds the site-wide SEO metadata for one language. At most one
// record exists per language.
type MetaSetting struct {
	Base        `gorm:"embedded"`
	LanguageID  ID           `json:"-" gorm:"column:language_id;uniqueIndex"`
	Language    *LanguageRef `json:"language,omitempty" gorm:"-"`
	Title       string       `json:"title" gorm:"column:title"`
	Keywords    string       `json:"keywords" gorm:"column:keywords"`
	Description string       `json:"description" gorm:"column:description;type:text"`
	OgImageURL  string       `json:"og_image_url" gorm:"column:og_image_url"`
	IsActive    bool         `json:"is_active" gorm:"column:is_active"`
}

func (m *MetaSetting) GetLanguageID() ID            { return m.LanguageID }
func (m *MetaSetting) SetLanguage(ref *LanguageRef) { m.Language = ref }
