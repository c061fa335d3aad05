package models

// Text direction of a language.
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

type Language struct {
	Base      `gorm:"embedded"`
	Name      string `json:"name" gorm:"column:name"`
	Folder    string `json:"folder" gorm:"column:folder;index"`
	Direction string `json:"direction" gorm:"column:direction"`
	IsActive  bool   `json:"is_active" gorm:"column:is_active"`
	IsDefault bool   `json:"is_default" gorm:"column:is_default"`
}
