package models

type Currency struct {
	Base      `gorm:"embedded"`
	Name      string  `json:"name" gorm:"column:name"`
	Code      string  `json:"code" gorm:"column:code;index"`
	Symbol    string  `json:"symbol" gorm:"column:symbol"`
	Rate      float64 `json:"rate" gorm:"column:rate"`
	UseCount  int64   `json:"use_count" gorm:"column:use_count"`
	IsActive  bool    `json:"is_active" gorm:"column:is_active"`
	IsDefault bool    `json:"is_default" gorm:"column:is_default"`
}
