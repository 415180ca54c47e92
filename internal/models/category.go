package models

type Category struct {
	BaseModel
	Key      CategoryKey `gorm:"type:varchar(32);uniqueIndex;not null" json:"key"`
	NameEn   string      `gorm:"not null" json:"nameEn"`
	NameZhCn string      `json:"nameZhCn"`
	NameZhTw string      `json:"nameZhTw"`
	DescEn   string      `gorm:"type:text" json:"descEn"`
	DescZhCn string      `gorm:"type:text" json:"descZhCn"`
	DescZhTw string      `gorm:"type:text" json:"descZhTw"`
	Icon     string      `json:"icon"`
	Order    int         `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive bool        `gorm:"not null;default:true" json:"isActive"`

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories,omitempty"`
}

// Name возвращает название на нужной локали, по умолчанию английское
func (c *Category) Name(locale string) string {
	switch locale {
	case "zh-CN":
		if c.NameZhCn != "" {
			return c.NameZhCn
		}
	case "zh-TW":
		if c.NameZhTw != "" {
			return c.NameZhTw
		}
	}
	return c.NameEn
}

type Subcategory struct {
	BaseModel
	CategoryID string `gorm:"type:uuid;not null;index" json:"categoryId"`
	NameEn     string `gorm:"not null" json:"nameEn"`
	NameZhCn   string `json:"nameZhCn"`
	NameZhTw   string `json:"nameZhTw"`
	Order      int    `gorm:"column:sort_order;not null;default:0" json:"order"`
}
