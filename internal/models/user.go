package models

import "time"

type User struct {
	BaseModel
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Name        string     `json:"name,omitempty"`
	Image       string     `json:"image,omitempty"`
	Role        UserRole   `gorm:"type:varchar(20);not null;default:'CLIENT'" json:"role"`
	Status      UserStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	Locale      string     `gorm:"type:varchar(10);not null;default:'en'" json:"locale"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`

	// Relations
	LawyerProfile *LawyerProfile `gorm:"foreignKey:UserID" json:"lawyerProfile,omitempty"`
	ClientProfile *ClientProfile `gorm:"foreignKey:UserID" json:"clientProfile,omitempty"`
}

// IsActive - только активные пользователи проходят identity gate
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

type ClientProfile struct {
	BaseModel
	UserID          string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	PreferredLocale string `gorm:"type:varchar(10);not null;default:'en'" json:"preferredLocale"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
