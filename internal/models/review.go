package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Consultation struct {
	BaseModel
	ClientID          string             `gorm:"type:uuid;not null;index" json:"clientId"`
	LawyerID          string             `gorm:"type:uuid;not null;index" json:"lawyerId"`
	CategoryID        string             `gorm:"type:uuid;not null" json:"categoryId"`
	Type              ConsultationType   `gorm:"type:varchar(32);not null;default:'INITIAL_CONSULT'" json:"type"`
	Status            ConsultationStatus `gorm:"type:varchar(32);not null;default:'REQUESTED'" json:"status"`
	ScheduledAt       time.Time          `gorm:"not null" json:"scheduledAt"`
	ClientDescription string             `gorm:"type:text" json:"clientDescription,omitempty"`

	Client *ClientProfile `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// Review принадлежит консультации и денормализован на профиль юриста.
// Comment - jsonb вида {"en": "...", "zh-CN": "...", "zh-TW": "..."}.
type Review struct {
	BaseModel
	ConsultationID  string         `gorm:"type:uuid;uniqueIndex;not null" json:"consultationId"`
	LawyerID        string         `gorm:"type:uuid;not null;index" json:"lawyerId"`
	Rating          int            `gorm:"not null" json:"rating"`
	Professionalism *int           `json:"professionalism"`
	Communication   *int           `json:"communication"`
	Value           *int           `json:"value"`
	Comment         datatypes.JSON `gorm:"type:jsonb" json:"comment"`

	Consultation *Consultation `gorm:"foreignKey:ConsultationID" json:"consultation,omitempty"`
}

// GetComments возвращает комментарии по локалям
func (r *Review) GetComments() map[string]string {
	comments := map[string]string{}
	if len(r.Comment) > 0 {
		_ = json.Unmarshal(r.Comment, &comments)
	}
	return comments
}

// SetComments сохраняет только непустые локали
func (r *Review) SetComments(comments map[string]string) {
	clean := make(map[string]string, len(comments))
	for locale, text := range comments {
		if text != "" {
			clean[locale] = text
		}
	}
	data, _ := json.Marshal(clean)
	r.Comment = datatypes.JSON(data)
}

// CommentFor - комментарий на локали с откатом на английский
func (r *Review) CommentFor(locale string) string {
	comments := r.GetComments()
	if c, ok := comments[locale]; ok {
		return c
	}
	return comments["en"]
}
