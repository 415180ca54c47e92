package models

import (
	"time"

	"github.com/lib/pq"
)

type LawyerProfile struct {
	BaseModel
	UserID           string         `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	FirstName        string         `gorm:"not null" json:"firstName"`
	LastName         string         `gorm:"not null" json:"lastName"`
	BarNumber        string         `gorm:"uniqueIndex;not null" json:"barNumber"`
	BarState         string         `gorm:"type:varchar(8);not null" json:"barState"`
	BarAdmissionDate *time.Time     `json:"barAdmissionDate,omitempty"`
	YearsExperience  int            `gorm:"not null;default:0" json:"yearsExperience"`
	Bio              string         `gorm:"type:text" json:"bio,omitempty"`
	LawSchool        string         `json:"lawSchool,omitempty"`
	Certifications   pq.StringArray `gorm:"type:text[]" json:"certifications"`
	OfficePhone      string         `json:"officePhone,omitempty"`
	OfficeAddress    string         `json:"officeAddress,omitempty"`
	City             string         `gorm:"index" json:"city,omitempty"`
	State            string         `gorm:"index" json:"state,omitempty"`
	ZipCode          string         `json:"zipCode,omitempty"`
	Website          string         `json:"website,omitempty"`

	// nil - ставка не указана, такой профиль не попадает в фильтр по ставке
	HourlyRate      *float64 `gorm:"type:numeric(10,2)" json:"hourlyRate"`
	ConsultationFee *float64 `gorm:"type:numeric(10,2)" json:"consultationFee"`

	AverageRating      float64 `gorm:"not null;default:0" json:"averageRating"`
	TotalConsultations int     `gorm:"not null;default:0" json:"totalConsultations"`

	Status            LawyerStatus `gorm:"type:varchar(32);not null;default:'PENDING_VERIFICATION';index" json:"status"`
	VerificationNotes *string      `gorm:"type:text" json:"verificationNotes"`
	ApprovedAt        *time.Time   `json:"approvedAt"`

	// Relations
	User          *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Categories    []LawyerCategory `gorm:"foreignKey:LawyerID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	Languages     []LawyerLanguage `gorm:"foreignKey:LawyerID;constraint:OnDelete:CASCADE" json:"languages,omitempty"`
	Documents     []Document       `gorm:"foreignKey:LawyerID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	Reviews       []Review         `gorm:"foreignKey:LawyerID" json:"reviews,omitempty"`
	Consultations []Consultation   `gorm:"foreignKey:LawyerID" json:"-"`
}

func (p *LawyerProfile) IsPending() bool {
	return p.Status == LawyerStatusPending
}

func (p *LawyerProfile) IsApproved() bool {
	return p.Status == LawyerStatusApproved
}

// PrimaryCategory возвращает основную практику, если она есть
func (p *LawyerProfile) PrimaryCategory() *LawyerCategory {
	for i := range p.Categories {
		if p.Categories[i].IsPrimary {
			return &p.Categories[i]
		}
	}
	return nil
}

// LawyerCategory - связь юрист/категория. Не больше одной isPrimary на юриста
// (частичный уникальный индекс в database.AutoMigrate).
type LawyerCategory struct {
	BaseModel
	LawyerID   string `gorm:"type:uuid;not null;uniqueIndex:idx_lawyer_category" json:"lawyerId"`
	CategoryID string `gorm:"type:uuid;not null;uniqueIndex:idx_lawyer_category" json:"categoryId"`
	IsPrimary  bool   `gorm:"not null;default:false" json:"isPrimary"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

type LawyerLanguage struct {
	BaseModel
	LawyerID  string   `gorm:"type:uuid;not null;uniqueIndex:idx_lawyer_language" json:"lawyerId"`
	Language  Language `gorm:"type:varchar(32);not null;uniqueIndex:idx_lawyer_language" json:"language"`
	IsPrimary bool     `gorm:"not null;default:false" json:"isPrimary"`
}

// Document - загруженный документ для проверки. Только чтение.
type Document struct {
	BaseModel
	LawyerID   string    `gorm:"type:uuid;not null;index" json:"lawyerId"`
	Type       string    `gorm:"type:varchar(32);not null" json:"type"`
	FileURL    string    `gorm:"not null" json:"fileUrl"`
	UploadedAt time.Time `gorm:"not null;default:now()" json:"uploadedAt"`
}
