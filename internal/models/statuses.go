package models

import "strings"

type UserRole string
type UserStatus string
type LawyerStatus string
type ConsultationStatus string
type ConsultationType string
type CategoryKey string
type Language string

const (
	UserRoleClient        UserRole = "CLIENT"
	UserRoleLawyer        UserRole = "LAWYER"
	UserRoleFirmAdmin     UserRole = "FIRM_ADMIN"
	UserRolePlatformAdmin UserRole = "PLATFORM_ADMIN"

	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusDeleted   UserStatus = "DELETED"

	// SUSPENDED зарезервирован, переходов в него пока нет
	LawyerStatusPending   LawyerStatus = "PENDING_VERIFICATION"
	LawyerStatusApproved  LawyerStatus = "APPROVED"
	LawyerStatusRejected  LawyerStatus = "REJECTED"
	LawyerStatusSuspended LawyerStatus = "SUSPENDED"

	ConsultationStatusRequested ConsultationStatus = "REQUESTED"
	ConsultationStatusConfirmed ConsultationStatus = "CONFIRMED"
	ConsultationStatusCompleted ConsultationStatus = "COMPLETED"
	ConsultationStatusCancelled ConsultationStatus = "CANCELLED"

	ConsultationTypeInitial  ConsultationType = "INITIAL_CONSULT"
	ConsultationTypeFollowUp ConsultationType = "FOLLOW_UP"
)

const (
	CategoryFamilyLaw        CategoryKey = "FAMILY_LAW"
	CategoryConsumerDebt     CategoryKey = "CONSUMER_DEBT"
	CategoryHousingLandlord  CategoryKey = "HOUSING_LANDLORD"
	CategoryWillsEstates     CategoryKey = "WILLS_ESTATES"
	CategoryImmigration      CategoryKey = "IMMIGRATION"
	CategoryCryptoCompliance CategoryKey = "CRYPTO_COMPLIANCE"
)

const (
	LanguageEnglish    Language = "ENGLISH"
	LanguageSpanish    Language = "SPANISH"
	LanguageChinese    Language = "CHINESE"
	LanguageMandarin   Language = "MANDARIN"
	LanguageCantonese  Language = "CANTONESE"
	LanguageKorean     Language = "KOREAN"
	LanguageVietnamese Language = "VIETNAMESE"
	LanguageFrench     Language = "FRENCH"
	LanguageArabic     Language = "ARABIC"
	LanguageRussian    Language = "RUSSIAN"
	LanguagePortuguese Language = "PORTUGUESE"
	LanguageJapanese   Language = "JAPANESE"
	LanguageTagalog    Language = "TAGALOG"
	LanguageHindi      Language = "HINDI"
	LanguageGerman     Language = "GERMAN"
)

var userRoles = []UserRole{UserRoleClient, UserRoleLawyer, UserRoleFirmAdmin, UserRolePlatformAdmin}

var categoryKeys = []CategoryKey{
	CategoryFamilyLaw, CategoryConsumerDebt, CategoryHousingLandlord,
	CategoryWillsEstates, CategoryImmigration, CategoryCryptoCompliance,
}

var languages = []Language{
	LanguageEnglish, LanguageSpanish, LanguageChinese, LanguageMandarin, LanguageCantonese,
	LanguageKorean, LanguageVietnamese, LanguageFrench, LanguageArabic, LanguageRussian,
	LanguagePortuguese, LanguageJapanese, LanguageTagalog, LanguageHindi, LanguageGerman,
}

func (r UserRole) IsValid() bool {
	for _, v := range userRoles {
		if v == r {
			return true
		}
	}
	return false
}

func (k CategoryKey) IsValid() bool {
	for _, v := range categoryKeys {
		if v == k {
			return true
		}
	}
	return false
}

// CategoryKeys возвращает закрытый список ключей категорий
func CategoryKeys() []CategoryKey {
	return append([]CategoryKey(nil), categoryKeys...)
}

// ParseLanguage нормализует ввод ("English", " english ") к значению enum
func ParseLanguage(s string) (Language, bool) {
	l := Language(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range languages {
		if v == l {
			return l, true
		}
	}
	return "", false
}
