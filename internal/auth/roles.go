package auth

import "lexhub_backend/internal/models"

// Allow-lists по операциям. Роли - закрытый enum, наследования нет.
var (
	ClientOnly        = []models.UserRole{models.UserRoleClient}
	LawyerOnly        = []models.UserRole{models.UserRoleLawyer}
	FirmAdminOnly     = []models.UserRole{models.UserRoleFirmAdmin}
	AdminOnly         = []models.UserRole{models.UserRolePlatformAdmin}
	LawyerOrFirmAdmin = []models.UserRole{models.UserRoleLawyer, models.UserRoleFirmAdmin}
	LawyerOrAdmin     = []models.UserRole{models.UserRoleLawyer, models.UserRoleFirmAdmin, models.UserRolePlatformAdmin}
)

// Allows проверяет роль по allow-list. Неизвестная роль не проходит никогда.
func Allows(allowed []models.UserRole, role models.UserRole) bool {
	if !role.IsValid() {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
