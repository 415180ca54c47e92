package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	IdentityService  IdentityService
	LawyerService    LawyerService
	DirectoryService DirectoryService
	CategoryService  CategoryService
	ChatService      ChatService
}
