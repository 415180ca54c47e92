package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	CategoryHandler   *CategoryHandler
	LawyerHandler     *LawyerHandler
	OnboardingHandler *OnboardingHandler
	AdminHandler      *AdminHandler
	ChatHandler       *ChatHandler
	HealthHandler     *HealthHandler
}
