package dto

// ChatTurn - реплика из истории диалога, которую присылает клиент
type ChatTurn struct {
	Role    string `json:"role" validate:"required,is-chat-role"`
	Content string `json:"content" validate:"max=8000"`
}

// ChatRequest - пустой message отклоняет сервис ("Message is required")
type ChatRequest struct {
	Message             string     `json:"message" validate:"max=8000"`
	Category            string     `json:"category" validate:"omitempty,max=64"`
	ConversationHistory []ChatTurn `json:"conversationHistory" validate:"omitempty,max=50,dive"`
}

type ChatResponse struct {
	Response         string  `json:"response"`
	LawyerSuggestion *string `json:"lawyerSuggestion"`
	Timestamp        string  `json:"timestamp"`
}
