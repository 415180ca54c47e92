package handlers

import (
	"net/http"

	"lexhub_backend/internal/services"
	"lexhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
	rateLimit   gin.HandlerFunc
}

// NewChatHandler - rateLimit может быть nil (без ограничения)
func NewChatHandler(base *BaseHandler, chatService services.ChatService, rateLimit gin.HandlerFunc) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
		rateLimit:   rateLimit,
	}
}

func (h *ChatHandler) RegisterRoutes(r *gin.RouterGroup) {
	chat := r.Group("/chat")
	if h.rateLimit != nil {
		chat.Use(h.rateLimit)
	}
	{
		chat.POST("", h.Chat)
	}
}

// Chat godoc
// @Summary Юридический AI-ассистент
// @Description Один ход диалога. Историю хранит клиент; после 4 реплик в категории добавляется подсказка о типе юриста.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Сообщение, категория и история"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} apperrors.ErrorResponse "Message is required"
// @Failure 429 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse "Failed to generate response"
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.chatService.Reply(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
