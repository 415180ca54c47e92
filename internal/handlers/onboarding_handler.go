package handlers

import (
	"net/http"

	"lexhub_backend/internal/middleware"
	"lexhub_backend/internal/services"
	"lexhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	*BaseHandler
	lawyerService services.LawyerService
	gate          *middleware.IdentityGate
}

func NewOnboardingHandler(base *BaseHandler, lawyerService services.LawyerService, gate *middleware.IdentityGate) *OnboardingHandler {
	return &OnboardingHandler{
		BaseHandler:   base,
		lawyerService: lawyerService,
		gate:          gate,
	}
}

func (h *OnboardingHandler) RegisterRoutes(r *gin.RouterGroup) {
	lawyer := r.Group("/lawyer")
	lawyer.Use(h.gate.RequireAuth())
	{
		lawyer.POST("/onboard", h.Onboard)
	}
}

// Onboard godoc
// @Summary Заявка юриста
// @Description Создает профиль в статусе PENDING_VERIFICATION и повышает пользователя до LAWYER
// @Tags lawyer
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body dto.OnboardLawyerRequest true "Данные профиля"
// @Success 200 {object} dto.OnboardLawyerResponse
// @Failure 400 {object} apperrors.ErrorResponse "Не заполнены поля, профиль или номер лицензии уже есть"
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /lawyer/onboard [post]
func (h *OnboardingHandler) Onboard(c *gin.Context) {
	identity, ok := h.CurrentIdentity(c)
	if !ok {
		return
	}

	var req dto.OnboardLawyerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.lawyerService.Submit(h.GetDB(c), identity.UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
