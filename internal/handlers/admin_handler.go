package handlers

import (
	"net/http"

	"lexhub_backend/internal/logger"
	"lexhub_backend/internal/middleware"
	"lexhub_backend/internal/services"
	"lexhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler - модерация заявок юристов (только PLATFORM_ADMIN)
type AdminHandler struct {
	*BaseHandler
	lawyerService services.LawyerService
	gate          *middleware.IdentityGate
}

func NewAdminHandler(base *BaseHandler, lawyerService services.LawyerService, gate *middleware.IdentityGate) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   base,
		lawyerService: lawyerService,
		gate:          gate,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/lawyers")
	admin.Use(h.gate.RequireAdmin())
	{
		admin.GET("/pending", h.ListPending)
		admin.POST("/:id/approve", h.Decide)
	}
}

// ListPending godoc
// @Summary Очередь модерации
// @Description Заявки в статусе PENDING_VERIFICATION, старые первыми
// @Tags admin
// @Produce json
// @Security SessionToken
// @Success 200 {array} dto.PendingLawyer
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /admin/lawyers/pending [get]
func (h *AdminHandler) ListPending(c *gin.Context) {
	lawyers, err := h.lawyerService.ListPending(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lawyers)
}

// Decide godoc
// @Summary Одобрить или отклонить заявку
// @Tags admin
// @Accept json
// @Produce json
// @Security SessionToken
// @Param id path string true "ID профиля юриста"
// @Param request body dto.ModerationRequest true "action: approve | reject"
// @Success 200 {object} dto.ModerationResponse
// @Failure 400 {object} apperrors.ErrorResponse "Неверное действие или заявка уже рассмотрена"
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/lawyers/{id}/approve [post]
func (h *AdminHandler) Decide(c *gin.Context) {
	var req dto.ModerationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	lawyerID := c.Param("id")
	result, err := h.lawyerService.Decide(h.GetDB(c), lawyerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Lawyer application reviewed", "lawyer_id", lawyerID, "action", req.Action)
	c.JSON(http.StatusOK, result)
}
