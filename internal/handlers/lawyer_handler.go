package handlers

import (
	"net/http"

	"lexhub_backend/internal/services"
	"lexhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// LawyerHandler - публичный каталог и карточка юриста
type LawyerHandler struct {
	*BaseHandler
	directoryService services.DirectoryService
	lawyerService    services.LawyerService
}

func NewLawyerHandler(base *BaseHandler, directoryService services.DirectoryService, lawyerService services.LawyerService) *LawyerHandler {
	return &LawyerHandler{
		BaseHandler:      base,
		directoryService: directoryService,
		lawyerService:    lawyerService,
	}
}

func (h *LawyerHandler) RegisterRoutes(r *gin.RouterGroup) {
	lawyers := r.Group("/lawyers")
	{
		lawyers.GET("", h.SearchLawyers)
		lawyers.GET("/:id", h.GetLawyer)
	}
}

// SearchLawyers godoc
// @Summary Поиск юристов
// @Description Одобренные юристы по категории, городу/штату, языку и ставке. Сортировка: рейтинг, консультации, id.
// @Tags lawyers
// @Produce json
// @Param category query string false "Ключ категории, например FAMILY_LAW"
// @Param location query string false "Город или штат (подстрока, без учета регистра)"
// @Param language query string false "Язык, например SPANISH"
// @Param minRate query number false "Минимальная ставка в час"
// @Param maxRate query number false "Максимальная ставка в час"
// @Param page query int false "Страница (с 1)"
// @Param limit query int false "Размер страницы (по умолчанию 12, максимум 100)"
// @Success 200 {object} dto.SearchLawyersResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /lawyers [get]
func (h *LawyerHandler) SearchLawyers(c *gin.Context) {
	var req dto.SearchLawyersRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	result, err := h.directoryService.Search(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLawyer godoc
// @Summary Карточка юриста
// @Description Только одобренные профили; последние 10 отзывов
// @Tags lawyers
// @Produce json
// @Param id path string true "ID профиля юриста"
// @Success 200 {object} dto.LawyerDetailResponse
// @Failure 403 {object} apperrors.ErrorResponse "Профиль не одобрен"
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /lawyers/{id} [get]
func (h *LawyerHandler) GetLawyer(c *gin.Context) {
	lawyer, err := h.lawyerService.GetPublicProfile(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lawyer)
}
