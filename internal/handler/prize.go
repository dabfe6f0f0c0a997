package handler

import (
	"context"
	"errors"
	"net/http"

	"housing-fixtures/internal/models"
	"housing-fixtures/internal/repository"
	"housing-fixtures/internal/service"

	"github.com/gin-gonic/gin"
)

// PrizeHandler handles stored prize lookups
type PrizeHandler struct {
	service PrizeService
}

// PrizeService interface for dependency injection
type PrizeService interface {
	GetPrize(context.Context, string) (*models.StoredPrize, error)
}

// NewPrizeHandler creates a new prize handler
func NewPrizeHandler(svc PrizeService) *PrizeHandler {
	return &PrizeHandler{service: svc}
}

// GetPrize handles GET /prizes/:id requests
//
//	@Summary	Get an imported prize
//	@Produce	json
//	@Param		id	path		string	true	"prize id, <year>-<index>"
//	@Success	200	{object}	models.StoredPrize
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/prizes/{id} [get]
func (h *PrizeHandler) GetPrize(c *gin.Context) {
	prize, err := h.service.GetPrize(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPrizeID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prize id"})
		case errors.Is(err, repository.ErrPrizeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "prize not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, prize)
}
