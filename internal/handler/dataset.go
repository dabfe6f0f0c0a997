package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"housing-fixtures/internal/generator"
	"housing-fixtures/internal/models"

	"github.com/gin-gonic/gin"
)

// DatasetHandler handles dataset generation requests
type DatasetHandler struct {
	service  DatasetService
	defaults generator.Options
}

// DatasetService interface for dependency injection
type DatasetService interface {
	Generate(context.Context, generator.Options) (*models.HousingDataset, error)
}

// NewDatasetHandler creates a new dataset handler. Query parameters override defaults.
func NewDatasetHandler(svc DatasetService, defaults generator.Options) *DatasetHandler {
	return &DatasetHandler{service: svc, defaults: defaults}
}

// Generate handles GET /datasets requests
//
//	@Summary	Generate a housing dataset
//	@Produce	json
//	@Param		from			query	int		false	"first year"
//	@Param		to				query	int		false	"last year"
//	@Param		category		query	string	false	"category label"
//	@Param		per_year		query	int		false	"prizes per year"
//	@Param		anomaly_rate	query	number	false	"anomaly probability"
//	@Param		seed			query	int		false	"random seed"
//	@Success	200	{object}	models.HousingDataset
//	@Failure	400	{object}	map[string]string
//	@Router		/datasets [get]
func (h *DatasetHandler) Generate(c *gin.Context) {
	// A configured seed is not reused across requests; callers pass seed to reproduce a dataset.
	opts := h.defaults
	opts.Seed = 0

	var err error
	if opts.YearFrom, err = queryInt(c, "from", opts.YearFrom); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' format"})
		return
	}
	if opts.YearTo, err = queryInt(c, "to", opts.YearTo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' format"})
		return
	}
	if opts.RecordsPerYear, err = queryInt(c, "per_year", opts.RecordsPerYear); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'per_year' format"})
		return
	}
	if category := c.Query("category"); category != "" {
		opts.Category = category
	}
	if s := c.Query("anomaly_rate"); s != "" {
		if opts.AnomalyRate, err = strconv.ParseFloat(s, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'anomaly_rate' format"})
			return
		}
	}
	if s := c.Query("seed"); s != "" {
		if opts.Seed, err = strconv.ParseUint(s, 10, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'seed' format"})
			return
		}
	}

	dataset, err := h.service.Generate(c.Request.Context(), opts)
	if err != nil {
		if errors.Is(err, generator.ErrInvalidOptions) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid generation parameters"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dataset)
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return fallback, nil
	}
	return strconv.Atoi(s)
}
