package handlers

import (
	"errors"
	"net/http"

	"github.com/cmac111/scraper/internal/models"
	"github.com/cmac111/scraper/internal/services"
	"github.com/cmac111/scraper/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SearchHandler struct {
	searchService *services.SearchService
	logger        *logrus.Logger
}

func NewSearchHandler(searchService *services.SearchService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// HandleSearch processes business search requests
func (h *SearchHandler) HandleSearch(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid search request")
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"query":    req.Query,
		"location": req.Location,
		"radius":   req.Radius,
	}).Info("Processing search request")

	resp, err := h.searchService.Search(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrLocationNotFound) {
			utils.ErrorResponse(c, http.StatusBadRequest, "Location not found", nil)
			return
		}
		h.logger.WithError(err).Error("Search error")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Search failed", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
