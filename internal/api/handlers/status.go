package handlers

import (
	"net/http"

	"github.com/cmac111/scraper/internal/models"
	"github.com/cmac111/scraper/internal/repository"
	"github.com/cmac111/scraper/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type StatusHandler struct {
	statusChecks models.StatusCheckRepository
	logger       *logrus.Logger
}

func NewStatusHandler(statusChecks models.StatusCheckRepository, logger *logrus.Logger) *StatusHandler {
	return &StatusHandler{
		statusChecks: statusChecks,
		logger:       logger,
	}
}

// HandleRoot serves the API banner
func (h *StatusHandler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Google Maps Scraper API"})
}

// HandleCreateStatus records a client status check
func (h *StatusHandler) HandleCreateStatus(c *gin.Context) {
	var input models.StatusCheckCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	check := &models.StatusCheck{ClientName: input.ClientName}
	if err := h.statusChecks.Create(check); err != nil {
		h.logger.WithError(err).Error("Failed to save status check")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to save status check", err)
		return
	}

	h.logger.WithField("client_name", check.ClientName).Info("Status check recorded")
	c.JSON(http.StatusOK, check)
}

// HandleListStatus lists recorded status checks
func (h *StatusHandler) HandleListStatus(c *gin.Context) {
	checks, err := h.statusChecks.List(repository.MaxListResults)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list status checks")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list status checks", err)
		return
	}

	if checks == nil {
		checks = make([]models.StatusCheck, 0)
	}
	c.JSON(http.StatusOK, checks)
}
