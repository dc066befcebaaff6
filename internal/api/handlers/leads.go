package handlers

import (
	"net/http"

	"github.com/cmac111/scraper/internal/models"
	"github.com/cmac111/scraper/internal/repository"
	"github.com/cmac111/scraper/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type LeadsHandler struct {
	leads  models.BusinessLeadRepository
	logger *logrus.Logger
}

func NewLeadsHandler(leads models.BusinessLeadRepository, logger *logrus.Logger) *LeadsHandler {
	return &LeadsHandler{
		leads:  leads,
		logger: logger,
	}
}

// HandleListLeads lists stored business leads
func (h *LeadsHandler) HandleListLeads(c *gin.Context) {
	leads, err := h.leads.List(repository.MaxListResults)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list leads")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list leads", err)
		return
	}

	if leads == nil {
		leads = make([]models.BusinessLead, 0)
	}
	c.JSON(http.StatusOK, leads)
}

// HandleClearLeads removes every stored lead and reports the count
func (h *LeadsHandler) HandleClearLeads(c *gin.Context) {
	deleted, err := h.leads.DeleteAll()
	if err != nil {
		h.logger.WithError(err).Error("Failed to clear leads")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to clear leads", err)
		return
	}

	h.logger.WithField("deleted_count", deleted).Info("Cleared business leads")
	c.JSON(http.StatusOK, models.DeleteLeadsResponse{DeletedCount: deleted})
}
