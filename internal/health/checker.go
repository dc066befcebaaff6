package health

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger exposes the connection probes the checker needs. Satisfied by
// database.Manager.
type Pinger interface {
	PingDatabase() error
	PingRedis() error
}

// Checker runs dependency health checks on demand
type Checker struct {
	pinger Pinger
	logger *logrus.Logger
}

func NewChecker(pinger Pinger, logger *logrus.Logger) *Checker {
	return &Checker{
		pinger: pinger,
		logger: logger,
	}
}

// ServiceHealth represents the health status of one dependency
type ServiceHealth struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	ResponseTime int    `json:"response_time_ms"`
	Error        string `json:"error,omitempty"`
	LastChecked  string `json:"last_checked"`
}

// OverallHealth represents the rolled-up system health
type OverallHealth struct {
	Status   string          `json:"status"`
	Services []ServiceHealth `json:"services"`
	Uptime   string          `json:"uptime"`
}

// CheckPostgreSQL checks database health
func (h *Checker) CheckPostgreSQL() ServiceHealth {
	return h.check("postgresql", h.pinger.PingDatabase)
}

// CheckRedis checks cache health
func (h *Checker) CheckRedis() ServiceHealth {
	return h.check("redis", h.pinger.PingRedis)
}

func (h *Checker) check(name string, ping func() error) ServiceHealth {
	start := time.Now()
	err := ping()
	responseTime := int(time.Since(start).Milliseconds())

	status := "healthy"
	errorMsg := ""
	if err != nil {
		status = "unhealthy"
		errorMsg = err.Error()
		h.logger.WithError(err).Errorf("%s health check failed", name)
	}

	return ServiceHealth{
		Name:         name,
		Status:       status,
		ResponseTime: responseTime,
		Error:        errorMsg,
		LastChecked:  time.Now().Format(time.RFC3339),
	}
}

// CheckAll performs health checks on every dependency
func (h *Checker) CheckAll() OverallHealth {
	services := []ServiceHealth{
		h.CheckPostgreSQL(),
		h.CheckRedis(),
	}

	overallStatus := "healthy"
	for _, service := range services {
		if service.Status == "unhealthy" {
			overallStatus = "unhealthy"
			break
		}
	}

	return OverallHealth{
		Status:   overallStatus,
		Services: services,
		Uptime:   uptime(),
	}
}

var startTime = time.Now()

func uptime() string {
	return time.Since(startTime).String()
}
