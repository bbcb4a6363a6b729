package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	pingers map[string]Pinger
}

func NewHealthHandler(pingers map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		pingers: pingers,
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	for name, ping := range h.pingers {
		if err := ping(c.Request.Context()); err != nil {
			logrus.Errorf("health check %s failed: %v", name, err)
			c.JSON(http.StatusServiceUnavailable, response.Fail(name+" unavailable"))
			return
		}
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
