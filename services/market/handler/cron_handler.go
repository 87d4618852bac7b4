package handler

import (
	"net/http"
	"time"

	sweeper "lot-market/internal/sweeperService"
	"lot-market/services/market/helpers"
	"lot-market/utils"

	"github.com/gin-gonic/gin"
)

type SweeperServiceInterface interface {
	SweepExpired(now time.Time) (sweeper.SweepResult, error)
}

type CronHandler struct {
	service SweeperServiceInterface
}

func NewCronHandler(service SweeperServiceInterface) *CronHandler {
	return &CronHandler{service: service}
}

// CleanupHandler handles POST /api/cron/cleanup, invoked by the external
// scheduler. An optional `now` query parameter (RFC 3339) overrides the sweep
// reference time, which the tests rely on.
func (h *CronHandler) CleanupHandler(c *gin.Context) {
	now := time.Now().UTC()
	if raw := c.Query("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			helpers.HandleBindError(c, "CleanupHandler", err)
			return
		}
		now = parsed
	}

	result, err := h.service.SweepExpired(now)
	if err != nil {
		helpers.RespondError(c, "CleanupHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "cleanup completed")
	helpers.LogSuccess("CleanupHandler", "cleanup completed", map[string]any{
		"deactivated": result.DeactivatedCount,
	})
}
