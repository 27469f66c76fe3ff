package http

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IStatusHandler interface {
	Healthz(c *gin.Context)
}

type StatusHandler struct {
	db *sql.DB
}

func NewStatusHandler(db *sql.DB) IStatusHandler {
	return &StatusHandler{db: db}
}

// Healthz returns OK for health checks. Database reachability is reported
// but does not fail the check; the map degrades rather than going dark.
func (h *StatusHandler) Healthz(ctx *gin.Context) {
	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "unavailable"
	} else if err := h.db.PingContext(ctx.Request.Context()); err != nil {
		dbStatus = "unreachable"
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "database": dbStatus})
}
