package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"walkingtube/infrastructure/configuration"
)

type IConfigHandler interface {
	ClientConfig(ctx *gin.Context)
}

type ConfigHandler struct{}

func NewConfigHandler() IConfigHandler {
	return &ConfigHandler{}
}

// ClientConfig exposes the settings the map client needs at runtime. When a
// required setting is absent the client gets a clear failure instead of a
// half-working map.
func (h *ConfigHandler) ClientConfig(ctx *gin.Context) {
	if missing := configuration.MissingRequired(); len(missing) > 0 {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "service is not fully configured",
			"missing": missing,
		})
		return
	}

	mapbox := configuration.C.Mapbox
	ctx.JSON(http.StatusOK, gin.H{
		"mapbox": gin.H{
			"accessToken": mapbox.AccessToken,
			"style":       mapbox.Style,
			"language":    mapbox.Language,
		},
	})
}
