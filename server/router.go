package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"walkingtube/domain/repository"
	"walkingtube/infrastructure/realtime"
	httpHandler "walkingtube/interfaces/http"
	"walkingtube/interfaces/middleware"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	videoHandler httpHandler.IVideoHandler,
	geocodeHandler httpHandler.IGeocodeHandler,
	previewHandler httpHandler.IPreviewHandler,
	configHandler httpHandler.IConfigHandler,
	statusHandler httpHandler.IStatusHandler,
	userRepository repository.IUser,
	videoHub *realtime.Hub,
	listener *realtime.Listener,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://localhost:3000", "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/login", userHandler.Login)
	router.POST("/register", userHandler.Register)
	router.GET("/healthz", statusHandler.Healthz)

	router.GET("/config", configHandler.ClientConfig)
	router.GET("/geocode", geocodeHandler.Search)
	router.GET("/youtube/preview", previewHandler.Preview)

	router.GET("/videos", videoHandler.List)
	router.GET("/videos/:videoId", videoHandler.GetByID)
	router.GET("/videos/stream", func(c *gin.Context) {
		videoHub.Serve(c, listener.Snapshot)
	})

	api := router.Group("api")
	api.Use(middleware.Auth(userRepository))
	api.POST("/videos", videoHandler.Create)
	api.DELETE("/videos/:videoId", videoHandler.Delete)

	return router
}
