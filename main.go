package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"walkingtube/infrastructure/cache"
	"walkingtube/infrastructure/clients/geocoding"
	youtubeclient "walkingtube/infrastructure/clients/youtube"
	"walkingtube/infrastructure/configuration"
	"walkingtube/infrastructure/logger"
	"walkingtube/infrastructure/persistence"
	"walkingtube/infrastructure/pubsub"
	"walkingtube/infrastructure/realtime"
	"walkingtube/infrastructure/servicebus"
	httpHandler "walkingtube/interfaces/http"
	"walkingtube/server"
	"walkingtube/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")
	configuration.Refresh()

	if missing := configuration.MissingRequired(); len(missing) > 0 {
		logger.GetLogger().WithField("missing", strings.Join(missing, ", ")).
			Error("Required configuration is absent; refusing to start")
		os.Exit(1)
	}

	app := configuration.C.App

	psqlDb, err := persistence.NewPostgreSQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to PostgreSQL")
		os.Exit(1)
	}
	if err := persistence.EnsureSchema(psqlDb); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while ensuring schema")
		os.Exit(1)
	}
	logger.GetLogger().Info("Database connected.")

	redisClient, _ := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)

	pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Google Pub/Sub not available - continuing without it")
		pubSubClient = nil
	}
	azServiceBusClient, err := servicebus.NewServiceBus(ctx, configuration.C.ServiceBus.Namespace)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without it")
		azServiceBusClient = nil
	}

	userRepository := persistence.NewUserRepository(psqlDb)
	videoRepository := persistence.NewVideoRepository(psqlDb)
	videoCache := cache.NewVideoCache(redisClient)
	geocodeCache := cache.NewGeocodeCache(redisClient)

	feedPubSub := pubsub.NewFeedPubSub(pubSubClient, configuration.C.Pubsub.Topic)
	feedServiceBus := servicebus.NewFeedServiceBus(azServiceBusClient, configuration.C.ServiceBus.Queue)
	changeFeed := realtime.NewChangeFeed(redisClient, feedPubSub, feedServiceBus)

	videoHub := realtime.NewVideoHub()
	listener := realtime.NewListener(changeFeed, videoHub, videoCache)
	if videos, err := videoRepository.List(ctx); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while priming video feed")
	} else {
		listener.Prime(videos)
	}
	g.Go(func() error {
		err := listener.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	userUsecase := usecase.NewUserUsecase(userRepository)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, videoCache, changeFeed)

	geocoder := geocoding.NewMapboxClient(
		configuration.C.Mapbox.AccessToken,
		configuration.C.Mapbox.Language,
		configuration.C.Mapbox.SearchLimit,
	)

	userHandler := httpHandler.NewUserHandler(userUsecase)
	videoHandler := httpHandler.NewVideoHandler(videoUsecase)
	geocodeHandler := httpHandler.NewGeocodeHandler(geocoder, geocodeCache)
	previewHandler := httpHandler.NewPreviewHandler(youtubeclient.NewOEmbedClient())
	configHandler := httpHandler.NewConfigHandler()
	statusHandler := httpHandler.NewStatusHandler(psqlDb)

	router := server.InitiateRouter(
		userHandler,
		videoHandler,
		geocodeHandler,
		previewHandler,
		configHandler,
		statusHandler,
		userRepository,
		videoHub,
		listener,
	)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
