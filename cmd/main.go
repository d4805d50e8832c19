package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/application/services"
	"podcast-gateway/config"
	"podcast-gateway/infrastructure/adapters"
	"podcast-gateway/infrastructure/gin_interface/controllers"
	"podcast-gateway/middleware"
)

func main() {
	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	storageConfig, err := config.GetStorageConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get storage config")
	}

	fetcherConfig, err := config.GetFetcherConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get fetcher config")
	}

	geminiConfig, err := config.GetGeminiConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gemini config")
	}

	openAIConfig, err := config.GetOpenAIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get openai config")
	}

	elevenLabsConfig, err := config.GetElevenLabsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get eleven labs config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	store, err := newArtifactStore(storageConfig, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create artifact store")
	}

	contentFetcher := adapters.NewContentFetcher(fetcherConfig, zeroLogger)

	var synthesizers outbound.SynthesizerSelectorPort
	if os.Getenv("GATEWAY_MODE") == "stub" {
		zeroLogger.Warn("Running with stub synthesizers, no provider calls will be made")
		synthesizers = adapters.NewStubSynthesizerSelector()
	} else {
		synthesizers = adapters.NewSynthesizerSelector(geminiConfig, openAIConfig, elevenLabsConfig, zeroLogger)
	}

	generator := services.NewGenerationOrchestrator(zeroLogger, workerPool, contentFetcher, synthesizers, store)
	sessionRegistry := services.NewSessionRegistry(zeroLogger)

	janitor := services.NewArtifactJanitor(storageConfig, zeroLogger)
	sweeper := cron.New()
	if _, err := sweeper.AddFunc(fmt.Sprintf("@every %s", storageConfig.SweepInterval), func() {
		janitor.Sweep()
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule artifact sweep")
	}
	sweeper.Start()
	defer sweeper.Stop()

	authHandler := middleware.NewAuthHandler(serverConfig.APIToken)
	sessionHandler := middleware.NewSessionHandler(serverConfig.SessionSecret, zeroLogger)

	podcastController := controllers.NewPodcastController(
		zeroLogger,
		generator,
		sessionRegistry,
		store,
		authHandler,
		sessionHandler,
		serverConfig.APIToken,
	)

	router := gin.Default()
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies")
	}

	podcastController.RegisterRoutes(router)

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func newArtifactStore(cfg *config.StorageConfig, logger outbound.LoggerPort) (outbound.ArtifactStorePort, error) {
	if cfg.Backend == config.StorageBackendMinio {
		return adapters.NewMinioArtifactStore(&cfg.Minio, logger)
	}
	return adapters.NewFSArtifactStore(cfg, logger)
}
