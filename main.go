package main

import (
	"github.com/gin-gonic/gin"

	"sunnie/ai"
	"sunnie/blog"
	"sunnie/common"
	"sunnie/config"
	"sunnie/skincare"
	"sunnie/site"
	"sunnie/store"
)

func main() {
	cfg := config.Load()
	log := common.NewLogger(cfg.LogLevel, cfg.AppEnv)

	storage := store.NewMemStore()

	client := ai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Timeout)
	generator := ai.NewGenerator(client, cfg.OpenAI.Model, log)

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), common.RequestLogger(log))

	blogModule := blog.NewBlogModule(storage, generator, log)
	blogModule.RegisterRoutes(router)

	skinModule := skincare.NewSkinModule(storage, generator, log)
	skinModule.RegisterRoutes(router)

	siteModule := site.NewSiteModule(storage)
	siteModule.RegisterRoutes(router)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
