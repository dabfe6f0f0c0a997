package main

import (
	"context"
	"net/http"

	_ "housing-fixtures/docs"
	"housing-fixtures/internal/config"
	"housing-fixtures/internal/handler"
	"housing-fixtures/internal/logger"
	"housing-fixtures/internal/repository"
	"housing-fixtures/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// maxRecords bounds the size of a dataset generated on request.
const maxRecords = 500000

//	@title		Housing Fixtures API
//	@version	1.0
//	@BasePath	/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(config.LogLevel)

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	datasetService := service.NewDatasetService(maxRecords)
	prizeService := service.NewPrizeService(repo)

	datasetHandler := handler.NewDatasetHandler(datasetService, config.GeneratorOptions())
	prizeHandler := handler.NewPrizeHandler(prizeService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/datasets", datasetHandler.Generate)
	r.GET("/prizes/:id", prizeHandler.GetPrize)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("address", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
