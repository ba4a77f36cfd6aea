package routes

import (
	"context"
	"fmt"
	"log"
	_ "saudeplus/docs" // This will be auto-generated
	"saudeplus/internal/adapter/http/handlers"
	"saudeplus/internal/adapter/http/middleware"
	repository2 "saudeplus/internal/adapter/persistence/repository"
	"saudeplus/internal/config"
	"saudeplus/internal/infrastructure/database"
	"saudeplus/internal/infrastructure/notifications"
	"saudeplus/internal/logger"
	"saudeplus/internal/pdf"
	"saudeplus/internal/usecase"
	"saudeplus/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLog := logger.New(cfg.Environment)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, appLog)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLog.Info().Str("addr", addr).Str("environment", cfg.Environment).Msg("starting http server")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config, appLog zerolog.Logger) {
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.AWS)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes, cfg.Tables.Sales, cfg.Tables.SaleServices)
	saleRepo := repository2.NewSaleDynamoRepository(ddb, cfg.Tables.Sales, cfg.Tables.SaleServices)
	authRepo := repository2.NewAuthorizationDynamoRepository(ddb, cfg.Tables.Authorizations)

	var notifier interfaces.INegotiationNotifier
	twilioNotifier, err := notifications.NewTwilioNotifier(cfg.Twilio, appLog)
	if err != nil {
		appLog.Warn().Err(err).Msg("negotiation notifier not configured; counter-proposals will only be logged")
	} else {
		notifier = twilioNotifier
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, authRepo, notifier, appLog)
	saleUseCase := usecase.NewSaleUseCase(saleRepo, authRepo, appLog)
	authUseCase := usecase.NewAuthorizationUseCase(authRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	saleHandler := handlers.NewSaleHandler(saleUseCase)
	authHandler := handlers.NewAuthorizationHandler(authUseCase, pdf.NewGenerator())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCommerceRoutes(v1, quoteHandler, saleHandler, authHandler)
}

func setMiddlewares(cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Identity(cfg.Auth.AccessSecret))
}
