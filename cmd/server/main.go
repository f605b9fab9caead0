package main

import (
	apicontrollers "githubchat/internal/api/controllers"
	"githubchat/internal/domain/services"
	"githubchat/internal/impl/config"
	"githubchat/internal/impl/integrations"
	"githubchat/internal/ui"
	uicontrollers "githubchat/internal/ui/controllers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "githubchat/docs" // Import the generated docs package
)

//	@title			GitHub Toolkit Chat API
//	@version		1.0
//	@description	Chat backend that proxies user input to the GitHub toolkit service and renders tool-call results.

// @host	localhost:8080
// @BasePath	/
func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg, err := config.InitConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	toolkitClient := integrations.NewToolkitClient(cfg.ToolkitURL, logger)
	chatService := services.NewChatService(toolkitClient, logger)

	tmpl, err := ui.ParseTemplates("internal/ui/templates", logger)
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}

	// UI Controllers
	homeController := uicontrollers.NewHomeController(logger, tmpl)

	// API Controllers
	apiChatController := apicontrollers.NewChatController(logger, chatService)

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// UI Routes
	homeController.RegisterRoutes(e)

	// API Routes
	apiChatController.RegisterRoutes(e)

	// Swagger route
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server
	logger.Info("Starting HTTP server", zap.String("address", cfg.ServerAddress))
	if err := e.Start(cfg.ServerAddress); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
