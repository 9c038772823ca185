package config

import (
	"Agro-Assistant-Backend/internal/api/handlers"
	"Agro-Assistant-Backend/internal/api/routes"
	"Agro-Assistant-Backend/internal/middleware"
	"Agro-Assistant-Backend/internal/utils"
	"Agro-Assistant-Backend/pkg/chat"
	"Agro-Assistant-Backend/pkg/gemini"
	"Agro-Assistant-Backend/pkg/plant"
	"Agro-Assistant-Backend/pkg/task"
	"Agro-Assistant-Backend/pkg/trend"
	"Agro-Assistant-Backend/pkg/user"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	// static frontend assets; a missing directory is only a warning
	staticDir := utils.GetConfig("STATIC_DIR")
	if staticDir != "" {
		if _, err := os.Stat(staticDir); err == nil {
			app.Static("/static", staticDir)
		} else {
			log.Warnf("static directory not found at %s, static files will not be served", staticDir)
		}
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	plantRepository := plant.NewPlantRepository(db)
	trendRepository := trend.NewTrendRepository(db)
	taskRepository := task.NewTaskRepository(db)
	chatRepository := chat.NewChatRepository(db)

	// Service
	geminiService := gemini.NewGeminiService()
	if geminiService == nil {
		log.Warn("GEMINI_API_KEY not set, chat replies will use the fallback message")
	}
	userService := user.NewUserService(userRepository)
	plantService := plant.NewPlantService(plantRepository)
	trendService := trend.NewTrendService(trendRepository)
	taskService := task.NewTaskService(taskRepository)
	chatService := chat.NewChatService(chatRepository, geminiService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	plantHandler := handlers.NewPlantHandler(plantService)
	trendHandler := handlers.NewTrendHandler(trendService)
	taskHandler := handlers.NewTaskHandler(taskService, validator)
	chatHandler := handlers.NewChatHandler(chatService, validator)

	// routes
	routesConfig := routes.Config{
		App:          app,
		UserHandler:  userHandler,
		PlantHandler: plantHandler,
		TrendHandler: trendHandler,
		TaskHandler:  taskHandler,
		ChatHandler:  chatHandler,
		Middleware:   middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
