package routes

import (
	"Agro-Assistant-Backend/internal/api/handlers"
	"Agro-Assistant-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App          *fiber.App
	UserHandler  handlers.UserHandler
	PlantHandler handlers.PlantHandler
	TrendHandler handlers.TrendHandler
	TaskHandler  handlers.TaskHandler
	ChatHandler  handlers.ChatHandler
	Middleware   middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Plants()
	c.Trends()
	c.Tasks()
	c.Chat()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/user/:id", c.UserHandler.GetUser)
		auth.Put("/user/:id", c.UserHandler.UpdateUser)
	}
}

func (c *Config) Plants() {
	plants := c.App.Group("/api/plants")
	{
		plants.Get("", c.PlantHandler.GetPlants)
		plants.Get("/:id", c.PlantHandler.GetPlantDetails)
	}
}

func (c *Config) Trends() {
	c.App.Get("/api/trends", c.TrendHandler.GetTrends)
}

func (c *Config) Tasks() {
	tasks := c.App.Group("/api/tasks")
	{
		tasks.Get("", c.TaskHandler.GetTasks)
		tasks.Patch("/:id", c.TaskHandler.ToggleTask)
	}
}

func (c *Config) Chat() {
	chat := c.App.Group("/api/chat")
	{
		chat.Post("", c.ChatHandler.SendMessage)
		chat.Get("/history", c.ChatHandler.GetHistory)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
