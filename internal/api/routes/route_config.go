package routes

import (
	"Fitlog-Backend/internal/api/handlers"
	"Fitlog-Backend/internal/middleware"
	"Fitlog-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	EntryHandler        handlers.EntryHandler
	FoodHandler         handlers.FoodHandler
	CoachHandler        handlers.CoachHandler
	MeasurementHandler  handlers.MeasurementHandler
	SubscriptionHandler handlers.SubscriptionHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Entries()
	c.Foods()
	c.Coach()
	c.Measurements()
	c.Subscriptions()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Entries() {
	entries := c.App.Group("/api/v1/entries", c.Middleware.AuthMiddleware(c.JWTService))
	entries.Get("/summary", c.EntryHandler.GetDailySummary)

	entries.Post("", c.EntryHandler.LogEntry)
	entries.Post("/photo", c.EntryHandler.LogPhotoEntry)
	entries.Get("", c.EntryHandler.GetEntries)
	entries.Get("/:id", c.EntryHandler.GetEntryDetails)
	entries.Delete("/:id", c.EntryHandler.DeleteEntry)
	entries.Post("/:id/media", c.EntryHandler.UploadEntryMedia)
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.JWTService))

	foods.Post("", c.FoodHandler.AddFoodRecord)
	foods.Get("", c.FoodHandler.GetFoodRecords)
	foods.Get("/:id", c.FoodHandler.GetFoodRecordDetails)
	foods.Put("/:id", c.FoodHandler.UpdateFoodRecord)
	foods.Delete("/:id", c.FoodHandler.DeleteFoodRecord)
}

func (c *Config) Coach() {
	coach := c.App.Group("/api/v1/coach", c.Middleware.AuthMiddleware(c.JWTService))
	coach.Post("/ask", c.CoachHandler.AskCoach)
}

func (c *Config) Measurements() {
	measurements := c.App.Group("/api/v1/measurements", c.Middleware.AuthMiddleware(c.JWTService))

	measurements.Post("", c.MeasurementHandler.AddMeasurement)
	measurements.Get("", c.MeasurementHandler.GetMeasurements)
	measurements.Delete("/:id", c.MeasurementHandler.DeleteMeasurement)
}

func (c *Config) Subscriptions() {
	subscriptions := c.App.Group("/api/v1/subscriptions", c.Middleware.AuthMiddleware(c.JWTService))

	subscriptions.Post("", c.SubscriptionHandler.CreateSubscription)
	subscriptions.Get("/me", c.SubscriptionHandler.GetMySubscription)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.SubscriptionHandler.MidtransWebhookHandler)
}
