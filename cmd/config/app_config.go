package config

import (
	"Fitlog-Backend/internal/api/handlers"
	"Fitlog-Backend/internal/api/routes"
	"Fitlog-Backend/internal/middleware"
	"Fitlog-Backend/internal/utils"
	"Fitlog-Backend/internal/utils/storage"
	"Fitlog-Backend/pkg/coach"
	"Fitlog-Backend/pkg/entry"
	"Fitlog-Backend/pkg/extract"
	"Fitlog-Backend/pkg/food"
	"Fitlog-Backend/pkg/jwt"
	"Fitlog-Backend/pkg/measurement"
	"Fitlog-Backend/pkg/midtrans"
	"Fitlog-Backend/pkg/subscription"
	"Fitlog-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
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

	// setting up logging and limiter
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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	entryRepository := entry.NewEntryRepository(db)
	measurementRepository := measurement.NewMeasurementRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	extractService := extract.NewExtractService()
	midtransService := midtrans.NewMidtransService()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository)
	entryService := entry.NewEntryService(entryRepository, foodRepository, extractService, s3)
	measurementService := measurement.NewMeasurementService(measurementRepository)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository, userRepository, midtransService)
	coachService := coach.NewCoachService(entryRepository, userRepository, subscriptionService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	entryHandler := handlers.NewEntryHandler(entryService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	coachHandler := handlers.NewCoachHandler(coachService, validator)
	measurementHandler := handlers.NewMeasurementHandler(measurementService, validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		EntryHandler:        entryHandler,
		FoodHandler:         foodHandler,
		CoachHandler:        coachHandler,
		MeasurementHandler:  measurementHandler,
		SubscriptionHandler: subscriptionHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
