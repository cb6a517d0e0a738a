package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/patrickmn/go-cache"

	"github.com/yungbote/devconnector-backend/internal/db"
	"github.com/yungbote/devconnector-backend/internal/handlers"
	"github.com/yungbote/devconnector-backend/internal/logger"
	"github.com/yungbote/devconnector-backend/internal/middleware"
	"github.com/yungbote/devconnector-backend/internal/repos"
	"github.com/yungbote/devconnector-backend/internal/server"
	"github.com/yungbote/devconnector-backend/internal/services"
	"github.com/yungbote/devconnector-backend/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	allowOrigins := strings.Split(utils.GetEnv("ALLOW_ORIGINS", "http://localhost:3000", log), ",")

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	profileRepo := repos.NewProfileRepo(thePG, log)
	postRepo := repos.NewPostRepo(thePG, log)

	// List cache, shared by the services that read and evict it
	listCache := cache.New(5*time.Minute, 10*time.Minute)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
	profileService := services.NewProfileService(thePG, log, profileRepo, listCache)
	postService := services.NewPostService(thePG, log, postRepo, userRepo, listCache)
	accountService := services.NewAccountService(thePG, log, userRepo, profileRepo, postRepo, listCache)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(log, authService)
	profileHandler := handlers.NewProfileHandler(log, profileService)
	postHandler := handlers.NewPostHandler(log, postService)
	accountHandler := handlers.NewAccountHandler(log, accountService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		ProfileHandler: profileHandler,
		PostHandler:    postHandler,
		AccountHandler: accountHandler,
		AllowOrigins:   allowOrigins,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
