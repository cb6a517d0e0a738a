package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/devconnector-backend/internal/handlers"
	"github.com/yungbote/devconnector-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	ProfileHandler *handlers.ProfileHandler
	PostHandler    *handlers.PostHandler
	AccountHandler *handlers.AccountHandler
	AllowOrigins   []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "x-auth-token", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")

	// Public
	api.POST("/users", cfg.AuthHandler.Register)
	api.POST("/auth", cfg.AuthHandler.Login)
	api.GET("/profile", cfg.ProfileHandler.ListProfiles)
	api.GET("/profile/user/:user_id", cfg.ProfileHandler.GetProfileByUser)

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.GET("/auth", cfg.AuthHandler.CurrentUser)
	// Profile
	protected.GET("/profile/me", cfg.ProfileHandler.GetOwnProfile)
	protected.POST("/profile", cfg.ProfileHandler.UpsertProfile)
	protected.PUT("/profile/experience", cfg.ProfileHandler.AddExperience)
	protected.DELETE("/profile/experience/:exp_id", cfg.ProfileHandler.RemoveExperience)
	protected.PUT("/profile/education", cfg.ProfileHandler.AddEducation)
	protected.DELETE("/profile/education/:edu_id", cfg.ProfileHandler.RemoveEducation)
	protected.DELETE("/profile", cfg.AccountHandler.DeleteAccount)
	// Posts
	protected.POST("/posts", cfg.PostHandler.CreatePost)
	protected.GET("/posts", cfg.PostHandler.ListPosts)
	protected.GET("/posts/:id", cfg.PostHandler.GetPost)
	protected.DELETE("/posts/:id", cfg.PostHandler.DeletePost)
	protected.PUT("/posts/like/:id", cfg.PostHandler.LikePost)
	protected.PUT("/posts/unlike/:id", cfg.PostHandler.UnlikePost)
	protected.POST("/posts/comment/:id", cfg.PostHandler.AddComment)
	protected.DELETE("/posts/comment/:id/:comment_id", cfg.PostHandler.RemoveComment)

	return router
}
