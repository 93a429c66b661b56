package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/odryna/blog-platform/backend/internal/auth"
	"github.com/odryna/blog-platform/backend/internal/database"
	"github.com/odryna/blog-platform/backend/internal/handlers"
	"github.com/odryna/blog-platform/backend/internal/middleware"
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
	tokens  *auth.TokenService
}

// NewRouter builds the Gin engine with all routes registered. A nil db is
// allowed; the health endpoint then reports a static ok.
func NewRouter(db database.Service, handler *handlers.Handler, tokens *auth.TokenService) *gin.Engine {
	s := &Server{
		db:      db,
		handler: handler,
		tokens:  tokens,
	}
	return s.RegisterRoutes()
}

// New creates and configures a new HTTP server around the given handlers.
func New(db database.Service, handler *handlers.Handler, tokens *auth.TokenService) *http.Server {
	router := NewRouter(db, handler, tokens)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		if s.db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/users/register", s.handler.Auth.Register)
		api.POST("/auth/login", s.handler.Auth.Login)

		// Post routes (public reads)
		api.GET("/posts", s.handler.Post.GetPosts)
		api.GET("/posts/:id", s.handler.Post.GetPost)

		// Comment routes (public reads)
		api.GET("/posts/:id/comments", s.handler.Comment.GetComments)
		api.GET("/posts/:id/comments/:commentId", s.handler.Comment.GetComment)
		api.GET("/posts/:id/comments/:commentId/replies", s.handler.Comment.GetReplies)

		// Analytics (public)
		api.GET("/comments-daily-breakdown", s.handler.Analytics.DailyBreakdown)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(s.tokens))
		{
			// Post protected routes
			protected.POST("/posts", s.handler.Post.CreatePost)
			protected.PUT("/posts/:id", s.handler.Post.UpdatePost)
			protected.DELETE("/posts/:id", s.handler.Post.DeletePost)

			// Comment protected routes
			protected.POST("/posts/:id/comments", s.handler.Comment.CreateComment)
			protected.PUT("/posts/:id/comments/:commentId", s.handler.Comment.UpdateComment)
			protected.DELETE("/posts/:id/comments/:commentId", s.handler.Comment.DeleteComment)
			protected.POST("/posts/:id/comments/:commentId/replies", s.handler.Comment.CreateReply)
		}
	}

	return r
}
