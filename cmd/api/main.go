package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/odryna/blog-platform/backend/internal/analytics"
	"github.com/odryna/blog-platform/backend/internal/auth"
	"github.com/odryna/blog-platform/backend/internal/database"
	"github.com/odryna/blog-platform/backend/internal/handlers"
	"github.com/odryna/blog-platform/backend/internal/moderation"
	"github.com/odryna/blog-platform/backend/internal/repository/gormdb"
	"github.com/odryna/blog-platform/backend/internal/server"
)

func main() {
	dbService := database.New()
	defer dbService.Close()
	db := dbService.GetDB()

	wordsFile := os.Getenv("BANNED_WORDS_FILE")
	if wordsFile == "" {
		wordsFile = "data/banned_words.txt"
	}
	filter := moderation.Load(wordsFile)

	tokens, err := auth.NewTokenService(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("Failed to configure auth: %v", err)
	}

	handler := handlers.NewHandler(
		gormdb.NewUserRepo(db),
		gormdb.NewPostRepo(db, filter),
		gormdb.NewCommentRepo(db, filter),
		analytics.NewService(gormdb.NewAnalyticsRepo(db)),
		tokens,
	)

	srv := server.New(dbService, handler, tokens)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}
